package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canya/backend/internal/model"
)

func TestListUsersReturnsSeedWithoutHashes(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users", "", adminToken(t, r))
	require.Equal(t, http.StatusOK, w.Code)

	var users []model.PublicUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "admin@canya.com", users[0].Email)
	assert.NotContains(t, w.Body.String(), "$2a$", "bcrypt hash must never leave the server")
}

func TestCreateUser(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/users",
		`{"email":"new@canya.com","password":"password123","name":"New"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.PublicUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.RoleUser, created.Role)

	w = doJSON(t, r, http.MethodGet, "/api/users", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var users []model.PublicUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestCreateUserValidation(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/users", `{"email":"x@canya.com","name":"X"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users",
		`{"email":"admin@canya.com","password":"password123","name":"Dup"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already exists")
}

func TestUpdateUser(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/users/1", `{"name":"Renamed"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.PublicUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "admin@canya.com", updated.Email)

	w = doJSON(t, r, http.MethodPut, "/api/users/no-such-id", `{"name":"X"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Deleting an existing id and a missing id return the same success response.
func TestDeleteUserIdempotentResponse(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/users",
		`{"email":"gone@canya.com","password":"password123","name":"Gone"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.PublicUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	existing := doJSON(t, r, http.MethodDelete, "/api/users/"+created.ID, "", token)
	missing := doJSON(t, r, http.MethodDelete, "/api/users/never-existed", "", token)

	assert.Equal(t, http.StatusOK, existing.Code)
	assert.Equal(t, http.StatusOK, missing.Code)
	assert.Equal(t, existing.Body.String(), missing.Body.String())
	assert.JSONEq(t, `{"message":"User deleted"}`, missing.Body.String())
}
