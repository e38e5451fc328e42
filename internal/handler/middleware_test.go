package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/store"
)

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	for _, path := range []string{"/api/users", "/api/links", "/api/services", "/api/members"} {
		w := doJSON(t, r, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path: %s", path)
	}
}

func TestAdminRoutesRejectInvalidToken(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users", "", "definitely-not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A valid token with role "user" must be stopped by the role gate, and the
// rejected request must not touch the collection.
func TestNonAdminGetsForbiddenWithoutMutation(t *testing.T) {
	r, fs := newTestRouter(t, nil)
	admin := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/users",
		`{"email":"user@canya.com","password":"password123","name":"Plain User","role":"user"}`, admin)
	require.Equal(t, http.StatusCreated, w.Code)

	userTok := loginToken(t, r, "user@canya.com", "password123")

	w = doJSON(t, r, http.MethodGet, "/api/users", "", userTok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/links", `{"name":"Sneaky","url":"https://sneaky.example"}`, userTok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	links, err := store.Read[model.Link](fs, store.Links)
	require.NoError(t, err)
	assert.Len(t, links, 2, "forbidden request must not mutate the collection")

	w = doJSON(t, r, http.MethodDelete, "/api/users/1", "", userTok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	users, err := store.Read[model.User](fs, store.Users)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestAdminTokenPassesBothGates(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/links", "", adminToken(t, r))
	assert.Equal(t, http.StatusOK, w.Code)
}
