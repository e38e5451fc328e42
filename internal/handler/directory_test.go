package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/store"
)

func TestCreateLinkWithoutURLLeavesCollectionUnchanged(t *testing.T) {
	r, fs := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/links", `{"name":"X"}`, adminToken(t, r))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	links, err := store.Read[model.Link](fs, store.Links)
	require.NoError(t, err)
	assert.Len(t, links, 2)
}

func TestLinkCRUDFlow(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/links",
		`{"name":"Local Food Bank","url":"https://foodbank.example","description":"Weekly drives"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Link
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(t, r, http.MethodPut, "/api/links/"+created.ID, `{"description":"Daily drives"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	var updated model.Link
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Local Food Bank", updated.Name)
	assert.Equal(t, "Daily drives", updated.Description)

	w = doJSON(t, r, http.MethodDelete, "/api/links/"+created.ID, "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Link deleted"}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/links", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var links []model.Link
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
	assert.Len(t, links, 2)
}

func TestUpdateUnknownLinkIs404(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPut, "/api/links/missing", `{"name":"Y"}`, adminToken(t, r))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServiceCreateGetsDefaultIcon(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/services", `{"name":"Housing Support"}`, adminToken(t, r))
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "🔗", created.Icon)
}

func TestMemberAdminCRUD(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/members", `{"name":"Jordan Lee","role":"Outreach"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, "/api/members/"+created.ID, "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Member deleted"}`, w.Body.String())
}

func TestPublicListingsAreOpen(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	for path, wantLen := range map[string]int{
		"/api/public/links":    2,
		"/api/public/services": 2,
		"/api/public/members":  3,
	} {
		w := doJSON(t, r, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, w.Code, "path: %s", path)

		var records []json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		assert.Len(t, records, wantLen, "path: %s", path)
	}
}
