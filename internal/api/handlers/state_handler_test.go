package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/api/handlers"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/navigation"
)

func resolveState(t *testing.T, target string) navigation.State {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handlers.NewStateHandler().ResolveState(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var state navigation.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return state
}

func TestResolveState(t *testing.T) {
	state := resolveState(t, "/api/state/resolve?page=school&school_id=sch-1")
	assert.Equal(t, navigation.PageSchool, state.Page)
	assert.Equal(t, "sch-1", state.SchoolID)
}

func TestResolveStateUnknownPageFallsBackToHome(t *testing.T) {
	state := resolveState(t, "/api/state/resolve?page=dashboard")
	assert.Equal(t, navigation.PageHome, state.Page)
}

func TestResolveStateSchoolWithoutIDFallsBackToHome(t *testing.T) {
	state := resolveState(t, "/api/state/resolve?page=school")
	assert.Equal(t, navigation.PageHome, state.Page)
	assert.Empty(t, state.SchoolID)
}

func TestResolveStateDropsIrrelevantPayload(t *testing.T) {
	state := resolveState(t, "/api/state/resolve?page=compare&school_id=sch-1&q=lincoln")
	assert.Equal(t, navigation.PageCompare, state.Page)
	assert.Empty(t, state.SchoolID)
	assert.Empty(t, state.SearchQuery)
}

func TestResolveStateSearchKeepsQuery(t *testing.T) {
	state := resolveState(t, "/api/state/resolve?page=search&q=lincoln")
	assert.Equal(t, navigation.PageSearch, state.Page)
	assert.Equal(t, "lincoln", state.SearchQuery)
}
