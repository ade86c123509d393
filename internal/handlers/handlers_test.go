package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-event-checkin/internal/jwt"
)

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	return httptest.NewRequest(method, target, &buf)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withUser(r *http.Request, userID uuid.UUID) *http.Request {
	claims := &jwt.Claims{UserID: userID, TokenType: jwt.TokenTypeAccess}
	return r.WithContext(jwt.WithClaims(r.Context(), claims))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestClaimsOrUnauthorized(t *testing.T) {
	rr := httptest.NewRecorder()
	_, ok := claimsOrUnauthorized(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestInt64Param(t *testing.T) {
	rr := httptest.NewRecorder()
	id, ok := int64Param(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "42"), "id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	rr = httptest.NewRecorder()
	_, ok = int64Param(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "abc"), "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
