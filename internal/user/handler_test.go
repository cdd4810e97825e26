package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func testRespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func testRespondError(w http.ResponseWriter, status int, message string, _ ...map[string][]string) {
	testRespondJSON(w, status, map[string]interface{}{"status": "error", "message": message, "code": status})
}

func callerFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func TestHandleGetUserProfile(t *testing.T) {
	svc := NewUserService(newMockRepository())
	u, err := svc.CreateUser(context.Background(), "cook", "cook@example.com", "long-enough", false)
	require.NoError(t, err)

	h := NewHandler(svc, callerFromContext, testRespondJSON, testRespondError)

	rec := httptest.NewRecorder()
	h.HandleGetUserProfile(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, u.ID))
	rec = httptest.NewRecorder()
	h.HandleGetUserProfile(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "cook", body.Data["username"])
	assert.NotContains(t, body.Data, "password_hash")

	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "8f14e45f-ceea-467f-a0e6-5b3e3c1d9a11"))
	rec = httptest.NewRecorder()
	h.HandleGetUserProfile(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHandler_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewHandler(nil, callerFromContext, testRespondJSON, testRespondError) })
}
