package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk/internal/reset"
)

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()
	svc := newTestService(newMemoryUserRepo(), reset.NewMemoryStore(15*time.Minute))
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r, svc
}

func postJSON(t *testing.T, r chi.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

var validRegister = map[string]string{
	"name":             "Asha",
	"email":            "asha@example.com",
	"password":         "Str0ng!pass",
	"securityQuestion": "pet",
	"securityAnswer":   "Biscuit",
}

func TestHandleRegister(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := postJSON(t, r, "/register", validRegister)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "User registered successfully", decodeBody(t, rec)["msg"])

	rec = postJSON(t, r, "/register", validRegister)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Email already exists", decodeBody(t, rec)["detail"])
}

func TestHandleRegisterWeakPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	weak := map[string]string{}
	for k, v := range validRegister {
		weak[k] = v
	}
	weak["password"] = "short"

	rec := postJSON(t, r, "/register", weak)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "password", decodeBody(t, rec)["field"])
}

func TestHandleRegisterUnknownQuestion(t *testing.T) {
	r, _ := newTestRouter(t)

	bad := map[string]string{}
	for k, v := range validRegister {
		bad[k] = v
	}
	bad["securityQuestion"] = "favorite-quark"

	rec := postJSON(t, r, "/register", bad)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "securityQuestion", decodeBody(t, rec)["field"])
}

func TestHandleLogin(t *testing.T) {
	r, _ := newTestRouter(t)
	postJSON(t, r, "/register", validRegister)

	rec := postJSON(t, r, "/login", map[string]string{"email": "asha@example.com", "password": "Str0ng!pass"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Login successful", body["msg"])
	require.NotEmpty(t, body["token"])

	rec = postJSON(t, r, "/login", map[string]string{"email": "other@example.com", "password": "Str0ng!pass"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found", decodeBody(t, rec)["detail"])

	rec = postJSON(t, r, "/login", map[string]string{"email": "asha@example.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Password is incorrect", decodeBody(t, rec)["detail"])
}

func TestHandleVerify(t *testing.T) {
	r, svc := newTestRouter(t)
	postJSON(t, r, "/register", validRegister)

	token, err := svc.Login(context.Background(), "asha@example.com", "Str0ng!pass")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Token valid", body["msg"])
	require.NotEmpty(t, body["userId"])

	req = httptest.NewRequest(http.MethodGet, "/verify", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/verify", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// A header without the scheme carries no usable token.
	req = httptest.NewRequest(http.MethodGet, "/verify", nil)
	req.Header.Set("Authorization", token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleResetAttributesMissingField(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := postJSON(t, r, "/forgot-password/reset", map[string]string{"newPassword": "N3w!password"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "token", decodeBody(t, rec)["field"])

	rec = postJSON(t, r, "/forgot-password/reset", map[string]string{"token": "something"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "newPassword", decodeBody(t, rec)["field"])
}

func TestForgotPasswordEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	postJSON(t, r, "/register", validRegister)

	rec := postJSON(t, r, "/forgot-password/check-email", map[string]string{"email": "asha@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "pet", decodeBody(t, rec)["securityQuestion"])

	rec = postJSON(t, r, "/forgot-password/check-email", map[string]string{"email": "nobody@example.com"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Email not found", decodeBody(t, rec)["detail"])

	rec = postJSON(t, r, "/forgot-password/verify-answer", map[string]string{"email": "asha@example.com", "securityAnswer": "nope"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Incorrect answer", decodeBody(t, rec)["detail"])

	rec = postJSON(t, r, "/forgot-password/verify-answer", map[string]string{"email": "asha@example.com", "securityAnswer": "Biscuit"})
	require.Equal(t, http.StatusOK, rec.Code)
	resetToken, _ := decodeBody(t, rec)["resetToken"].(string)
	require.NotEmpty(t, resetToken)

	rec = postJSON(t, r, "/forgot-password/reset", map[string]string{"token": "bogus", "newPassword": "N3w!password"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid or expired token", decodeBody(t, rec)["detail"])

	rec = postJSON(t, r, "/forgot-password/reset", map[string]string{"token": resetToken, "newPassword": "N3w!password"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Password reset successful", decodeBody(t, rec)["msg"])

	rec = postJSON(t, r, "/login", map[string]string{"email": "asha@example.com", "password": "N3w!password"})
	require.Equal(t, http.StatusOK, rec.Code)
}
