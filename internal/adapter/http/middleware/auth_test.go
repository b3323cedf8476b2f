package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_xyz/internal/domain/tenant"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func newAuthRouter(t *testing.T) (*gin.Engine, *tenant.Tenant) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var seen tenant.Tenant
	r := gin.New()
	r.GET("/v1/profile", TenantAuth(), func(c *gin.Context) {
		tn, ok := TenantFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		seen = tn
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestTenantAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AUTH_DISABLED", "")

	t.Run("missing header", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bad signature", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		raw := signToken(t, "wrong-secret", jwt.MapClaims{"oficina_id": "of-1", "sub": "u-1", "role": "OFICINA"})
		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing oficina_id claim", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		raw := signToken(t, "test-secret", jwt.MapClaims{"sub": "u-1", "role": "OFICINA"})
		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token resolves tenant", func(t *testing.T) {
		r, seen := newAuthRouter(t)
		raw := signToken(t, "test-secret", jwt.MapClaims{"oficina_id": "of-1", "sub": "u-1", "role": "ADMIN"})
		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if seen.OficinaID != "of-1" || seen.UserID != "u-1" || seen.Role != "ADMIN" {
			t.Fatalf("unexpected tenant: %+v", *seen)
		}
	})
}

func TestTenantAuth_AuthDisabled(t *testing.T) {
	t.Setenv("AUTH_DISABLED", "true")

	t.Run("header fallback", func(t *testing.T) {
		r, seen := newAuthRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		req.Header.Set("X-Oficina-ID", "of-dev")
		req.Header.Set("X-User-ID", "u-dev")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if seen.OficinaID != "of-dev" || seen.Role != "OFICINA" {
			t.Fatalf("unexpected tenant: %+v", *seen)
		}
	})

	t.Run("still requires a workshop id", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
