package middleware

import (
	"net/http"
	"os"
	"strings"

	"oficina_xyz/internal/domain/tenant"
	"oficina_xyz/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tenantContextKey = "tenant"

var (
	errMissingToken = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Missing or malformed Authorization header", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
)

// TenantAuth validates the Bearer token and stores the resolved tenant in the
// gin context. Every route behind it can assume TenantFromContext succeeds.
//
// Claims:
//   - oficina_id (required): the workshop partition key
//   - sub: user id
//   - role: ADMIN or OFICINA
//
// With AUTH_DISABLED=true the tenant comes from the X-Oficina-ID header
// instead, for local development only.
func TenantAuth() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))
	authDisabled := strings.EqualFold(strings.TrimSpace(os.Getenv("AUTH_DISABLED")), "true")

	return func(c *gin.Context) {
		if authDisabled {
			tn := tenant.Tenant{
				OficinaID: strings.TrimSpace(c.GetHeader("X-Oficina-ID")),
				UserID:    strings.TrimSpace(c.GetHeader("X-User-ID")),
				Role:      "OFICINA",
			}
			if !tn.Valid() {
				c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
				return
			}
			c.Set(tenantContextKey, tn)
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		tn := tenant.Tenant{
			OficinaID: claimString(claims, "oficina_id"),
			UserID:    claimString(claims, "sub"),
			Role:      claimString(claims, "role"),
		}
		if !tn.Valid() {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(tenantContextKey, tn)
		c.Next()
	}
}

// TenantFromContext returns the tenant stored by TenantAuth.
func TenantFromContext(c *gin.Context) (tenant.Tenant, bool) {
	v, ok := c.Get(tenantContextKey)
	if !ok {
		return tenant.Tenant{}, false
	}
	tn, ok := v.(tenant.Tenant)
	return tn, ok
}

// SetTenant stores a tenant directly, bypassing token validation. Test helper.
func SetTenant(c *gin.Context, tn tenant.Tenant) {
	c.Set(tenantContextKey, tn)
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
