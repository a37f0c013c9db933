package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Iotonix/osams/internal/models"
)

type fakeValidator struct {
	claims *models.JWTClaims
	err    error
}

func (f *fakeValidator) ValidateToken(string) (*models.JWTClaims, error) {
	return f.claims, f.err
}

func newAuthRouter(validator tokenValidator, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("", Authenticated(validator))
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID)})
	})
	return r
}

func TestAuthenticatedRejectsMissingHeader(t *testing.T) {
	r := newAuthRouter(&fakeValidator{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatedRejectsInvalidToken(t *testing.T) {
	r := newAuthRouter(&fakeValidator{err: errors.New("expired")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatedStoresIdentity(t *testing.T) {
	r := newAuthRouter(&fakeValidator{claims: &models.JWTClaims{
		UserID: "u-1",
		Email:  "ops@osams.local",
		Role:   models.RoleOps,
	}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "u-1")
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	r := newAuthRouter(&fakeValidator{claims: &models.JWTClaims{
		UserID: "u-2",
		Role:   models.RoleOps,
	}}, models.RolePlanner)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleAdminBypass(t *testing.T) {
	r := newAuthRouter(&fakeValidator{claims: &models.JWTClaims{
		UserID: "u-3",
		Role:   models.RoleAdmin,
	}}, models.RolePlanner)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
