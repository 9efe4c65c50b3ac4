package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cityinbox_backend/internal/auth"
	"cityinbox_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter(t *testing.T, tokens *auth.TokenManager, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware(tokens)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		principal := GetPrincipal(c)
		require.NotNil(t, principal)
		c.JSON(http.StatusOK, gin.H{"id": principal.ID, "role": principal.Role})
	})
	r.GET("/protected", chain...)
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := authRouter(t, tokens)

	token, err := tokens.Issue(auth.Principal{ID: 5, Role: models.ActorRoleUser})
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":5`)
}

func TestAuthMiddleware_RejectsMissingOrMalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := authRouter(t, tokens)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer not-a-token").Code)
}

func TestRequireRoles_FiltersByActorRole(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := authRouter(t, tokens, RequireRoles(models.ActorRoleAdmin, models.ActorRoleSales))

	adminToken, err := tokens.Issue(auth.Principal{ID: 1, Role: models.ActorRoleAdmin})
	require.NoError(t, err)
	userToken, err := tokens.Issue(auth.Principal{ID: 2, Role: models.ActorRoleUser})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+adminToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer "+userToken).Code)
}

func TestRequireSuperAdmin(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := authRouter(t, tokens, RequireSuperAdmin())

	superToken, err := tokens.Issue(auth.Principal{ID: 1, Role: models.ActorRoleAdmin, AdminRole: models.AdminRoleSuper})
	require.NoError(t, err)
	subToken, err := tokens.Issue(auth.Principal{ID: 2, Role: models.ActorRoleAdmin, AdminRole: models.AdminRoleSub})
	require.NoError(t, err)
	userToken, err := tokens.Issue(auth.Principal{ID: 3, Role: models.ActorRoleUser})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+superToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer "+subToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer "+userToken).Code)
}
