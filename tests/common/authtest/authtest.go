//go:build e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"commerce-core/internal/handler/dto/request"
	"commerce-core/internal/handler/dto/response"
	"commerce-core/internal/pkg/config"
	"commerce-core/internal/pkg/jwt"
	"commerce-core/tests/common/dbtest"
	"commerce-core/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// performs the login flow and returns the bearer token
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.AccessToken, "access token missing from login response")

	return res.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) (uuid.UUID, string) {
	t.Helper()

	userID := dbtest.CreateTestUser(t, db, email)
	token := LoginUser(t, router, email, dbtest.TestUserPassword)
	return userID, token
}

// signs a token directly; logging in 150 users through bcrypt would
// dominate the runtime of the contention tests
func GenerateToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	token, err := jwt.NewService(cfg.Secret, duration).GenerateToken(userID)
	require.NoError(t, err)
	return token
}
