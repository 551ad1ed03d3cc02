package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tms/internal/domain"
	"tms/internal/middleware"
	"tms/internal/service"
	"tms/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter(auth service.AuthService, roles ...domain.UserRole) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(auth))
	if len(roles) > 0 {
		r.Use(middleware.RequireRole(roles...))
	}
	r.GET("/test", func(c *gin.Context) {
		uid, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": uid, "role": middleware.GetRole(c)})
	})
	return r
}

func get(r http.Handler, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := new(mocks.MockAuthService)
	userID := uuid.New()
	auth.On("ValidateToken", "valid-token").Return(&service.Claims{UserID: userID, Role: domain.RoleOperator}, nil)

	w := get(authRouter(auth), "Bearer valid-token")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID.String(), resp["user_id"])
	assert.Equal(t, "operator", resp["role"])
	auth.AssertExpectations(t)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", "expired").Return(nil, errors.New("token is expired"))

	for _, header := range []string{"", "Basic abc", "Bearer ", "Bearer expired"} {
		w := get(authRouter(auth), header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Contains(t, w.Body.String(), `"UNAUTHORIZED"`)
	}
}

func TestRequireRole(t *testing.T) {
	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", "op").Return(&service.Claims{UserID: uuid.New(), Role: domain.RoleOperator}, nil)
	auth.On("ValidateToken", "admin").Return(&service.Claims{UserID: uuid.New(), Role: domain.RoleAdmin}, nil)

	r := authRouter(auth, domain.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, get(r, "Bearer op").Code)
	assert.Equal(t, http.StatusOK, get(r, "Bearer admin").Code)
}

func TestGetUserID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := middleware.GetUserID(c)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, middleware.GetRole(c))
}
