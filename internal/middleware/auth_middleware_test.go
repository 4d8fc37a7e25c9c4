package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authz "github.com/izeinnn/university-management-system/internal/app/auth"
	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
	pkgauth "github.com/izeinnn/university-management-system/internal/pkg/auth"
)

type fakeUserLoader struct {
	users map[int64]*models.User
}

func (f *fakeUserLoader) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

type noProfileStudents struct{}

func (noProfileStudents) GetByUserID(context.Context, int64) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

type noProfileInstructors struct{}

func (noProfileInstructors) GetByUserID(context.Context, int64) (*models.Instructor, error) {
	return nil, apperrors.ErrInstructorNotFound
}

func newAuthTestRouter(jwtService *pkgauth.JWTService, users *fakeUserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	resolver := authz.NewResolver(noProfileStudents{}, noProfileInstructors{})

	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtService, users, resolver), func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": principal.User.ID})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Minute,
		TokenIssuer:    "test",
	})

	active := &models.User{ID: 42, Email: "alice@example.com", Role: models.RoleStudent, IsActive: true}
	disabled := &models.User{ID: 43, Email: "bob@example.com", Role: models.RoleStudent, IsActive: false}
	deleted := &models.User{ID: 44, Email: "gone@example.com", Role: models.RoleStudent, IsActive: true}

	users := &fakeUserLoader{users: map[int64]*models.User{42: active, 43: disabled}}
	router := newAuthTestRouter(jwtService, users)

	tokenFor := func(user *models.User) string {
		token, _, err := jwtService.GenerateAccessToken(user)
		require.NoError(t, err)
		return token
	}

	request := func(authHeader string) int {
		req := httptest.NewRequest("GET", "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder.Code
	}

	assert.Equal(t, http.StatusUnauthorized, request(""))
	assert.Equal(t, http.StatusUnauthorized, request("Bearer garbage"))
	assert.Equal(t, http.StatusOK, request("Bearer "+tokenFor(active)))
	assert.Equal(t, http.StatusUnauthorized, request("Bearer "+tokenFor(disabled)))
	assert.Equal(t, http.StatusUnauthorized, request("Bearer "+tokenFor(deleted)))

	expiredService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "test",
	})
	expiredToken, _, err := expiredService.GenerateAccessToken(active)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, request("Bearer "+expiredToken))
}
