package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialite-be/internal/entities"
	"socialite-be/internal/middleware"
	"socialite-be/internal/models"
	"socialite-be/internal/service"
)

// stubUserService resolves a single known token and a single known id.
type stubUserService struct {
	user *entities.User
}

func (s *stubUserService) Register(*models.RegisterRequest) (*entities.User, error) { return nil, nil }
func (s *stubUserService) Login(*models.LoginRequest) (*entities.User, error)       { return nil, nil }

func (s *stubUserService) ValidateToken(token string) (*entities.User, error) {
	if s.user != nil && token == "valid-token" {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserService) FindByID(id int64) (*entities.User, error) {
	if s.user != nil && id == s.user.ID {
		return s.user, nil
	}
	return nil, service.ErrUnknownUser
}

func (s *stubUserService) Export(user *entities.User, _ bool, _ *entities.User) (*models.UserExport, error) {
	return &models.UserExport{ID: user.ID, Username: user.Username}, nil
}

func newAuthRouter(svc *stubUserService, optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	auth := middleware.RequireAuth(svc)
	if optional {
		auth = middleware.OptionalAuth(svc)
	}

	router.GET("/probe", auth, func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user.Username})
	})
	return router
}

func probe(t *testing.T, router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	svc := &stubUserService{user: &entities.User{ID: 1, Username: "alice"}}
	router := newAuthRouter(svc, false)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantBody      string
	}{
		{name: "missing header", authorization: "", wantStatus: http.StatusUnauthorized, wantBody: `"missing credentials"`},
		{name: "no bearer prefix", authorization: "valid-token", wantStatus: http.StatusUnauthorized, wantBody: `"invalid credentials"`},
		{name: "empty token", authorization: "Bearer ", wantStatus: http.StatusUnauthorized, wantBody: `"invalid credentials"`},
		{name: "unknown token", authorization: "Bearer nope", wantStatus: http.StatusUnauthorized, wantBody: `"invalid credentials"`},
		{name: "valid token", authorization: "Bearer valid-token", wantStatus: http.StatusOK, wantBody: `"alice"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := probe(t, router, tt.authorization)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	svc := &stubUserService{user: &entities.User{ID: 1, Username: "alice"}}
	router := newAuthRouter(svc, true)

	// Absent header passes through with no user attached.
	rec := probe(t, router, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":null`)

	// A present but invalid credential is still rejected.
	rec = probe(t, router, "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"invalid credentials"`)

	rec = probe(t, router, "Bearer valid-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice"`)
}

func TestResolveUser(t *testing.T) {
	svc := &stubUserService{user: &entities.User{ID: 7, Username: "alice"}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/:id", middleware.ResolveUser(svc), func(c *gin.Context) {
		target := middleware.TargetUser(c)
		require.NotNil(t, target)
		c.JSON(http.StatusOK, gin.H{"user": target.Username})
	})

	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice"`)

	req = httptest.NewRequest(http.MethodGet, "/users/8", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unknown user"`)

	req = httptest.NewRequest(http.MethodGet, "/users/not-a-number", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unknown user"`)
}
