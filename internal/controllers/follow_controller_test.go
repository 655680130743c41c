package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"socialite-be/internal/controllers"
	"socialite-be/internal/entities"
	"socialite-be/internal/middleware"
	"socialite-be/internal/service"
)

// stubFollowService records SetFollow calls.
type stubFollowService struct {
	calls []bool
	err   error
}

func (s *stubFollowService) SetFollow(follow bool, followFrom, followTo *entities.User) error {
	if s.err != nil {
		return s.err
	}
	s.calls = append(s.calls, follow)
	return nil
}

func newFollowRouter(follows *stubFollowService, actor, target *entities.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := controllers.NewFollowController(follows, &stubUserService{user: target})

	attach := func(c *gin.Context) {
		if actor != nil {
			c.Set(middleware.UserKey, actor)
		}
		if target != nil {
			c.Set(middleware.TargetUserKey, target)
		}
		c.Next()
	}

	router.POST("/follow", attach, controller.Follow)
	router.DELETE("/follow", attach, controller.Unfollow)
	return router
}

func TestFollowAndUnfollow(t *testing.T) {
	follows := &stubFollowService{}
	actor := &entities.User{ID: 1, Username: "bob"}
	target := &entities.User{ID: 2, Username: "alice"}
	router := newFollowRouter(follows, actor, target)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/follow", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/follow", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []bool{true, false}, follows.calls)
}

func TestFollowSelfRejected(t *testing.T) {
	follows := &stubFollowService{}
	user := &entities.User{ID: 1, Username: "alice"}
	router := newFollowRouter(follows, user, user)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/follow", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user cannot follow self")
	assert.Empty(t, follows.calls)
}

func TestFollowRequiresAuth(t *testing.T) {
	follows := &stubFollowService{}
	target := &entities.User{ID: 2, Username: "alice"}
	router := newFollowRouter(follows, nil, target)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/follow", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing credentials")
	assert.Empty(t, follows.calls)
}

func TestFollowServiceErrorMapsToSelfFollow(t *testing.T) {
	follows := &stubFollowService{err: service.ErrSelfFollow}
	// Distinct ids at the handler, but the service still refuses.
	router := newFollowRouter(follows, &entities.User{ID: 1}, &entities.User{ID: 2})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/follow", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user cannot follow self")
}
