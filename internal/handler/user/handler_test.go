package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teleclinic/telemed-api/internal/middleware"
	"github.com/teleclinic/telemed-api/internal/model"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateAccount(ctx context.Context, req *model.CreateUserRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func TestCreateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(mockUserService)
	svc.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req *model.CreateUserRequest) bool {
		return req.Email == "doc@example.com" && req.Role == model.RoleDoctor
	})).Return("uid-1", nil)

	engine := gin.New()
	NewHandler(svc).RegisterPublicRoutes(engine.Group(""))

	body := `{"email":"doc@example.com","password":"secret1","name":"Dr. Example","role":"doctor"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uid-1")
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(mockUserService)

	engine := gin.New()
	NewHandler(svc).RegisterPublicRoutes(engine.Group(""))

	body := `{"email":"a@example.com","password":"secret1","name":"A","role":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestGetRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(mockUserService)

	engine := gin.New()
	group := engine.Group("")
	group.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUser, &model.User{ID: "uid-1", Role: model.RolePatient})
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(group)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/role", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "patient")
}
