package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teleclinic/telemed-api/internal/handler"
	"github.com/teleclinic/telemed-api/internal/middleware"
	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/service/user"
)

type Handler struct {
	service user.UserService
}

func NewHandler(service user.UserService) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers signup, the only unauthenticated
// endpoint.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("/", h.CreateUser)
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("/role", h.GetRole)
	}
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	uid, err := h.service.CreateAccount(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"uid": uid}))
}

func (h *Handler) GetRole(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"role": caller.Role}))
}
