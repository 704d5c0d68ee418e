package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teleclinic/telemed-api/internal/handler"
	"github.com/teleclinic/telemed-api/internal/middleware"
	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/service/message"
)

type Handler struct {
	service message.MessageService
}

func NewHandler(service message.MessageService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	{
		messages.POST("/", h.CreateMessage)
		messages.GET("/:patient_id", h.ListMessages)
	}
}

func (h *Handler) CreateMessage(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	var req model.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	id, err := h.service.CreateMessage(c.Request.Context(), caller, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"id": id}))
}

func (h *Handler) ListMessages(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	messages, err := h.service.ListMessages(c.Request.Context(), caller, c.Param("patient_id"))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(messages))
}
