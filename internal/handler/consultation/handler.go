package consultation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teleclinic/telemed-api/internal/handler"
	"github.com/teleclinic/telemed-api/internal/middleware"
	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/service/consultation"
)

type Handler struct {
	service consultation.ConsultationService
}

func NewHandler(service consultation.ConsultationService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	consultations := r.Group("/consultations")
	{
		consultations.POST("/", h.CreateConsultation)
		consultations.GET("/:patient_id", h.ListConsultations)
	}
}

func (h *Handler) CreateConsultation(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	var req model.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	id, err := h.service.CreateConsultation(c.Request.Context(), caller, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"id": id}))
}

func (h *Handler) ListConsultations(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	consultations, err := h.service.ListConsultations(c.Request.Context(), caller, c.Param("patient_id"))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(consultations))
}
