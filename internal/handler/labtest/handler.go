package labtest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teleclinic/telemed-api/internal/handler"
	"github.com/teleclinic/telemed-api/internal/middleware"
	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/service/labtest"
)

type Handler struct {
	service labtest.LabTestService
}

func NewHandler(service labtest.LabTestService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	labTests := r.Group("/lab-tests")
	{
		labTests.POST("/", h.CreateLabTest)
		labTests.GET("/:patient_id", h.ListLabTests)
	}
}

func (h *Handler) CreateLabTest(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	var req model.CreateLabTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	id, err := h.service.CreateLabTest(c.Request.Context(), caller, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"id": id}))
}

func (h *Handler) ListLabTests(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("not authenticated"))
		return
	}

	labTests, err := h.service.ListLabTests(c.Request.Context(), caller, c.Param("patient_id"))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(labTests))
}
