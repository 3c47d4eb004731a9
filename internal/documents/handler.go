package documents

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	docs := rg.Group("/documents")
	{
		docs.GET("/checklist-template", h.GetChecklistTemplate)
		docs.GET("/suggested-shift", h.GetSuggestedShift)
		docs.POST("/inspections/pdf", h.RenderInspection)
		docs.POST("/work-permits/pdf", h.RenderWorkPermit)
	}
}

func (h *Handler) GetChecklistTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.service.ChecklistTemplate()})
}

func (h *Handler) GetSuggestedShift(c *gin.Context) {
	hour, err := strconv.Atoi(c.Query("hour"))
	if err != nil || hour < 0 || hour > 23 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hour must be between 0 and 23"})
		return
	}
	shift := ShiftForHour(hour)
	c.JSON(http.StatusOK, gin.H{"shift": shift, "label": shift.Label()})
}

func (h *Handler) RenderInspection(c *gin.Context) {
	var in Inspection
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	render := h.service.RenderInspectionReport
	if storeRequested(c) {
		render = h.service.GenerateInspectionReport
	}
	artifact, err := render(c.Request.Context(), &in)
	h.respond(c, artifact, err)
}

func (h *Handler) RenderWorkPermit(c *gin.Context) {
	var p WorkPermit
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	render := h.service.RenderWorkPermit
	if storeRequested(c) {
		render = h.service.GenerateWorkPermit
	}
	artifact, err := render(c.Request.Context(), &p)
	h.respond(c, artifact, err)
}

func storeRequested(c *gin.Context) bool {
	store, _ := strconv.ParseBool(c.Query("store"))
	return store
}

// respond sends the PDF itself, or its metadata when it was stored.
func (h *Handler) respond(c *gin.Context, artifact *Artifact, err error) {
	if err != nil {
		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Document request failed", zap.Error(err))
		}
		c.JSON(status, body)
		return
	}

	if artifact.Location != "" {
		c.JSON(http.StatusCreated, artifact)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Name))
	c.Header("X-Page-Count", strconv.Itoa(artifact.Pages))
	c.Data(http.StatusOK, pdfContentType, artifact.Data)
}

func errorResponse(err error) (int, gin.H) {
	var many ValidationErrors
	var one *ValidationError
	switch {
	case errors.As(err, &many):
		return http.StatusUnprocessableEntity, gin.H{"error": ErrValidation.Error(), "details": many}
	case errors.As(err, &one):
		return http.StatusUnprocessableEntity, gin.H{"error": ErrValidation.Error(), "details": ValidationErrors{one}}
	case errors.Is(err, ErrRenderFault):
		return http.StatusInternalServerError, gin.H{"error": err.Error()}
	case errors.Is(err, ErrNoSink):
		return http.StatusInternalServerError, gin.H{"error": err.Error()}
	case errors.Is(err, ErrSerialization):
		return http.StatusBadGateway, gin.H{"error": err.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"error": err.Error()}
	}
}
