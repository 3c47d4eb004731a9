package history

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FabianMondragon08/Checklist/internal/documents"
)

type Handler struct {
	exporter *Exporter
	logger   *zap.Logger
}

func NewHandler(exporter *Exporter, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{exporter: exporter, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	docs := rg.Group("/documents")
	{
		docs.POST("/inspections/export", h.ExportInspections)
		docs.POST("/work-permits/export", h.ExportPermits)
	}
}

type inspectionExportRequest struct {
	Date    string                 `json:"date"`
	Records []documents.Inspection `json:"records"`
}

type permitExportRequest struct {
	Date    string                 `json:"date"`
	Records []documents.WorkPermit `json:"records"`
}

func (h *Handler) ExportInspections(c *gin.Context) {
	var req inspectionExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDay(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	format, err := ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	export, err := h.exporter.ExportInspections(req.Records, req.Date, format)
	h.respond(c, export, err)
}

func (h *Handler) ExportPermits(c *gin.Context) {
	var req permitExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDay(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	format, err := ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	export, err := h.exporter.ExportPermits(req.Records, req.Date, format)
	h.respond(c, export, err)
}

func (h *Handler) respond(c *gin.Context, export *Export, err error) {
	if err != nil {
		h.logger.Error("History export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.logger.Info("History exported", zap.String("file", export.Name), zap.Int("rows", export.Rows))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Name))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}

func validDay(day string) bool {
	if day == "" {
		return true
	}
	_, err := time.Parse(isoDate, day)
	return err == nil
}
