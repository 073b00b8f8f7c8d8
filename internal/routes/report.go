package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ExportVault(c *gin.Context) {
	ctx := c.Request.Context()
	snapshot, err := h.ReportService.Export(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=piggyvault-backup.json")
	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()
	summary, err := h.ReportService.Summarize(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
