package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/m06522052-gif/AqeelApp/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.svc.Dashboard()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, stats)
}

func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, summary)
}

// Export streams the summary workbook.
func (h *ReportHandler) Export(c *gin.Context) {
	data, err := h.svc.ExportXLSX()
	if err != nil {
		fail(c, err)
		return
	}
	filename := fmt.Sprintf("report-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
