package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"customer-matrix/internal/service"
	"customer-matrix/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRecords 导出全部记录
// GET /api/export/records
func (h *ExportHandler) ExportRecords(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportRecords(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
