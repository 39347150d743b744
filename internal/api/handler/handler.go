package handler

import "customer-matrix/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Location *LocationHandler
	Base     *BaseHandler
	Unit     *UnitHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Location: NewLocationHandler(svc.Location),
		Base:     NewBaseHandler(svc.Base),
		Unit:     NewUnitHandler(svc.Unit),
		Export:   NewExportHandler(svc.Export),
	}
}
