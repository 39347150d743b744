package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"customer-matrix/internal/dto"
	"customer-matrix/internal/service"
	"customer-matrix/pkg/response"
)

// UnitHandler 单位模块 HTTP 处理器
type UnitHandler struct {
	unitSvc service.UnitService
}

// NewUnitHandler 创建 UnitHandler
func NewUnitHandler(unitSvc service.UnitService) *UnitHandler {
	return &UnitHandler{unitSvc: unitSvc}
}

// ListUnits 获取单位列表
// GET /api/units?populate=true
func (h *UnitHandler) ListUnits(c *gin.Context) {
	var q dto.PopulateRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "populate must be a boolean")
		return
	}

	units, err := h.unitSvc.List(c.Request.Context(), q.Populate)
	if err != nil {
		h.handleUnitError(c, err)
		return
	}

	response.OK(c, units)
}

// GetUnit 获取单位详情
// GET /api/units/:id?populate=true
func (h *UnitHandler) GetUnit(c *gin.Context) {
	var q dto.PopulateRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "populate must be a boolean")
		return
	}

	unit, err := h.unitSvc.GetByID(c.Request.Context(), c.Param("id"), q.Populate)
	if err != nil {
		h.handleUnitError(c, err)
		return
	}

	response.OK(c, unit)
}

// CreateUnit 创建单位
// POST /api/units
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req dto.CreateUnitRequest
	if !bindJSON(c, &req) {
		return
	}

	unit, err := h.unitSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleUnitError(c, err)
		return
	}

	response.Created(c, unit)
}

// UpdateUnit 更新单位
// PUT /api/units/:id
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	var req dto.UpdateUnitRequest
	if !bindJSON(c, &req) {
		return
	}

	unit, err := h.unitSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleUnitError(c, err)
		return
	}

	response.OK(c, unit)
}

// DeleteUnit 删除单位
// DELETE /api/units/:id
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	if err := h.unitSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleUnitError(c, err)
		return
	}

	response.Message(c, "Unit deleted successfully")
}

// handleUnitError 统一处理单位模块业务错误
func (h *UnitHandler) handleUnitError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrUnitNotFound):
		response.NotFound(c, "Unit not found")
	case errors.Is(err, service.ErrBaseNotFound):
		response.NotFound(c, "Base not found")
	default:
		response.InternalError(c, err)
	}
}
