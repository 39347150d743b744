package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"customer-matrix/internal/dto"
	"customer-matrix/internal/service"
	"customer-matrix/pkg/response"
)

// BaseHandler 基地模块 HTTP 处理器
type BaseHandler struct {
	baseSvc service.BaseService
}

// NewBaseHandler 创建 BaseHandler
func NewBaseHandler(baseSvc service.BaseService) *BaseHandler {
	return &BaseHandler{baseSvc: baseSvc}
}

// ListBases 获取基地列表
// GET /api/bases?populate=true
func (h *BaseHandler) ListBases(c *gin.Context) {
	var q dto.PopulateRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "populate must be a boolean")
		return
	}

	bases, err := h.baseSvc.List(c.Request.Context(), q.Populate)
	if err != nil {
		h.handleBaseError(c, err)
		return
	}

	response.OK(c, bases)
}

// GetBase 获取基地详情
// GET /api/bases/:id?populate=true
func (h *BaseHandler) GetBase(c *gin.Context) {
	var q dto.PopulateRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "populate must be a boolean")
		return
	}

	base, err := h.baseSvc.GetByID(c.Request.Context(), c.Param("id"), q.Populate)
	if err != nil {
		h.handleBaseError(c, err)
		return
	}

	response.OK(c, base)
}

// CreateBase 创建基地
// POST /api/bases
func (h *BaseHandler) CreateBase(c *gin.Context) {
	var req dto.CreateBaseRequest
	if !bindJSON(c, &req) {
		return
	}

	base, err := h.baseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBaseError(c, err)
		return
	}

	response.Created(c, base)
}

// UpdateBase 更新基地
// PUT /api/bases/:id
func (h *BaseHandler) UpdateBase(c *gin.Context) {
	var req dto.UpdateBaseRequest
	if !bindJSON(c, &req) {
		return
	}

	base, err := h.baseSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleBaseError(c, err)
		return
	}

	response.OK(c, base)
}

// DeleteBase 删除基地
// DELETE /api/bases/:id
func (h *BaseHandler) DeleteBase(c *gin.Context) {
	if err := h.baseSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleBaseError(c, err)
		return
	}

	response.Message(c, "Base deleted successfully")
}

// handleBaseError 统一处理基地模块业务错误
func (h *BaseHandler) handleBaseError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrBaseNotFound):
		response.NotFound(c, "Base not found")
	case errors.Is(err, service.ErrLocationNotFound):
		response.NotFound(c, "Location not found")
	default:
		response.InternalError(c, err)
	}
}
