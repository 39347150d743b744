package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"customer-matrix/internal/dto"
	"customer-matrix/internal/service"
	"customer-matrix/pkg/response"
)

// LocationHandler 地点模块 HTTP 处理器
type LocationHandler struct {
	locationSvc service.LocationService
}

// NewLocationHandler 创建 LocationHandler
func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

// ListLocations 获取地点列表
// GET /api/locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationSvc.List(c.Request.Context())
	if err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.OK(c, locations)
}

// GetLocation 获取地点详情
// GET /api/locations/:id
func (h *LocationHandler) GetLocation(c *gin.Context) {
	location, err := h.locationSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.OK(c, location)
}

// CreateLocation 创建地点
// POST /api/locations
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	location, err := h.locationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.Created(c, location)
}

// UpdateLocation 更新地点
// PUT /api/locations/:id
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	location, err := h.locationSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.OK(c, location)
}

// DeleteLocation 删除地点
// DELETE /api/locations/:id
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	if err := h.locationSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.Message(c, "Location deleted successfully")
}

// handleLocationError 统一处理地点模块业务错误
func (h *LocationHandler) handleLocationError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrLocationNotFound):
		response.NotFound(c, "Location not found")
	default:
		response.InternalError(c, err)
	}
}
