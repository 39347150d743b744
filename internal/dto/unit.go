package dto

// ── 单位模块 DTO ──

// CreateUnitRequest 创建单位请求，所属地点由基地推导
type CreateUnitRequest struct {
	Name     string `json:"name"     binding:"required,max=100"`
	BaseName string `json:"baseName" binding:"required,max=100"`
}

// UpdateUnitRequest 更新单位请求；BaseName 为空表示不变更所属基地
type UpdateUnitRequest struct {
	Name     string  `json:"name"     binding:"required,max=100"`
	BaseName *string `json:"baseName" binding:"omitempty,max=100"`
}

// UnitResponse 单位信息响应
type UnitResponse struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name"`
	BaseName     string        `json:"baseName"`
	LocationName string        `json:"locationName"`
	Base         *BaseResponse `json:"base,omitempty"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
}
