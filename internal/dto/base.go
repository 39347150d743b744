package dto

// ── 基地模块 DTO ──

// CreateBaseRequest 创建基地请求
type CreateBaseRequest struct {
	Name         string `json:"name"         binding:"required,max=100"`
	LocationName string `json:"locationName" binding:"required,max=100"`
}

// UpdateBaseRequest 更新基地请求；LocationName 为空表示不变更所属地点
type UpdateBaseRequest struct {
	Name         string  `json:"name"         binding:"required,max=100"`
	LocationName *string `json:"locationName" binding:"omitempty,max=100"`
}

// PopulateRequest 查询参数：是否解析上级记录
type PopulateRequest struct {
	Populate bool `form:"populate"`
}

// BaseResponse 基地信息响应
// Location 仅在 populate=true 且上级地点存在时返回
type BaseResponse struct {
	ID           string            `json:"_id"`
	Name         string            `json:"name"`
	LocationName string            `json:"locationName"`
	Location     *LocationResponse `json:"location,omitempty"`
	CreatedAt    string            `json:"createdAt"`
	UpdatedAt    string            `json:"updatedAt"`
}
