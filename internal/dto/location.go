package dto

// ── 地点模块 DTO ──

// CreateLocationRequest 创建地点请求
type CreateLocationRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateLocationRequest 更新地点请求（整体替换名称）
type UpdateLocationRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// LocationResponse 地点信息响应
type LocationResponse struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
