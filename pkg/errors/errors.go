package errors

import "errors"

// 存储层统一错误，各存储后端需将原生错误翻译为以下哨兵值
var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 唯一约束冲突
	ErrDuplicate = errors.New("duplicate key")
)
