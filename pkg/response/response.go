package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 统一错误响应结构
// 成功响应直接返回记录本身，不做外层包装
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageBody 仅携带提示信息的响应（如删除成功）
type MessageBody struct {
	Message string `json:"message"`
}

// ── 业务错误码 ──

const (
	CodeValidation   = 10001
	CodeRateLimited  = 10004
	CodeBodyTooLarge = 10005
	CodeNotFound     = 40400
	CodeServerError  = 50000
	CodeStoreWrite   = 50100
)

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 提示信息
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, ErrorBody{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeValidation, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// StoreError 501 存储写入失败，携带底层错误原文
func StoreError(c *gin.Context, err error) {
	Error(c, http.StatusNotImplemented, CodeStoreWrite, "Store Error: "+err.Error())
}

// InternalError 500，携带错误原文
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, CodeServerError, "Server Error: "+err.Error())
}
