package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"customer-matrix/internal/service"
	"customer-matrix/pkg/response"
)

// bindJSON 解析请求体，失败时直接写出 400
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "Request body too large")
			return false
		}
		response.BadRequest(c, bindingMessage(err))
		return false
	}
	return true
}

// bindingMessage 将绑定错误转换为对外提示
// 字段名取结构体字段名，与 "Name is required" 的格式一致
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "max":
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		default:
			return fe.Field() + " is invalid"
		}
	}
	return "Invalid request body"
}

// handleCommonError 处理各模块共有的校验与写入错误，已处理返回 true
func handleCommonError(c *gin.Context, err error) bool {
	var reqErr *service.RequiredFieldError
	var writeErr *service.WriteError
	switch {
	case errors.As(err, &reqErr):
		response.BadRequest(c, reqErr.Error())
	case errors.As(err, &writeErr):
		response.StoreError(c, writeErr.Err)
	default:
		return false
	}
	return true
}
