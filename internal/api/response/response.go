package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"` // 0 代表成功，非 0 代表错误码
	Msg     string      `json:"msg"`  // 提示信息
	Data    interface{} `json:"data"` // 数据载荷
	Details interface{} `json:"details,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// Created 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// NoContent 删除成功，无载荷
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{
		Code: -1,
		Msg:  msg,
		Data: nil,
	})
}

// ValidationError 校验失败，带逐字段明细
func ValidationError(c *gin.Context, httpStatus int, msg string, details interface{}) {
	c.JSON(httpStatus, Response{
		Code:    -1,
		Msg:     msg,
		Details: details,
	})
}
