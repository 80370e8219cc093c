// file: utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

// Created 提交成功时返回 201
func Created(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: 0, Msg: msg, Data: data})
}

// Error 返回业务错误。对外契约要求真实的 HTTP 状态码（400/403/500 等），
// code 仍沿用内部业务错误码。
func Error(c *gin.Context, status int, code int, msg string) {
	c.JSON(status, Response{Code: code, Msg: msg})
}
