package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK 写出 200 成功响应。
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// OKMessage 写出带提示信息的 200 成功响应，data 为 nil 时省略。
func OKMessage(c *gin.Context, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// Created 写出 201 成功响应。
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message, "data": data})
}

// List 写出分页列表响应，列表放在 data.<key> 下。
func List(c *gin.Context, key string, items interface{}, count int, total int64, page Page) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      count,
		"total":      total,
		"pagination": BuildPagination(page, total),
		"data":       gin.H{key: items},
	})
}
