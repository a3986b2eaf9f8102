package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应信封 {status, message, data}
// data 为空时整体省略（删除成功的响应没有 data 字段）
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	StatusPublished = "published"
	StatusDeleted   = "deleted"
	StatusError     = "error"
)

// Published 创建/查询成功
func Published(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: StatusPublished, Message: message, Data: data})
}

// Deleted 删除成功，无 data
func Deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Status: StatusDeleted, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Status: StatusError, Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{Status: StatusError, Message: message})
}

func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Response{Status: StatusError, Message: err.Error()})
}
