package response

import (
	"github.com/gin-gonic/gin"
)

// FieldError is one validation violation, express-validator shaped
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// Msg sends {"msg": "..."} with the given status
func Msg(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"msg": msg})
}

// ValidationErrors sends {"errors": [...]} with HTTP 400
func ValidationErrors(c *gin.Context, errs []FieldError) {
	c.JSON(400, gin.H{"errors": errs})
}

// ServerError sends the generic 500 body
func ServerError(c *gin.Context) {
	Msg(c, 500, "Server Error")
}
