package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFailure maps a service error onto the response envelope using the
// failure taxonomy's code.
func JSONFailure(c *gin.Context, err error) {
	JSONError(c, GetCode(err), err.Error())
}
