package respond

import "github.com/gin-gonic/gin"

// JSON writes a success payload.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Message writes a simple {"message": ...} body.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
