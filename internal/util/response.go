package util

import "github.com/gin-gonic/gin"

// Message writes the uniform {"message": ...} JSON body.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// AbortMessage writes the body and stops the handler chain, for middleware.
func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}
