package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":     "AiDUC API",
		"features": []string{"EyeRead", "NeoTutor", "Flexa", "Pathly", "EchoForum"},
	})
}

func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from AiDUC backend!"})
}
