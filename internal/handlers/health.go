package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aoyagi/todo-list-api/internal/response"
)

// Health reports service liveness in the uniform envelope.
func Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "Todo List API is running", gin.H{"status": "ok"})
}
