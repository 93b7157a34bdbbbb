package apperror

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes err as a JSON error response. Unclassified errors are
// logged with their cause and surfaced as a bare 500.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"message": SafeMessage(err)})
}
