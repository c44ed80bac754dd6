package handler

import (
	"log"
	"net/http"
	"strconv"

	"backend/pkg/apperror"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. On failure it writes the 400
// response itself and returns false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps a service failure onto the wire contract:
// missing rows get the resource's static 404 message, validation errors
// surface their own message with a 400, and everything else is logged
// server-side and returned as the generic message with a 500.
func respondServiceError(c *gin.Context, err error, notFoundMsg, genericMsg string) {
	switch code := apperror.StatusCode(err); code {
	case http.StatusNotFound:
		c.JSON(code, response.Error(notFoundMsg))
	case http.StatusBadRequest:
		c.JSON(code, response.Error(err.Error()))
	default:
		log.Printf("%s: %v", genericMsg, err)
		c.JSON(http.StatusInternalServerError, response.Error(genericMsg))
	}
}
