package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hailam/quoridor/internal/rules"
)

// statusFor maps a rule-engine error kind to its HTTP status (spec §6, §7).
func statusFor(kind rules.Kind) int {
	if kind == rules.KindGameNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// writeRuleError renders err (expected to be a *rules.Error) in the
// documented {success:false, error, message} shape.
func (a *API) writeRuleError(c *gin.Context, err error) {
	kind := rules.KindOf(err)
	if kind == "" {
		a.log.Errorw("[httpapi] unexpected non-rule error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal_error",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.JSON(statusFor(kind), gin.H{
		"success": false,
		"error":   kind,
		"message": err.Error(),
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   rules.KindGameNotFound,
		"message": "game not found",
	})
}
