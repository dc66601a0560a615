// Package httpapi implements the HTTP surface mounted under
// /api/v1/quoridor (spec §6): gin routes translating JSON requests into
// registry calls and registry results back into the documented response
// shapes.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hailam/quoridor/internal/registry"
)

// API wires the registry into a gin engine.
type API struct {
	reg *registry.Registry
	log *zap.SugaredLogger
}

// New constructs an API handler bound to reg.
func New(reg *registry.Registry, log *zap.SugaredLogger) *API {
	return &API{reg: reg, log: log}
}

// RegisterRoutes mounts every endpoint from spec §6 onto r, plus the
// supplemented health and destroy endpoints (SPEC_FULL §C).
func (a *API) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", a.healthHandler)

	v1 := r.Group("/api/v1/quoridor")
	{
		v1.POST("/games", a.createGameHandler)
		v1.GET("/games/:game_id", a.getGameHandler)
		v1.DELETE("/games/:game_id", a.destroyGameHandler)
		v1.POST("/games/:game_id/move", a.moveHandler)
		v1.POST("/games/:game_id/wall", a.wallHandler)
		v1.POST("/games/:game_id/ai-move", a.aiMoveHandler)
		v1.GET("/games/:game_id/valid-moves", a.validMovesHandler)
	}
}

func (a *API) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
