package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/game"
	"github.com/hailam/quoridor/internal/policy"
)

type createGameRequest struct {
	PlayerName   string `json:"player_name"`
	AIDifficulty string `json:"ai_difficulty"`
}

func (a *API) createGameHandler(c *gin.Context) {
	var req createGameRequest
	// A missing or empty body is fine: both fields default (spec §6).
	_ = c.ShouldBindJSON(&req)

	if req.PlayerName == "" {
		req.PlayerName = "Player"
	}

	diff, err := policy.ParseDifficulty(req.AIDifficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_ai_difficulty",
			"message": err.Error(),
		})
		return
	}

	s := a.reg.Create(c.Request.Context(), req.PlayerName, diff)

	c.JSON(http.StatusCreated, gin.H{
		"game_id":      s.GameID,
		"status":       s.Status,
		"current_turn": int(s.Current),
		"message":      "game created",
	})
}

func (a *API) getGameHandler(c *gin.Context) {
	gameID := c.Param("game_id")
	dto, ok := a.reg.Get(gameID)
	if !ok {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (a *API) destroyGameHandler(c *gin.Context) {
	gameID := c.Param("game_id")
	if !a.reg.Destroy(gameID) {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "game destroyed"})
}

type moveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (a *API) moveHandler(c *gin.Context) {
	gameID := c.Param("game_id")

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid_request", "message": err.Error()})
		return
	}

	dto, err := a.reg.ApplyPawnMove(c.Request.Context(), gameID, game.Player1, board.Pos{Row: req.Row, Col: req.Col})
	if err != nil {
		a.writeRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "game_state": dto, "message": "move applied"})
}

type wallRequest struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation"`
}

func (a *API) wallHandler(c *gin.Context) {
	gameID := c.Param("game_id")

	var req wallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid_request", "message": err.Error()})
		return
	}

	orientation, err := board.ParseOrientation(req.Orientation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid_wall_position", "message": err.Error()})
		return
	}

	w := board.Wall{Row: req.Row, Col: req.Col, Orientation: orientation}
	dto, err := a.reg.ApplyWall(c.Request.Context(), gameID, game.Player1, w)
	if err != nil {
		a.writeRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "game_state": dto, "message": "wall placed"})
}

func (a *API) aiMoveHandler(c *gin.Context) {
	gameID := c.Param("game_id")

	action, dto, err := a.reg.ApplyOpponentTurn(c.Request.Context(), gameID)
	if err != nil {
		a.writeRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"action":     action,
		"game_state": dto,
		"message":    "opponent moved",
	})
}

func (a *API) validMovesHandler(c *gin.Context) {
	gameID := c.Param("game_id")

	actions, err := a.reg.ListValidActions(gameID)
	if err != nil {
		a.writeRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, actions)
}
