package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mafia-game/backend/internal/game"
	"github.com/mafia-game/backend/internal/models"
)

type InitializeGameRequest struct {
	CallerID string `json:"callerId"`
}

type JoinGameRequest struct {
	CallerID string `json:"callerId"`
	Nickname string `json:"nickname" binding:"required"`
}

type StartGameRequest struct {
	CallerID        string `json:"callerId" binding:"required"`
	ExpectedPlayers int    `json:"expectedPlayers" binding:"required"`
}

type AccuseRequest struct {
	CallerID string `json:"callerId" binding:"required"`
	Accused  string `json:"accused" binding:"required"`
}

type KillVoteRequest struct {
	CallerID string `json:"callerId" binding:"required"`
	Victim   string `json:"victim" binding:"required"`
}

type HostActionRequest struct {
	CallerID string `json:"callerId" binding:"required"`
}

// statusForError maps an engine rejection to an HTTP status code.
func statusForError(err error) int {
	var gameErr *game.GameError
	if !errors.As(err, &gameErr) {
		return http.StatusInternalServerError
	}
	switch gameErr.Kind() {
	case game.KindAuthorization:
		return http.StatusForbidden
	case game.KindNotFound:
		return http.StatusNotFound
	case game.KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func rejectWith(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

// InitializeGame creates a new game slot owned by the caller. A wallet
// address is issued when the caller does not supply one.
func InitializeGame(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InitializeGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		host := req.CallerID
		if host == "" {
			host = uuid.New().String()
		}

		if err := e.InitializeGame(host); err != nil {
			rejectWith(c, err)
			return
		}

		notifyHost(host, models.EventGameInitialized, gin.H{"host": host})
		c.JSON(http.StatusCreated, gin.H{"host": host})
	}
}

// JoinGame adds the caller to the host's game under a nickname. A wallet
// address is issued when the caller does not supply one.
func JoinGame(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Param("host")

		var req JoinGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		player := req.CallerID
		if player == "" {
			player = uuid.New().String()
		}

		if err := e.JoinGame(host, player, req.Nickname); err != nil {
			rejectWith(c, err)
			return
		}

		notifyHost(host, models.EventPlayerJoined, gin.H{
			"host":          host,
			"walletAddress": player,
			"nickname":      req.Nickname,
		})
		c.JSON(http.StatusOK, gin.H{"host": host, "walletAddress": player})
	}
}

// StartGame assigns roles and opens the first day round.
func StartGame(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Param("host")

		var req StartGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := e.StartGame(host, req.CallerID, req.ExpectedPlayers); err != nil {
			rejectWith(c, err)
			return
		}

		notifyHost(host, models.EventGameStarted, gin.H{"host": host})
		c.JSON(http.StatusOK, gin.H{"host": host, "status": models.StatusInProgress})
	}
}

// Accuse records a day-phase accusation by the caller.
func Accuse(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Param("host")

		var req AccuseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := e.AccuseAsMafia(host, req.CallerID, req.Accused); err != nil {
			rejectWith(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"host": host})
	}
}

// VoteToKill records a night-phase kill vote by the caller.
func VoteToKill(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Param("host")

		var req KillVoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := e.VoteToKill(host, req.CallerID, req.Victim); err != nil {
			rejectWith(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"host": host})
	}
}

// ExecutePhase resolves the current phase's votes and advances the game.
func ExecutePhase(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Param("host")

		var req HostActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := e.ExecutePhase(host, req.CallerID)
		if err != nil {
			rejectWith(c, err)
			return
		}

		notifyHost(host, models.EventPhaseExecuted, result)
		c.JSON(http.StatusOK, gin.H{"host": host, "result": result})
	}
}

// CancelGame discards the host's current game.
func CancelGame(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Param("host")

		var req HostActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := e.CancelGame(host, req.CallerID); err != nil {
			rejectWith(c, err)
			return
		}

		notifyHost(host, models.EventGameCancelled, gin.H{"host": host})
		c.JSON(http.StatusOK, gin.H{"host": host})
	}
}

// FinishGame closes a game whose outcome has been decided.
func FinishGame(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Param("host")

		var req HostActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := e.FinishGame(host, req.CallerID); err != nil {
			rejectWith(c, err)
			return
		}

		notifyHost(host, models.EventGameFinished, gin.H{"host": host})
		c.JSON(http.StatusOK, gin.H{"host": host, "status": models.StatusFinished})
	}
}

// GetGameState returns the shared progress view of the host's game.
func GetGameState(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Param("host")
		caller := c.Query("callerId")

		snapshot, err := e.GetGameState(host, caller)
		if err != nil {
			rejectWith(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"game": snapshot})
	}
}

// GetPlayerList returns the joined players in join order, roles withheld.
func GetPlayerList(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Param("host")
		caller := c.Query("callerId")

		players, err := e.GetPlayerList(host, caller)
		if err != nil {
			rejectWith(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"players": players})
	}
}

// GetSelfPlayerInfo returns the caller's own record, including their role.
func GetSelfPlayerInfo(e *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Param("host")
		caller := c.Query("callerId")

		self, err := e.GetSelfPlayerInfo(host, caller)
		if err != nil {
			rejectWith(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"player": self})
	}
}
