package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mafia-game/backend/internal/models"
)

// Engine manages all games, keyed by host wallet address. Each host owns at
// most one current game; a new InitializeGame replaces a concluded one.
type Engine struct {
	games map[string]*models.Game
	rng   *rand.Rand
	mu    sync.RWMutex
}

// NewEngine constructs an Engine with the provided rng or a time-seeded default.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		games: make(map[string]*models.Game),
		rng:   rng,
	}
}

// InitializeGame creates a fresh game slot for the host. An in-progress game
// must be cancelled or finished first.
func (e *Engine) InitializeGame(host string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if existing, ok := e.games[host]; ok && existing.Status == models.StatusInProgress {
		return ErrGameInProgress
	}

	e.games[host] = &models.Game{
		Host:             host,
		Status:           models.StatusInitialized,
		Players:          make([]*models.Player, 0),
		Phase:            models.PhaseDay,
		Round:            0,
		AccusationVotes:  make(map[string]string),
		KillVotes:        make(map[string]string),
		LastOutcome:      models.OutcomeContinuation,
		ConvictedPlayers: make([]string, 0),
		KilledPlayers:    make([]string, 0),
		CreatedAt:        time.Now(),
	}

	return nil
}

// JoinGame appends a player to an initialized game. Roles stay unassigned
// until the game starts.
func (e *Engine) JoinGame(host, player, nickname string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.games[host]
	if !ok || g.Status == models.StatusFinished {
		return ErrNoJoinableGame
	}
	if g.Status == models.StatusInProgress {
		return ErrJoinInProgress
	}
	if g.FindPlayer(player) != nil {
		return ErrAlreadyJoined
	}

	g.Players = append(g.Players, &models.Player{
		WalletAddress: player,
		Nickname:      nickname,
		Role:          models.RoleUnassigned,
		JoinedAt:      time.Now(),
	})

	return nil
}

// StartGame assigns roles and moves the game into the first day round.
func (e *Engine) StartGame(host, caller string, expectedPlayers int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != host {
		return ErrNotHost
	}

	g, ok := e.games[host]
	if !ok || g.Status == models.StatusFinished {
		return ErrNotInitialized
	}
	if g.Status == models.StatusInProgress {
		return ErrStartInProgress
	}
	if expectedPlayers < 3 {
		return ErrInsufficientPlayers
	}
	if len(g.Players) != expectedPlayers {
		return ErrPlayerCountMismatch
	}

	e.assignRoles(g)

	now := time.Now()
	g.ExpectedPlayers = expectedPlayers
	g.Status = models.StatusInProgress
	g.Phase = models.PhaseDay
	g.Round = 1
	g.StartedAt = &now

	return nil
}

// CancelGame discards the host's current game regardless of its progress.
// Cancelling a host with no game is a no-op, matching the reset semantics
// of a keyed store.
func (e *Engine) CancelGame(host, caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != host {
		return ErrNotHost
	}

	delete(e.games, host)
	return nil
}

// FinishGame closes out a game whose outcome has been decided.
func (e *Engine) FinishGame(host, caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != host {
		return ErrNotHost
	}

	g, ok := e.games[host]
	if !ok {
		return ErrGameNotFound
	}
	if g.LastOutcome == models.OutcomeContinuation {
		return ErrGameNotConcluded
	}

	g.Status = models.StatusFinished
	return nil
}

// GetPlayerList returns the joined players in join order, without roles.
// Only the host or a joined player may see the list.
func (e *Engine) GetPlayerList(host, caller string) ([]models.PlayerSummary, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	g, ok := e.games[host]
	if !ok {
		return nil, ErrGameNotFound
	}
	if caller != host && g.FindPlayer(caller) == nil {
		return nil, ErrNotAParticipant
	}

	players := make([]models.PlayerSummary, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, models.PlayerSummary{
			WalletAddress: p.WalletAddress,
			Nickname:      p.Nickname,
		})
	}
	return players, nil
}

// GetSelfPlayerInfo returns the caller's own record, including their role.
// A player's role is never revealed through any other read.
func (e *Engine) GetSelfPlayerInfo(host, caller string) (*models.SelfInfo, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	g, ok := e.games[host]
	if !ok {
		return nil, ErrGameNotFound
	}
	p := g.FindPlayer(caller)
	if p == nil {
		return nil, ErrNotAParticipant
	}

	return &models.SelfInfo{
		WalletAddress: p.WalletAddress,
		Nickname:      p.Nickname,
		Dead:          p.Dead,
		Convicted:     p.Convicted,
		Role:          p.Role,
	}, nil
}

// GetGameState returns the shared progress view of the host's game.
func (e *Engine) GetGameState(host, caller string) (*models.GameSnapshot, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	g, ok := e.games[host]
	if !ok {
		return nil, ErrGameNotFound
	}
	if caller != host && g.FindPlayer(caller) == nil {
		return nil, ErrNotAParticipant
	}

	return &models.GameSnapshot{
		Host:             g.Host,
		Status:           g.Status,
		Phase:            g.Phase,
		Round:            g.Round,
		LastOutcome:      g.LastOutcome,
		ConvictedPlayers: append([]string(nil), g.ConvictedPlayers...),
		KilledPlayers:    append([]string(nil), g.KilledPlayers...),
		PlayerCount:      len(g.Players),
	}, nil
}
