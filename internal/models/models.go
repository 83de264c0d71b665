package models

import "time"

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	StatusInitialized GameStatus = "initialized"
	StatusInProgress  GameStatus = "in_progress"
	StatusFinished    GameStatus = "finished"
)

// Phase represents the current phase of the game
type Phase string

const (
	PhaseDay   Phase = "day"
	PhaseNight Phase = "night"
)

// Role represents a player's faction
type Role string

const (
	RoleUnassigned Role = "unassigned"
	RoleCivilian   Role = "civilian"
	RoleMafia      Role = "mafia"
)

// PhaseOutcome is the result of the most recent phase resolution
type PhaseOutcome string

const (
	OutcomeContinuation    PhaseOutcome = "continuation"
	OutcomeCivilianVictory PhaseOutcome = "civilian_victory"
	OutcomeMafiaVictory    PhaseOutcome = "mafia_victory"
)

// Player represents a participant in a game
type Player struct {
	WalletAddress string    `json:"walletAddress"`
	Nickname      string    `json:"nickname"`
	Role          Role      `json:"role,omitempty"` // Hidden from other players
	Dead          bool      `json:"dead"`
	Convicted     bool      `json:"convicted"`
	JoinedAt      time.Time `json:"joinedAt"`
}

// Active reports whether the player may still vote or be targeted
func (p *Player) Active() bool {
	return !p.Dead && !p.Convicted
}

// Game holds the full state of one host's game
type Game struct {
	Host             string            `json:"host"`
	Status           GameStatus        `json:"status"`
	ExpectedPlayers  int               `json:"expectedPlayers"`
	Players          []*Player         `json:"players"` // join order
	Phase            Phase             `json:"phase"`
	Round            int               `json:"round"`
	AccusationVotes  map[string]string `json:"-"` // accuser -> accused
	KillVotes        map[string]string `json:"-"` // voter -> victim
	LastOutcome      PhaseOutcome      `json:"lastOutcome"`
	ConvictedPlayers []string          `json:"convictedPlayers"`
	KilledPlayers    []string          `json:"killedPlayers"`
	CreatedAt        time.Time         `json:"createdAt"`
	StartedAt        *time.Time        `json:"startedAt,omitempty"`
}

// FindPlayer returns the player with the given wallet address, or nil
func (g *Game) FindPlayer(address string) *Player {
	for _, p := range g.Players {
		if p.WalletAddress == address {
			return p
		}
	}
	return nil
}

// PlayerSummary is the public view of a player, with the role withheld
type PlayerSummary struct {
	WalletAddress string `json:"walletAddress"`
	Nickname      string `json:"nickname"`
}

// SelfInfo is the private view a player gets of their own record
type SelfInfo struct {
	WalletAddress string `json:"walletAddress"`
	Nickname      string `json:"nickname"`
	Dead          bool   `json:"dead"`
	Convicted     bool   `json:"convicted"`
	Role          Role   `json:"role"`
}

// GameSnapshot is the shared view of a game's progress
type GameSnapshot struct {
	Host             string       `json:"host"`
	Status           GameStatus   `json:"status"`
	Phase            Phase        `json:"phase"`
	Round            int          `json:"round"`
	LastOutcome      PhaseOutcome `json:"lastOutcome"`
	ConvictedPlayers []string     `json:"convictedPlayers"`
	KilledPlayers    []string     `json:"killedPlayers"`
	PlayerCount      int          `json:"playerCount"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	EventGameInitialized = "game_initialized"
	EventPlayerJoined    = "player_joined"
	EventGameStarted     = "game_started"
	EventPhaseExecuted   = "phase_executed"
	EventGameCancelled   = "game_cancelled"
	EventGameFinished    = "game_finished"
	EventError           = "error"
)
