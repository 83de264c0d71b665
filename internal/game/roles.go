package game

import "github.com/mafia-game/backend/internal/models"

// assignRoles marks ceil(N/4) players as Mafia and the rest as civilians.
// Selection is an unbiased shuffle of the player indices, so every player
// has an equal chance of a Mafia seat. Caller holds the engine lock.
func (e *Engine) assignRoles(g *models.Game) {
	playerCount := len(g.Players)
	mafiaCount := (playerCount + 3) / 4

	indices := make([]int, playerCount)
	for i := range indices {
		indices[i] = i
	}
	e.rng.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	for _, p := range g.Players {
		p.Role = models.RoleCivilian
		p.Dead = false
		p.Convicted = false
	}
	for _, idx := range indices[:mafiaCount] {
		g.Players[idx].Role = models.RoleMafia
	}
}
