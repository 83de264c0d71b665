package game

import "github.com/mafia-game/backend/internal/models"

// PhaseResult describes what a single ExecutePhase call resolved.
type PhaseResult struct {
	Phase     models.Phase        `json:"phase"` // phase the game advanced into
	Round     int                 `json:"round"`
	Outcome   models.PhaseOutcome `json:"outcome"`
	Convicted string              `json:"convicted,omitempty"` // address convicted this phase
	Killed    string              `json:"killed,omitempty"`    // address killed this phase
}

// AccuseAsMafia records the caller's accusation for the current day round.
// One accusation per player per round; the vote has no immediate effect on
// the accused.
func (e *Engine) AccuseAsMafia(host, accuser, accused string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.games[host]
	if !ok || g.Status != models.StatusInProgress {
		return ErrGameNotRunning
	}
	if g.LastOutcome != models.OutcomeContinuation {
		return ErrAccuseOnFinished
	}
	if g.Phase != models.PhaseDay {
		return ErrAccuseAtNight
	}

	p := g.FindPlayer(accuser)
	if p == nil || !p.Active() {
		return ErrAccuserNotActive
	}
	target := g.FindPlayer(accused)
	if target == nil || !target.Active() {
		return ErrAccusedNotActive
	}
	if _, voted := g.AccusationVotes[accuser]; voted {
		return ErrDuplicateAccusation
	}

	g.AccusationVotes[accuser] = accused
	return nil
}

// VoteToKill records a Mafia member's kill vote for the current night round.
func (e *Engine) VoteToKill(host, voter, victim string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.games[host]
	if !ok || g.Status != models.StatusInProgress {
		return ErrGameNotRunning
	}
	if g.LastOutcome != models.OutcomeContinuation {
		return ErrKillOnFinished
	}
	if g.Phase != models.PhaseNight {
		return ErrKillDuringDay
	}

	p := g.FindPlayer(voter)
	if p == nil || !p.Active() {
		return ErrKillerNotActive
	}
	if p.Role != models.RoleMafia {
		return ErrKillerNotMafia
	}
	target := g.FindPlayer(victim)
	if target == nil || !target.Active() {
		return ErrVictimNotActive
	}
	if target.Role == models.RoleMafia {
		return ErrVictimIsMafia
	}
	if _, voted := g.KillVotes[voter]; voted {
		return ErrDuplicateKillVote
	}

	g.KillVotes[voter] = victim
	return nil
}

// ExecutePhase tallies the current phase's votes, applies the conviction or
// kill, advances the phase and evaluates the victory conditions. Only the
// host may advance the game.
func (e *Engine) ExecutePhase(host, caller string) (*PhaseResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != host {
		return nil, ErrNotHost
	}

	g, ok := e.games[host]
	if !ok || g.Status != models.StatusInProgress {
		return nil, ErrGameNotRunning
	}
	if g.LastOutcome != models.OutcomeContinuation {
		return nil, ErrExecuteOnFinished
	}

	result := &PhaseResult{}

	switch g.Phase {
	case models.PhaseDay:
		if convicted := tallyPlurality(g.AccusationVotes); convicted != "" {
			g.FindPlayer(convicted).Convicted = true
			g.ConvictedPlayers = append(g.ConvictedPlayers, convicted)
			result.Convicted = convicted
		}
		g.AccusationVotes = make(map[string]string)
		g.Phase = models.PhaseNight

	case models.PhaseNight:
		if killed := tallyPlurality(g.KillVotes); killed != "" {
			g.FindPlayer(killed).Dead = true
			g.KilledPlayers = append(g.KilledPlayers, killed)
			result.Killed = killed
		}
		g.KillVotes = make(map[string]string)
		g.Phase = models.PhaseDay
		g.Round++
	}

	g.LastOutcome = evaluateVictory(g)

	result.Phase = g.Phase
	result.Round = g.Round
	result.Outcome = g.LastOutcome
	return result, nil
}

// tallyPlurality returns the target with strictly the most votes, or ""
// when there are no votes or the lead is tied.
func tallyPlurality(votes map[string]string) string {
	counts := make(map[string]int)
	for _, target := range votes {
		counts[target]++
	}

	maxVotes := 0
	leader := ""
	tied := false
	for target, count := range counts {
		switch {
		case count > maxVotes:
			maxVotes = count
			leader = target
			tied = false
		case count == maxVotes:
			tied = true
		}
	}

	if tied {
		return ""
	}
	return leader
}

// evaluateVictory counts active players per faction. The civilian check runs
// first: eliminating every Mafia member wins for the civilians even if no
// civilians remain either.
func evaluateVictory(g *models.Game) models.PhaseOutcome {
	mafiaCount := 0
	civilianCount := 0
	for _, p := range g.Players {
		if !p.Active() {
			continue
		}
		if p.Role == models.RoleMafia {
			mafiaCount++
		} else {
			civilianCount++
		}
	}

	if mafiaCount == 0 {
		return models.OutcomeCivilianVictory
	}
	if civilianCount <= mafiaCount {
		return models.OutcomeMafiaVictory
	}
	return models.OutcomeContinuation
}
