package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mafia-game/backend/internal/models"
)

func TestRolePartitionForAllSupportedSizes(t *testing.T) {
	for n := 3; n <= 40; n++ {
		t.Run(fmt.Sprintf("%d_players", n), func(t *testing.T) {
			e := testEngine(42)
			host, _ := setupLobby(t, e, n)
			if err := e.StartGame(host, host, n); err != nil {
				t.Fatalf("start game error: %v", err)
			}

			mafia, civ := factions(e, host)
			wantMafia := (n + 3) / 4
			if len(mafia) != wantMafia {
				t.Fatalf("mafia count = %d, want %d", len(mafia), wantMafia)
			}
			if len(civ) != n-wantMafia {
				t.Fatalf("civilian count = %d, want %d", len(civ), n-wantMafia)
			}
		})
	}
}

func TestRoleAssignmentIsSeedDeterministic(t *testing.T) {
	run := func(seed int64) []models.Role {
		e := NewEngine(rand.New(rand.NewSource(seed)))
		host, _ := setupLobby(t, e, 8)
		if err := e.StartGame(host, host, 8); err != nil {
			t.Fatalf("start game error: %v", err)
		}
		roles := make([]models.Role, 0, 8)
		for _, p := range e.games[host].Players {
			roles = append(roles, p.Role)
		}
		return roles
	}

	first := run(7)
	second := run(7)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("role[%d] = %s on rerun, want %s", i, second[i], first[i])
		}
	}
}

func TestEveryPlayerHasARoleAfterStart(t *testing.T) {
	e := testEngine(3)
	host, _ := setupLobby(t, e, 5)
	if err := e.StartGame(host, host, 5); err != nil {
		t.Fatalf("start game error: %v", err)
	}

	for _, p := range e.games[host].Players {
		if p.Role != models.RoleMafia && p.Role != models.RoleCivilian {
			t.Fatalf("player %s role = %s, want mafia or civilian", p.WalletAddress, p.Role)
		}
		if p.Dead || p.Convicted {
			t.Fatalf("player %s should start active", p.WalletAddress)
		}
	}
}

func TestRolesUnassignedBeforeStart(t *testing.T) {
	e := testEngine(3)
	host, _ := setupLobby(t, e, 3)

	for _, p := range e.games[host].Players {
		if p.Role != models.RoleUnassigned {
			t.Fatalf("player %s role = %s before start, want unassigned", p.WalletAddress, p.Role)
		}
	}
}
