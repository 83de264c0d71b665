package game

// ErrorKind classifies a rejected command so transport layers can map it
// to an appropriate status code.
type ErrorKind string

const (
	KindAuthorization ErrorKind = "authorization"
	KindState         ErrorKind = "state"
	KindTarget        ErrorKind = "target"
	KindDuplicate     ErrorKind = "duplicate"
	KindCapacity      ErrorKind = "capacity"
	KindNotFound      ErrorKind = "not_found"
)

// GameError is a precondition-style rejection. A rejected command leaves
// the game state unchanged.
type GameError struct {
	kind    ErrorKind
	message string
}

func (e *GameError) Error() string {
	return e.message
}

func (e *GameError) Kind() ErrorKind {
	return e.kind
}

var (
	ErrGameInProgress      = &GameError{KindState, "a game cannot be initialized while another is in progress"}
	ErrNoJoinableGame      = &GameError{KindNotFound, "a game must be started for the given host address to join"}
	ErrJoinInProgress      = &GameError{KindState, "a game cannot be joined while in progress"}
	ErrAlreadyJoined       = &GameError{KindDuplicate, "a game cannot be joined again"}
	ErrNotInitialized      = &GameError{KindState, "you must have initialized a game"}
	ErrStartInProgress     = &GameError{KindState, "a game cannot be started while already in progress"}
	ErrInsufficientPlayers = &GameError{KindCapacity, "a game requires at least three players"}
	ErrPlayerCountMismatch = &GameError{KindCapacity, "game does not match the expected number of players"}
	ErrGameNotRunning      = &GameError{KindState, "game for host address must be running"}
	ErrGameNotFound        = &GameError{KindNotFound, "no game exists for the given host address"}
	ErrNotHost             = &GameError{KindAuthorization, "only the game host can perform this action"}
	ErrGameNotConcluded    = &GameError{KindState, "the game has not yet reached a conclusion"}
	ErrNotAParticipant     = &GameError{KindAuthorization, "the caller is not a player in the game"}

	ErrAccuseOnFinished    = &GameError{KindState, "Mafia accusations cannot be submitted on games that have finished"}
	ErrAccuseAtNight       = &GameError{KindState, "Mafia accusations can only be made during the day"}
	ErrAccuserNotActive    = &GameError{KindAuthorization, "the accuser must be a player participating in the game"}
	ErrAccusedNotActive    = &GameError{KindTarget, "the accused must be a player participating in the game"}
	ErrDuplicateAccusation = &GameError{KindDuplicate, "only one Mafia accusation each round can be submitted"}

	ErrKillOnFinished    = &GameError{KindState, "votes to kill cannot be submitted on games that have finished"}
	ErrKillDuringDay     = &GameError{KindState, "votes to kill can only be submitted at night"}
	ErrKillerNotActive   = &GameError{KindAuthorization, "votes to kill cannot be submitted by non-participating players"}
	ErrKillerNotMafia    = &GameError{KindAuthorization, "only Mafia members can submit votes to kill"}
	ErrVictimNotActive   = &GameError{KindTarget, "the proposed murder victim must be participating in the game"}
	ErrVictimIsMafia     = &GameError{KindTarget, "Mafia players cannot be targeted for murder"}
	ErrDuplicateKillVote = &GameError{KindDuplicate, "only one vote to kill each round can be submitted"}

	ErrExecuteOnFinished = &GameError{KindState, "phases cannot be executed on games that have finished"}
)
