package scorepad

// GameError is a custom error type for score pad errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound      GameError = "game not found"
	ErrGameAlreadyExists GameError = "a game is already in progress in this channel"
	ErrGameOver          GameError = "game is over"
	ErrGameFull          GameError = "game is at maximum capacity"
	ErrNoPlayers         GameError = "add at least one player before starting"
	ErrInvalidInput      GameError = "invalid input"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilSheetRepo      GameError = "score sheet repository cannot be nil"
	ErrNilResultRepo     GameError = "result repository cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
)
