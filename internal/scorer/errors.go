package scorer

// ScoreError is a sentinel error returned by the rule engine
type ScoreError string

// Error implements the error interface
func (e ScoreError) Error() string {
	return string(e)
}

const (
	ErrDuplicateName        ScoreError = "a player with that name already exists"
	ErrLastPlayer           ScoreError = "cannot remove the game's only player"
	ErrPlayerNotFound       ScoreError = "player not found"
	ErrInvalidIndex         ScoreError = "player index out of range"
	ErrScoringStarted       ScoreError = "players cannot be removed once scoring has started"
	ErrUnknownGame          ScoreError = "unknown game type"
	ErrInvalidGameOverScore ScoreError = "game over score must be positive"
	ErrNilSheet             ScoreError = "score sheet cannot be nil"
)
