package dialogue

// MaxHistoryTurns bounds how much conversation is replayed to the model.
const MaxHistoryTurns = 12

// Config holds dialogue generation settings.
type Config struct {
	DecomposeMaxTokens int
	TurnMaxTokens      int
	Temperature        float64
}

// DefaultConfig returns sensible defaults for dialogue generation.
func DefaultConfig() Config {
	return Config{
		DecomposeMaxTokens: 768,
		TurnMaxTokens:      512,
		Temperature:        0.6,
	}
}
