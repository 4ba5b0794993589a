package lessons

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// ContextChunks is how many retrieved course chunks to ground
	// the prompt with.
	ContextChunks int
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     2048,
		Temperature:   0.5,
		ContextChunks: 3,
	}
}
