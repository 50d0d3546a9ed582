package content

// DefaultUserDetails describes the learner when the caller supplies nothing.
const DefaultUserDetails = "The student has ADHD and has a hard time focusing. They are 14 years old and are interested in video games."

// Config holds content generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for content generation. Quests and
// persona sets are long structured outputs, so the token budget is generous.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
