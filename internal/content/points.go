package content

// RequiredPoints is the score needed to complete a quest at the given
// chapter level.
func RequiredPoints(level int) int {
	return level*5 + 25
}

// MaxPoints is the score target the generated quest should make obtainable
// at the given chapter level.
func MaxPoints(level int) int {
	return level*10 + 25
}
