package content

import "fmt"

// GenerationError reports a failed or invalid generation. Stage names the
// artifact being generated (chapters, personas, quest, chat).
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
