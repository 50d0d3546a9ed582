package quest

import (
	"github.com/meghna/questly/internal/content"
)

// questReadyMsg is sent when the quest has been generated and stored.
type questReadyMsg struct {
	Quest *content.Quest
	Err   error
}
