package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one delivered command.
type HistoryEntry struct {
	ID       string
	Bookmark string
	Command  string
	Target   string // where the command was delivered, e.g. "tmux:%1"
	UsedAt   time.Time
}

// NewHistoryEntry creates a HistoryEntry with a generated id and the current time.
func NewHistoryEntry(bookmark, command string) HistoryEntry {
	return HistoryEntry{
		ID:       uuid.New().String(),
		Bookmark: bookmark,
		Command:  command,
		UsedAt:   time.Now(),
	}
}
