package domain

import "time"

// Invocation is one recorded run of a command.
type Invocation struct {
	ID        int64
	RequestID string
	Path      []string
	Input     string
	Outcome   string // "ok" or a usage error kind
	ExitCode  int
	Duration  time.Duration
	CreatedAt time.Time
}

// HistoryFilter narrows a history listing.
type HistoryFilter struct {
	Outcome string
	Limit   int
}
