package models

import (
	"time"
)

type LogEntry struct {
	ID        string
	Timestamp time.Time
	Level     string
	Message   string
	Service   string
	Metadata  map[string]any
}
