package postgres

import (
	"time"
)

// Now supplies the instant used for every created_at/updated_at stamp.
// Tests swap it for a fake clock.
var Now = func() time.Time {
	return time.Now().UTC()
}

// nowString renders the current instant as sortable ISO-8601 text.
// Fixed microsecond width keeps the strings comparable with plain <.
func nowString() string {
	return Now().Format("2006-01-02T15:04:05.000000")
}

/*
 * 'Timestamps' carries the created_at/updated_at bookkeeping shared by
 * every table. Embedded by composition in each model.
 */
type Timestamps struct {
	CreatedAt string `gorm:"size:32;not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt string `gorm:"size:32;not null;autoUpdateTime:false" json:"updated_at"`
}

// Touch resets updated_at to the current instant. Callers must invoke it
// after mutating any other field; created_at is never rewritten.
func (ts *Timestamps) Touch() {
	ts.UpdatedAt = nowString()
}

// stamp fills both fields on first insert, leaving values a caller
// already set alone.
func (ts *Timestamps) stamp() {
	now := nowString()
	if ts.CreatedAt == "" {
		ts.CreatedAt = now
	}
	if ts.UpdatedAt == "" {
		ts.UpdatedAt = now
	}
}
