package game

import (
	"fmt"
	"time"
)

// Level colours a log entry for the players.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

// Entry is one line of game narration.
type Entry struct {
	Seq     int
	Message string
	Level   Level
	At      time.Time
}

// Log is an append-only narration of the game that keeps at most capacity entries.
type Log struct {
	entries  []Entry
	capacity int
	seq      int
	now      func() time.Time
}

func NewLog(capacity int) *Log {
	return &Log{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
		seq:      0,
		now:      time.Now,
	}
}

func (l *Log) Add(level Level, format string, args ...any) {
	l.seq++
	l.entries = append(l.entries, Entry{
		Seq:     l.seq,
		Message: fmt.Sprintf(format, args...),
		Level:   level,
		At:      l.now(),
	})
	if over := len(l.entries) - l.capacity; l.capacity > 0 && over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
}

// Recent returns up to n entries, newest first.
func (l *Log) Recent(n int) []Entry {
	n = max(min(n, len(l.entries)), 0)
	recent := make([]Entry, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		recent = append(recent, l.entries[i])
	}
	return recent
}

func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns the newest entry.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}
