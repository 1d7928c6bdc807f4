package polling

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	foliolog "folio/utils/log"

	tea "github.com/charmbracelet/bubbletea"
)

func l() *foliolog.FolioLogger {
	return foliolog.L().With("component", "polling")
}

// TickMsg represents a polling tick event
type TickMsg time.Time

// PollInterval is the default polling interval. Shelf rescans hit the
// filesystem, so it is deliberately lazy.
const PollInterval = 15 * time.Second

// Poller re-checks a data source on a timer and only surfaces a message
// when the data actually changed, so screens skip pointless refreshes.
type Poller[T any] struct {
	lastSnapshot string
	interval     time.Duration
	loadFunc     func() ([]T, error)
	msgBuilder   func([]T) tea.Msg
}

// New creates a Poller for type T. loadFunc fetches the latest data;
// msgBuilder wraps it in the screen's message type.
func New[T any](loadFunc func() ([]T, error), msgBuilder func([]T) tea.Msg) *Poller[T] {
	return &Poller[T]{
		interval:   PollInterval,
		loadFunc:   loadFunc,
		msgBuilder: msgBuilder,
	}
}

// NewWithInterval creates a Poller with a custom interval.
func NewWithInterval[T any](interval time.Duration, loadFunc func() ([]T, error), msgBuilder func([]T) tea.Msg) *Poller[T] {
	return &Poller[T]{
		interval:   interval,
		loadFunc:   loadFunc,
		msgBuilder: msgBuilder,
	}
}

// TickCmd returns a command that will trigger a tick after the interval.
func (p *Poller[T]) TickCmd() tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// CheckCmd loads the data and returns the screen's update message when it
// changed; otherwise it just schedules the next poll.
func (p *Poller[T]) CheckCmd() tea.Cmd {
	return func() tea.Msg {
		data, err := p.loadFunc()
		if err != nil {
			l().Warnf("poll load failed: %v", err)
			// Schedule next poll even on error
			return p.TickCmd()()
		}

		newHash := computeHash(data)

		if p.lastSnapshot == "" {
			l().Debugf("poll initial load, %d entries", len(data))
			p.lastSnapshot = newHash
			return p.msgBuilder(data)
		}

		if newHash != p.lastSnapshot {
			l().Debugf("poll change detected, %d entries", len(data))
			p.lastSnapshot = newHash
			return p.msgBuilder(data)
		}

		return p.TickCmd()()
	}
}

// UpdateHash records the hash of data obtained outside the poll loop, so
// the next poll does not re-announce it.
func (p *Poller[T]) UpdateHash(data []T) {
	p.lastSnapshot = computeHash(data)
}

func computeHash[T any](data []T) string {
	jsonData, err := json.Marshal(data)
	if err != nil {
		// Fallback to simple string conversion
		return fmt.Sprintf("%v", data)
	}
	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%x", hash)
}
