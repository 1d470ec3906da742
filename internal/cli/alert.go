package cli

import (
	"fmt"
	"sync"
	"time"
)

type alertKind string

const (
	alertSuccess alertKind = "success"
	alertDanger  alertKind = "danger"
	alertInfo    alertKind = "info"
)

// alertBox holds the single banner on screen. A new alert replaces the old
// one; an alert older than timeout is no longer rendered.
type alertBox struct {
	mu      sync.Mutex
	kind    alertKind
	message string
	shownAt time.Time
	timeout time.Duration
	now     func() time.Time
}

func newAlertBox(timeout time.Duration) *alertBox {
	return &alertBox{timeout: timeout, now: time.Now}
}

func (b *alertBox) show(kind alertKind, message string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.kind, b.message, b.shownAt = kind, message, b.now()
	return formatAlert(kind, message)
}

// active returns the rendered banner, or "" when none is showing.
func (b *alertBox) active() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.message == "" {
		return ""
	}
	if b.timeout > 0 && b.now().Sub(b.shownAt) >= b.timeout {
		b.message = ""
		return ""
	}
	return formatAlert(b.kind, b.message)
}

func formatAlert(kind alertKind, message string) string {
	return fmt.Sprintf("[%s] %s", kind, message)
}

// showAlert displays message right away and keeps it for the next page
// render until it expires.
func (a *App) showAlert(kind alertKind, message string) {
	printlnFn(a.alerts.show(kind, message))
}
