// Package slider rotates the promo slides shown above the prompt.
//
// A Slider advances on its own every interval while running. Jumping to a
// slide restarts the countdown; Pause stops it until Resume.
package slider

import (
	"context"
	"sync"
	"time"
)

type Slider struct {
	mu       sync.Mutex
	slides   []string
	index    int
	interval time.Duration
	paused   bool
	reset    chan struct{}
	onChange func(index int, slide string)
}

// New returns a slider over slides starting at the first one. onChange, if
// not nil, is called after every automatic advance.
func New(slides []string, interval time.Duration, onChange func(index int, slide string)) *Slider {
	return &Slider{
		slides:   slides,
		interval: interval,
		reset:    make(chan struct{}, 1),
		onChange: onChange,
	}
}

// Current returns the active slide index and text. With no slides it
// returns (0, "").
func (s *Slider) Current() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return 0, ""
	}
	return s.index, s.slides[s.index]
}

func (s *Slider) Len() int {
	return len(s.slides)
}

// Next moves to the following slide, wrapping after the last one.
func (s *Slider) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.slides)
}

// GoTo shows the n-th slide (1-based) and restarts the auto-advance timer.
// It reports false when n is out of range.
func (s *Slider) GoTo(n int) bool {
	s.mu.Lock()
	if n < 1 || n > len(s.slides) {
		s.mu.Unlock()
		return false
	}
	s.index = n - 1
	s.mu.Unlock()

	s.kick()
	return true
}

func (s *Slider) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
	s.kick()
}

func (s *Slider) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
	s.kick()
}

func (s *Slider) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *Slider) kick() {
	select {
	case s.reset <- struct{}{}:
	default:
	}
}

// Run drives the auto-advance until ctx is done. It returns nil on
// cancellation so it can sit in an errgroup.
func (s *Slider) Run(ctx context.Context) error {
	if len(s.slides) == 0 || s.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-s.reset:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			if !s.Paused() {
				timer.Reset(s.interval)
			}

		case <-timer.C:
			if s.Paused() {
				continue
			}
			s.Next()
			if s.onChange != nil {
				s.onChange(s.Current())
			}
			timer.Reset(s.interval)
		}
	}
}
