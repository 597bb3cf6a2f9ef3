// Package ui provides terminal rendering using tcell.
package ui

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps tcell.Screen as the root display surface and input source.
//
// Terminal events are read by a pump goroutine into a dedicated channel, so
// waiting for input is a channel receive the game loop can select on.
type Screen struct {
	screen     tcell.Screen
	events     chan tcell.Event
	done       chan struct{}
	closeOnce  sync.Once
	closed     atomic.Bool
	fullscreen bool
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen(title string) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	screen, err := NewScreenFrom(s)
	if err != nil {
		return nil, err
	}
	if title != "" {
		s.SetTitle(title)
	}
	return screen, nil
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(DefaultBackground).Foreground(DefaultForeground))
	s.HideCursor()
	s.Clear()

	screen := &Screen{
		screen: s,
		events: make(chan tcell.Event),
		done:   make(chan struct{}),
	}
	go screen.pump()
	return screen, nil
}

// pump forwards terminal events until the screen is finalized.
func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)
		s.screen.Fini()
	})
}

// Closed reports whether the display has gone away, either through Close
// or because the terminal stopped delivering events.
func (s *Screen) Closed() bool {
	return s.closed.Load()
}

// NextKey blocks until the next key event arrives.
// Resize events repaint the terminal and keep waiting.
// ok is false when the screen closed or ctx was cancelled first.
func (s *Screen) NextKey(ctx context.Context) (ev *tcell.EventKey, ok bool) {
	for {
		select {
		case <-ctx.Done():
			return nil, false
		case raw, open := <-s.events:
			if !open {
				s.closed.Store(true)
				return nil, false
			}
			switch raw := raw.(type) {
			case *tcell.EventKey:
				return raw, true
			case *tcell.EventResize:
				s.screen.Sync()
			}
		}
	}
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// SetCell writes a single cell to the screen buffer.
func (s *Screen) SetCell(x, y int, c Cell) {
	style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
	s.screen.SetContent(x, y, c.Rune, nil, style)
}

// Cell reads a single cell back from the screen buffer.
func (s *Screen) Cell(x, y int) Cell {
	w, h := s.screen.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return blankCell
	}
	r, _, style, _ := s.screen.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return Cell{Rune: r, Fg: fg, Bg: bg}
}

// Fullscreen reports whether the console is letterboxed in the terminal.
func (s *Screen) Fullscreen() bool {
	return s.fullscreen
}

// SetFullscreen switches letterboxing on or off and forces a full repaint.
func (s *Screen) SetFullscreen(on bool) {
	s.fullscreen = on
	s.screen.Sync()
}
