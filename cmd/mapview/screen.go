package main

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with the few calls the viewer needs.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Wake makes a blocked PollEvent return an interrupt event.
func (s *Screen) Wake() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

func (s *Screen) Sync() {
	s.screen.Sync()
}

// Render draws the visible part of the map and the status lines.
func (s *Screen) Render(v *View) {
	s.Clear()
	w, h := s.Size()
	mapH := h - statusLines
	v.Follow(w, mapH)

	for y := 0; y < mapH; y++ {
		row := v.OffRow + y
		if row >= v.Map.Height() {
			break
		}
		for x := 0; x < w; x++ {
			col := v.OffCol + x
			if col >= v.Map.Width() {
				break
			}
			r, style := v.Cell(row, col)
			if row == v.CurRow && col == v.CurCol {
				style = style.Reverse(true)
			}
			s.SetContent(x, y, r, style)
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range v.Status() {
		s.drawText(0, mapH+i, line, statusStyle)
	}
	s.Show()
}

func (s *Screen) drawText(x, y int, msg string, style tcell.Style) {
	for i, ch := range []rune(msg) {
		s.SetContent(x+i, y, ch, style)
	}
}
