package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// viewOutput opens a full-screen pager over the rendered text. Arrows and
// hjkl scroll, PgUp/PgDn page, q or Escape quits. Useful for diagrams wider
// than the terminal, where raw output would wrap and shear the drawing.
func viewOutput(out string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	lines := strings.Split(out, "\n")
	maxWidth := 0
	for _, l := range lines {
		maxWidth = max(maxWidth, runewidth.StringWidth(l))
	}

	offX, offY := 0, 0
	for {
		drawPager(screen, lines, offX, offY)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			w, h := screen.Size()
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyUp, ev.Rune() == 'k':
				offY--
			case ev.Key() == tcell.KeyDown, ev.Rune() == 'j':
				offY++
			case ev.Key() == tcell.KeyLeft, ev.Rune() == 'h':
				offX--
			case ev.Key() == tcell.KeyRight, ev.Rune() == 'l':
				offX++
			case ev.Key() == tcell.KeyPgUp:
				offY -= h
			case ev.Key() == tcell.KeyPgDn:
				offY += h
			case ev.Key() == tcell.KeyHome:
				offX, offY = 0, 0
			}
			offY = clampOffset(offY, len(lines)-h)
			offX = clampOffset(offX, maxWidth-w)
		}
	}
}

func drawPager(s tcell.Screen, lines []string, offX, offY int) {
	s.Clear()
	w, h := s.Size()
	for y := 0; y < h && offY+y < len(lines); y++ {
		x := -offX
		for _, r := range lines[offY+y] {
			if x >= 0 && x < w {
				s.SetContent(x, y, r, nil, tcell.StyleDefault)
			}
			x += runewidth.RuneWidth(r)
		}
	}
	s.Show()
}

func clampOffset(v, limit int) int {
	if limit < 0 {
		limit = 0
	}
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
