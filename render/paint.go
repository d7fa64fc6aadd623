package render

import (
	"strings"

	"github.com/fatih/color"

	"mmd/canvas"
	"mmd/diagram"
)

// colorSpan marks a run of cells to wrap in an ANSI color when serializing.
type colorSpan struct {
	y, x1, x2 int
	color     *color.Color
}

// paint serializes the canvas. Without coloring it defers to the canvas's
// own serializer; with it, label spans are wrapped in ANSI sequences while
// the grid geometry stays untouched.
func paint(c *canvas.Canvas, spans []colorSpan, colored bool) string {
	if !colored || len(spans) == 0 {
		return c.String()
	}

	byRow := make(map[int][]colorSpan)
	for _, s := range spans {
		byRow[s.y] = append(byRow[s.y], s)
	}

	width, height := c.Size()
	var sb strings.Builder
	for y := 0; y < height; y++ {
		end := width
		for end > 0 && c.Get(diagram.Point{X: end - 1, Y: y}) == ' ' {
			end--
		}
		x := 0
		for x < end {
			s := spanAt(byRow[y], x)
			if s == nil {
				if r := c.Get(diagram.Point{X: x, Y: y}); r != '\x00' {
					sb.WriteRune(r)
				}
				x++
				continue
			}
			stop := min(s.x2+1, end)
			var seg strings.Builder
			for ; x < stop; x++ {
				if r := c.Get(diagram.Point{X: x, Y: y}); r != '\x00' {
					seg.WriteRune(r)
				}
			}
			sb.WriteString(s.color.Sprint(seg.String()))
		}
		if y < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func spanAt(spans []colorSpan, x int) *colorSpan {
	for i := range spans {
		if x >= spans[i].x1 && x <= spans[i].x2 {
			return &spans[i]
		}
	}
	return nil
}

// nodeColor resolves the color attached to a node's class, or nil. Only the
// "color" style key is honored; unknown color names are ignored.
func nodeColor(f *diagram.Flowchart, n *diagram.Node) *color.Color {
	if n.Class == "" {
		return nil
	}
	cs, ok := f.Classes[n.Class]
	if !ok {
		return nil
	}
	return namedColor(cs.Styles["color"])
}

func namedColor(name string) *color.Color {
	switch strings.ToLower(name) {
	case "black":
		return color.New(color.FgBlack)
	case "red":
		return color.New(color.FgRed)
	case "green":
		return color.New(color.FgGreen)
	case "yellow":
		return color.New(color.FgYellow)
	case "blue":
		return color.New(color.FgBlue)
	case "magenta":
		return color.New(color.FgMagenta)
	case "cyan":
		return color.New(color.FgCyan)
	case "white":
		return color.New(color.FgWhite)
	default:
		return nil
	}
}
