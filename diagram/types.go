// Package diagram contains the fundamental types shared by the mmd layout
// and rendering pipeline.
package diagram

// Point is a 2D coordinate in character cells. Origin is top-left, X grows
// rightward, Y grows downward.
type Point struct {
	X, Y int
}

// Direction represents a cardinal direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Shape selects the border glyph variant for a node box. It never affects
// layout, only which corner characters are painted.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeRounded
	ShapeDiamond
)

// Node is a box in a flowchart. Rank, Order and the box bounds are filled in
// by the layout passes; the node is immutable afterwards.
type Node struct {
	ID    string
	Label []string // display label, one entry per line
	Shape Shape
	Class string // optional classDef reference, color only

	Rank  int // layer along the flow axis, set by the layer assigner
	Order int // position within the rank, set by the layer assigner

	X, Y          int // top-left corner, set by the coordinate planner
	Width, Height int
}

// Center returns the center point of the node box.
func (n Node) Center() Point {
	return Point{X: n.X + n.Width/2, Y: n.Y + n.Height/2}
}

// Contains reports whether p lies inside the node box (borders included).
func (n Node) Contains(p Point) bool {
	return p.X >= n.X && p.X < n.X+n.Width &&
		p.Y >= n.Y && p.Y < n.Y+n.Height
}

// Interior reports whether p lies strictly inside the node box, excluding
// the border cells. Edge routes may touch borders but never the interior.
func (n Node) Interior(p Point) bool {
	return p.X > n.X && p.X < n.X+n.Width-1 &&
		p.Y > n.Y && p.Y < n.Y+n.Height-1
}

// Edge is a directed connection between two nodes. Index is the declaration
// position in the source and is the universal tiebreaker wherever ordering
// matters. Route, ArrowAt and ArrowDir are filled in by the router.
type Edge struct {
	From   string
	To     string
	Label  string
	Dashed bool
	Index  int

	Back bool // closes a cycle; excluded from rank computation

	Route    []Point // orthogonal path from source border to target border
	ArrowAt  Point
	ArrowDir Direction

	LabelAt     Point // top-left cell of the label, one cell clear of the route
	LabelPlaced bool
}

// Bounds is a rectangular area, Min inclusive, Max exclusive.
type Bounds struct {
	Min, Max Point
}

// Width returns the width of the bounds.
func (b Bounds) Width() int { return b.Max.X - b.Min.X }

// Height returns the height of the bounds.
func (b Bounds) Height() int { return b.Max.Y - b.Min.Y }

// Include grows the bounds to contain p.
func (b Bounds) Include(p Point) Bounds {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X+1 > b.Max.X {
		b.Max.X = p.X + 1
	}
	if p.Y+1 > b.Max.Y {
		b.Max.Y = p.Y + 1
	}
	return b
}

// GraphDirection is the primary flow axis of a flowchart.
type GraphDirection string

const (
	DirectionTD GraphDirection = "TD" // ranks map to rows
	DirectionLR GraphDirection = "LR" // ranks map to columns
)

// ClassStyle holds the styles attached to a classDef declaration. Only the
// color key is honoured by the renderer.
type ClassStyle struct {
	Name   string
	Styles map[string]string
}

// Flowchart is the normalized in-memory flowchart model handed to the
// layout passes.
type Flowchart struct {
	Nodes     []Node
	Edges     []Edge
	Direction GraphDirection
	Classes   map[string]ClassStyle

	index map[string]int // node ID to position in Nodes
}

// NewFlowchart builds a validated flowchart from node and edge lists.
// Repeated node declarations merge by ID with the last label winning; an
// edge referencing an unknown node fails with a DanglingReference error.
func NewFlowchart(nodes []Node, edges []Edge, dir GraphDirection) (*Flowchart, error) {
	if dir != DirectionTD && dir != DirectionLR {
		return nil, UnsupportedDirection(string(dir))
	}

	f := &Flowchart{
		Direction: dir,
		Classes:   make(map[string]ClassStyle),
		index:     make(map[string]int),
	}
	for _, n := range nodes {
		f.upsertNode(n)
	}
	for i, e := range edges {
		if _, ok := f.index[e.From]; !ok {
			return nil, DanglingReference(e.From)
		}
		if _, ok := f.index[e.To]; !ok {
			return nil, DanglingReference(e.To)
		}
		e.Index = i
		f.Edges = append(f.Edges, e)
	}
	return f, nil
}

func (f *Flowchart) upsertNode(n Node) int {
	if i, ok := f.index[n.ID]; ok {
		// Merged declaration: last label wins, shape and class likewise
		// when set.
		if len(n.Label) > 0 {
			f.Nodes[i].Label = n.Label
		}
		if n.Shape != ShapeRectangle {
			f.Nodes[i].Shape = n.Shape
		}
		if n.Class != "" {
			f.Nodes[i].Class = n.Class
		}
		return i
	}
	i := len(f.Nodes)
	if len(n.Label) == 0 {
		n.Label = []string{n.ID}
	}
	f.Nodes = append(f.Nodes, n)
	f.index[n.ID] = i
	return i
}

// NodeByID returns a pointer to the node with the given ID, or nil.
func (f *Flowchart) NodeByID(id string) *Node {
	if i, ok := f.index[id]; ok {
		return &f.Nodes[i]
	}
	return nil
}

// NodeIndex returns the position of a node ID in Nodes, or -1.
func (f *Flowchart) NodeIndex(id string) int {
	if i, ok := f.index[id]; ok {
		return i
	}
	return -1
}
