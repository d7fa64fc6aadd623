package canvas

// Junction merging for Unicode box-drawing characters. When two line glyphs
// land on the same cell the result keeps every arm of both, so a vertical
// crossing a horizontal becomes ┼, a corner meeting a line becomes a tee,
// and so on. ASCII output never merges; the later glyph simply wins.

type arms struct {
	up, down, left, right bool
}

var glyphArms = map[rune]arms{
	'─': {left: true, right: true},
	'│': {up: true, down: true},
	'┌': {down: true, right: true},
	'┐': {down: true, left: true},
	'└': {up: true, right: true},
	'┘': {up: true, left: true},
	'├': {up: true, down: true, right: true},
	'┤': {up: true, down: true, left: true},
	'┬': {down: true, left: true, right: true},
	'┴': {up: true, left: true, right: true},
	'┼': {up: true, down: true, left: true, right: true},
	'╴': {left: true},
	'╵': {up: true},
	'╶': {right: true},
	'╷': {down: true},
}

var armsGlyph = map[arms]rune{
	{left: true, right: true}:                         '─',
	{up: true, down: true}:                            '│',
	{down: true, right: true}:                         '┌',
	{down: true, left: true}:                          '┐',
	{up: true, right: true}:                           '└',
	{up: true, left: true}:                            '┘',
	{up: true, down: true, right: true}:               '├',
	{up: true, down: true, left: true}:                '┤',
	{down: true, left: true, right: true}:             '┬',
	{up: true, left: true, right: true}:               '┴',
	{up: true, down: true, left: true, right: true}:   '┼',
	{left: true}:                                      '─',
	{up: true}:                                        '│',
	{right: true}:                                     '─',
	{down: true}:                                      '│',
}

// mergeable reports whether r participates in junction merging.
func mergeable(r rune) bool {
	_, ok := glyphArms[r]
	return ok
}

// merge combines two box-drawing glyphs into the junction carrying the arms
// of both. A line glyph never displaces text or an arrowhead already in the
// cell; a non-line incoming rune always wins.
func merge(existing, incoming rune) rune {
	if existing == incoming {
		return incoming
	}
	a, ok1 := glyphArms[existing]
	b, ok2 := glyphArms[incoming]
	if !ok2 {
		return incoming
	}
	if !ok1 {
		return existing
	}
	combined := arms{
		up:    a.up || b.up,
		down:  a.down || b.down,
		left:  a.left || b.left,
		right: a.right || b.right,
	}
	if r, ok := armsGlyph[combined]; ok {
		return r
	}
	return incoming
}
