package canvas

// GlyphSet is the character palette used for borders, lines and arrowheads.
// Two sets exist: Unicode box drawing and a plain ASCII fallback.
type GlyphSet struct {
	Horizontal rune
	Vertical   rune

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune

	TeeDown  rune
	TeeUp    rune
	TeeRight rune
	TeeLeft  rune
	Cross    rune

	ArrowUp    rune
	ArrowDown  rune
	ArrowLeft  rune
	ArrowRight rune

	DashedHorizontal rune
	DashedVertical   rune

	Activation rune // sequence diagram activation bar

	// Alternate corner variants selected by node shape. Layout never looks
	// at these; they only change which corner runes get painted.
	RoundTopLeft     rune
	RoundTopRight    rune
	RoundBottomLeft  rune
	RoundBottomRight rune

	DiamondTopLeft     rune
	DiamondTopRight    rune
	DiamondBottomLeft  rune
	DiamondBottomRight rune
}

// Unicode is the default glyph set.
var Unicode = GlyphSet{
	Horizontal:  '─',
	Vertical:    '│',
	TopLeft:     '┌',
	TopRight:    '┐',
	BottomLeft:  '└',
	BottomRight: '┘',

	TeeDown:  '┬',
	TeeUp:    '┴',
	TeeRight: '├',
	TeeLeft:  '┤',
	Cross:    '┼',

	ArrowUp:    '▲',
	ArrowDown:  '▼',
	ArrowLeft:  '◄',
	ArrowRight: '►',

	DashedHorizontal: '┈',
	DashedVertical:   '╎',

	Activation: '┃',

	RoundTopLeft:     '╭',
	RoundTopRight:    '╮',
	RoundBottomLeft:  '╰',
	RoundBottomRight: '╯',

	DiamondTopLeft:     '╱',
	DiamondTopRight:    '╲',
	DiamondBottomLeft:  '╲',
	DiamondBottomRight: '╱',
}

// ASCII restricts output to + - | < > ^ v and friends.
var ASCII = GlyphSet{
	Horizontal:  '-',
	Vertical:    '|',
	TopLeft:     '+',
	TopRight:    '+',
	BottomLeft:  '+',
	BottomRight: '+',

	TeeDown:  '+',
	TeeUp:    '+',
	TeeRight: '+',
	TeeLeft:  '+',
	Cross:    '+',

	ArrowUp:    '^',
	ArrowDown:  'v',
	ArrowLeft:  '<',
	ArrowRight: '>',

	DashedHorizontal: '.',
	DashedVertical:   ':',

	Activation: '|',

	RoundTopLeft:     '+',
	RoundTopRight:    '+',
	RoundBottomLeft:  '+',
	RoundBottomRight: '+',

	DiamondTopLeft:     '/',
	DiamondTopRight:    '\\',
	DiamondBottomLeft:  '\\',
	DiamondBottomRight: '/',
}

// Select returns the ASCII set when asciiOnly is set, the Unicode set
// otherwise.
func Select(asciiOnly bool) GlyphSet {
	if asciiOnly {
		return ASCII
	}
	return Unicode
}
