package diagram

// Config carries every knob the renderer recognizes. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	ASCIIOnly       bool           // plain +-|<>^v glyphs instead of box drawing
	ShowCoordinates bool           // ruler border plus a bounds/route listing
	Color           bool           // ANSI color for classDef-styled node labels
	BoxPadding      int            // blank cells inside a box border, each side
	PaddingX        int            // horizontal padding between boxes, at least 1
	PaddingY        int            // vertical padding between boxes, at least 1
	GraphDirection  GraphDirection // LR or TD

	// Sequence diagram spacing.
	ParticipantSpacing int // cells between participant boxes
	MessageSpacing     int // blank lifeline rows before each message
	SelfMessageWidth   int // width of the self-message loop
}

// DefaultConfig returns the defaults applied when options are omitted:
// Unicode glyphs, coordinates off, small positive paddings.
func DefaultConfig() Config {
	return Config{
		BoxPadding:         1,
		PaddingX:           5,
		PaddingY:           5,
		GraphDirection:     DirectionLR,
		ParticipantSpacing: 5,
		MessageSpacing:     1,
		SelfMessageWidth:   4,
	}
}

// Validate checks the configuration, returning an *Error on the first
// offending field. The inter-box paddings must stay positive: connector
// routing needs at least one clear row and column between boxes.
func (c Config) Validate() error {
	if c.BoxPadding < 0 {
		return &Error{Kind: KindLayoutOverflow, Message: "box padding must be non-negative"}
	}
	if c.PaddingX < 1 {
		return &Error{Kind: KindLayoutOverflow, Message: "padding-x must be at least 1"}
	}
	if c.PaddingY < 1 {
		return &Error{Kind: KindLayoutOverflow, Message: "padding-y must be at least 1"}
	}
	if c.GraphDirection != DirectionLR && c.GraphDirection != DirectionTD {
		return UnsupportedDirection(string(c.GraphDirection))
	}
	if c.ParticipantSpacing < 0 {
		return &Error{Kind: KindLayoutOverflow, Message: "participant spacing must be non-negative"}
	}
	if c.MessageSpacing < 0 {
		return &Error{Kind: KindLayoutOverflow, Message: "message spacing must be non-negative"}
	}
	if c.SelfMessageWidth < 2 {
		return &Error{Kind: KindLayoutOverflow, Message: "self message width must be at least 2"}
	}
	return nil
}
