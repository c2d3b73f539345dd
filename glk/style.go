package glk

// Style is a text style hint. The presentation layer renders plain text,
// so every style operation below is accepted and ignored; the setters
// exist so interpreters can call them unconditionally.
type Style uint32

const (
	STYLE_NORMAL       = Style(0)
	STYLE_EMPHASIZED   = Style(1)
	STYLE_PREFORMATTED = Style(2)
	STYLE_HEADER       = Style(3)
	STYLE_SUBHEADER    = Style(4)
	STYLE_INPUT        = Style(8)
)

// SetStyle sets the style for the current stream.
func (sess *Session) SetStyle(style Style) {
}

// SetStyleStream sets the style for a specific stream.
func (sess *Session) SetStyleStream(str *Stream, style Style) {
}

// StyleHintSet records a style hint for future windows of a kind.
func (sess *Session) StyleHintSet(kind WindowKind, style Style, hint uint32, value int32) {
}

// StyleHintClear clears a recorded style hint.
func (sess *Session) StyleHintClear(kind WindowKind, style Style, hint uint32) {
}

// StyleDistinguish reports whether two styles render distinguishably.
// They never do here.
func (sess *Session) StyleDistinguish(win *Window, one Style, two Style) (distinct uint32) {
	return
}

// StyleMeasure reports a style attribute's value; no attribute is
// measurable.
func (sess *Session) StyleMeasure(win *Window, style Style, hint uint32) (value uint32, ok bool) {
	return
}
