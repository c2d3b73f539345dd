package glk

// Selector identifies a capability query.
type Selector uint32

const (
	GESTALT_VERSION     = Selector(0)
	GESTALT_CHAR_INPUT  = Selector(1)
	GESTALT_LINE_INPUT  = Selector(2)
	GESTALT_CHAR_OUTPUT = Selector(3)
	GESTALT_UNICODE     = Selector(15)
)

const (
	// GESTALT_UNSUPPORTED is the answer for any capability this adapter
	// does not provide, including every unrecognized selector.
	GESTALT_UNSUPPORTED = uint32(0)
	// GESTALT_SUPPORTED is the generic affirmative answer.
	GESTALT_SUPPORTED = uint32(1)
	// CHAR_OUTPUT_EXACT_PRINT reports that every printed character is
	// echoed exactly as given.
	CHAR_OUTPUT_EXACT_PRINT = uint32(2)

	// GLK_VERSION is the protocol version reported for GESTALT_VERSION.
	GLK_VERSION = uint32(0x00000705)
)

// Gestalt answers a capability query. It is deterministic, has no side
// effects, and is total: unknown selectors answer GESTALT_UNSUPPORTED
// rather than failing. The value argument is accepted for selectors that
// qualify a query (none of the supported ones do).
func (sess *Session) Gestalt(selector Selector, value uint32) (answer uint32) {
	switch selector {
	case GESTALT_VERSION:
		answer = GLK_VERSION
	case GESTALT_LINE_INPUT:
		answer = GESTALT_SUPPORTED
	case GESTALT_CHAR_OUTPUT:
		answer = CHAR_OUTPUT_EXACT_PRINT
	case GESTALT_UNICODE:
		answer = GESTALT_SUPPORTED
	default:
		answer = GESTALT_UNSUPPORTED
	}

	return
}
