package paneltext

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrTextTooLong   = errors.New("text too long")
	ErrInvalidParams = errors.New("invalid line parameters")
)

// LineBreak is the token inserted between wrapped lines: a literal
// backslash followed by 'r'. The display protocol cannot carry a real
// newline byte, so the panel firmware translates this token instead.
const LineBreak = `\r`

// MaxTextLen is the maximum input size the wrappers accept, in bytes.
const MaxTextLen = 1000

// Marker strings returned by WrapDisplay when wrapping fails. The display
// pipeline renders them verbatim as on-screen diagnostics.
const (
	markerTextTooLong   = "ERROR: Text too long"
	markerInvalidParams = "ERROR: Invalid line length"
)
