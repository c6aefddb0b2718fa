// Package paneltext formats raw sensor and state text for fixed-geometry
// panel displays.
//
// The package is a pure transform library: every function takes its input
// and formatting parameters explicitly, returns a fresh value, and touches
// no shared state. It is safe for concurrent use. The central entry points
// are [Wrap], [RewriteDecimalSeparator], [DecodeUTF8], and [InList].
//
// # Wrapping
//
// [Wrap] splits text into lines bounded by a byte budget of
// lineLimit*bytesPerChar, breaking at spaces where possible. Lines are
// joined by [LineBreak], a literal backslash followed by 'r', because the
// display protocol cannot carry a real newline byte:
//
//	wrapped, err := paneltext.Wrap("Window in the kitchen is open", 12, 1)
//	// "Window in\rthe kitchen\ris open"
//
// Wrap measures raw bytes. [WrapCells] is the codepoint-safe alternative
// that measures display cells (full-width characters count as two) and
// never splits a multi-byte character. [WrapDisplay] is the boundary for
// the display pipeline: instead of an error it returns a marker string the
// panel renders as an on-screen diagnostic.
//
// # Decimal Separators
//
// [RewriteDecimalSeparator] adapts numeric readouts to the panel locale
// without touching unit suffixes or non-numeric text:
//
//	paneltext.RewriteDecimalSeparator("21.5 °C", ',') // "21,5 °C"
//	paneltext.RewriteDecimalSeparator("N/A", ',')     // "N/A"
//
// # UTF-8 Decoding
//
// [DecodeUTF8] decodes the first codepoint of a byte sequence, rejecting
// malformed lead or continuation bytes, overlong encodings, and UTF-16
// surrogates. Invalid input yields 0, which callers must treat as
// "invalid or absent" rather than U+0000.
//
// # Display Profiles
//
// [Profile] bundles the per-display configuration (decimal separator and
// line geometry) and can be decoded from YAML with [ParseProfile]:
//
//	p, err := paneltext.ParseProfile(data)
//	line := p.WrapDisplay(p.RewriteDecimal(sensorText))
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrTextTooLong] — input exceeds [MaxTextLen] bytes
//   - [ErrInvalidParams] — zero or negative line geometry
//
// The pure transforms (decoder, rewriter, membership helper) never fail;
// they degrade to a sentinel value or return their input unchanged.
package paneltext
