package paneltext

import (
	"errors"
	"fmt"
	"strings"
)

// Wrap splits text into display lines of at most lineLimit*bytesPerChar
// bytes each, joined by [LineBreak]. Breaks prefer the last space before
// the byte budget; a word longer than a whole line is split mid-word. No
// output line begins with a space. Text that already contains [LineBreak]
// is returned unchanged: the caller has pre-formatted it.
//
// Wrap returns [ErrTextTooLong] when text exceeds [MaxTextLen] bytes and
// [ErrInvalidParams] when lineLimit or bytesPerChar is not positive.
//
// Offsets are raw bytes, not codepoints. bytesPerChar scales the byte
// budget for the active charset but cutoffs are not checked against UTF-8
// boundaries, so a forced mid-word break can split a multi-byte character.
// Use [WrapCells] when codepoint-safe wrapping is required.
func Wrap(text string, lineLimit, bytesPerChar int) (string, error) {
	if len(text) > MaxTextLen {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrTextTooLong, len(text), MaxTextLen)
	}
	if lineLimit <= 0 || bytesPerChar <= 0 {
		return "", fmt.Errorf("%w: line limit %d, bytes per char %d", ErrInvalidParams, lineLimit, bytesPerChar)
	}
	if strings.Contains(text, LineBreak) {
		return text, nil
	}

	maxLine := lineLimit * bytesPerChar
	if len(text) <= maxLine {
		return text, nil
	}

	var sb strings.Builder
	sb.Grow(len(text) + 20) // headroom for inserted break tokens

	start := 0
	for start < len(text) {
		for start < len(text) && text[start] == ' ' {
			start++
		}
		if start >= len(text) {
			break
		}

		end := start + maxLine
		if end >= len(text) {
			end = len(text)
		} else {
			// Look backwards for a space to break on; if none is
			// found within the line, force a break at the budget.
			wordEnd := end
			for wordEnd > start && text[wordEnd] != ' ' {
				wordEnd--
			}
			if wordEnd > start {
				end = wordEnd
			}
		}

		sb.WriteString(text[start:end])

		if end < len(text) {
			sb.WriteString(LineBreak)
			// Consume spaces at the break so the next line does not
			// start with one.
			for end < len(text) && text[end] == ' ' {
				end++
			}
		}

		start = end
	}

	return sb.String(), nil
}

// WrapDisplay is the display-pipeline boundary around [Wrap]. Instead of
// an error it returns a marker string that the panel renders verbatim as
// an on-screen diagnostic.
func WrapDisplay(text string, lineLimit, bytesPerChar int) string {
	wrapped, err := Wrap(text, lineLimit, bytesPerChar)
	switch {
	case errors.Is(err, ErrTextTooLong):
		return markerTextTooLong
	case err != nil:
		return markerInvalidParams
	}
	return wrapped
}
