package paneltext

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// CellWidth returns the number of display cells s occupies. Full-width
// characters count as two cells.
func CellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateCells clips s to at most cells display cells, appending "..."
// when anything was cut and the budget leaves room for it.
func TruncateCells(s string, cells int) string {
	if cells <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= cells {
		return s
	}
	if cells <= 3 {
		return runewidth.Truncate(s, cells, "")
	}
	return runewidth.Truncate(s, cells, "...")
}

// WrapCells is the codepoint-safe counterpart to [Wrap]. Lines are
// measured in display cells rather than raw bytes, breaks always land on
// rune boundaries, and full-width characters count as two cells. Output
// lines are joined by [LineBreak] and the guards match [Wrap]: oversized
// input returns [ErrTextTooLong], a non-positive cell budget returns
// [ErrInvalidParams], and text already containing [LineBreak] passes
// through unchanged.
func WrapCells(text string, cells int) (string, error) {
	if len(text) > MaxTextLen {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrTextTooLong, len(text), MaxTextLen)
	}
	if cells <= 0 {
		return "", fmt.Errorf("%w: %d cells per line", ErrInvalidParams, cells)
	}
	if strings.Contains(text, LineBreak) {
		return text, nil
	}
	if runewidth.StringWidth(text) <= cells {
		return text, nil
	}

	var lines []string
	cur := ""
	curW := 0

	for _, word := range strings.Split(text, " ") {
		if word == "" {
			continue
		}
		ww := runewidth.StringWidth(word)

		// A word wider than a whole line is broken rune by rune.
		if ww > cells {
			if curW > 0 {
				lines = append(lines, cur)
				cur, curW = "", 0
			}
			chunk := ""
			chunkW := 0
			for _, r := range word {
				rw := runewidth.RuneWidth(r)
				if chunkW > 0 && chunkW+rw > cells {
					lines = append(lines, chunk)
					chunk, chunkW = "", 0
				}
				chunk += string(r)
				chunkW += rw
			}
			// Leftover chunk stays current so following words can join it.
			cur, curW = chunk, chunkW
			continue
		}

		sep := 0
		if curW > 0 {
			sep = 1
		}
		if curW+sep+ww > cells {
			lines = append(lines, cur)
			cur, curW = word, ww
		} else {
			if curW > 0 {
				cur += " "
				curW++
			}
			cur += word
			curW += ww
		}
	}

	if curW > 0 {
		lines = append(lines, cur)
	}
	return strings.Join(lines, LineBreak), nil
}
