package paneltext

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Profile bundles the per-display formatting configuration: the locale's
// decimal separator and the line geometry of the active font and charset.
// Callers thread it through the engine instead of reading process-wide
// state.
type Profile struct {
	// DecimalSeparator replaces '.' in numeric readouts. Only the first
	// rune is used; empty means '.'.
	DecimalSeparator string `yaml:"decimal_separator"`
	// LineLimit is the number of display cells per line.
	LineLimit int `yaml:"line_limit"`
	// BytesPerChar is how many raw bytes one display cell consumes for
	// the active charset.
	BytesPerChar int `yaml:"bytes_per_char"`
}

// DefaultProfile matches a panel with a single-byte charset, 20-cell
// lines, and '.' as the decimal separator.
var DefaultProfile = Profile{
	DecimalSeparator: ".",
	LineLimit:        20,
	BytesPerChar:     1,
}

// ParseProfile decodes a YAML display profile. Omitted fields keep their
// [DefaultProfile] values; a non-positive line geometry is rejected with
// an error wrapping [ErrInvalidParams].
func ParseProfile(data []byte) (Profile, error) {
	p := DefaultProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks that the profile's line geometry is usable.
func (p Profile) Validate() error {
	if p.LineLimit <= 0 || p.BytesPerChar <= 0 {
		return fmt.Errorf("%w: line limit %d, bytes per char %d", ErrInvalidParams, p.LineLimit, p.BytesPerChar)
	}
	return nil
}

// Wrap wraps text using the profile's line geometry. See [Wrap].
func (p Profile) Wrap(text string) (string, error) {
	return Wrap(text, p.LineLimit, p.BytesPerChar)
}

// WrapDisplay wraps text, rendering failures as display marker strings.
// See [WrapDisplay].
func (p Profile) WrapDisplay(text string) string {
	return WrapDisplay(text, p.LineLimit, p.BytesPerChar)
}

// RewriteDecimal rewrites text's decimal separator for the profile's
// locale. See [RewriteDecimalSeparator].
func (p Profile) RewriteDecimal(text string) string {
	return RewriteDecimalSeparator(text, p.separator())
}

func (p Profile) separator() rune {
	if p.DecimalSeparator == "" {
		return '.'
	}
	for _, r := range p.DecimalSeparator {
		return r
	}
	return '.'
}
