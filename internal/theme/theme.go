// Package theme holds the two user-chosen chart colors and their defaults.
package theme

import "errors"

var ErrInvalidColor = errors.New("invalid color value")

// Theme is the pair of colors the UI and the charts are styled with.
type Theme struct {
	Primary string
	Accent  string
}

// Default returns the colors used when nothing has been persisted yet.
func Default() Theme {
	return Theme{Primary: "#4361ee", Accent: "#3f3d56"}
}

// Validate checks both values are hex colors (#rgb or #rrggbb).
func (t Theme) Validate() error {
	if !ValidColor(t.Primary) || !ValidColor(t.Accent) {
		return ErrInvalidColor
	}
	return nil
}

// ValidColor reports whether s is a #rgb or #rrggbb hex color.
func ValidColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
