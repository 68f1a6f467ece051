package prefs

import "errors"

// ErrInvalidTheme indicates an unsupported theme value.
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is a UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a raw theme string.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw), nil
	default:
		return "", ErrInvalidTheme
	}
}
