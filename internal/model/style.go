package model

import "strings"

type Style string

const (
	StyleWin10 Style = "win10"
	StyleWin11 Style = "win11"
	StyleWin7  Style = "win7"
	StyleWinXP Style = "winxp"

	DefaultStyle = StyleWin10
)

// Styles returns every supported style in display order.
func Styles() []Style {
	return []Style{StyleWin10, StyleWin11, StyleWin7, StyleWinXP}
}

// ParseStyle maps a raw style token to a supported style, falling back to
// DefaultStyle for empty or unknown values.
func ParseStyle(raw string) Style {
	s := Style(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Styles() {
		if s == known {
			return s
		}
	}
	return DefaultStyle
}

// Classic reports whether the style uses the pre-Windows 8 text layout.
func (s Style) Classic() bool {
	return s == StyleWin7 || s == StyleWinXP
}
