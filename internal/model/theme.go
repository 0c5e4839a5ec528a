package model

// Theme is the persisted appearance preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme name.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme returns the theme named by s, or fallback when s is not
// a known theme name.
func ParseTheme(s string, fallback Theme) Theme {
	t := Theme(s)
	if !t.Valid() {
		return fallback
	}
	return t
}
