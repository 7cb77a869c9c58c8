package model

// Theme is the visitor's display mode. Only two values exist; anything else
// coming from a cookie or a request body is treated as absent.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme validates an untrusted string against the known themes.
func ParseTheme(s string) (Theme, bool) {
	t := Theme(s)
	return t, t.Valid()
}

func (t Theme) Valid() bool { return t == ThemeDark || t == ThemeLight }

func (t Theme) String() string { return string(t) }

// ColorScheme returns the value for the color-scheme meta tag.
func (t Theme) ColorScheme() string {
	if t.Valid() {
		return string(t)
	}
	return "light dark"
}
