package neochat

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal palette determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Self    int // the viewer's own messages
	System  int // system notices
	Info    int // informational status (logged in)
	Success int // connected status
	Error   int // offline and error status
	Muted   int // help footer, placeholders
	Accent  int // prompts, titles
}

// LightTheme returns the ANSI mapping for light terminals.
func LightTheme() Theme {
	return Theme{
		Self:    4,
		System:  1,
		Info:    4,
		Success: 2,
		Error:   1,
		Muted:   8,
		Accent:  2,
	}
}

// DarkTheme returns the ANSI mapping for dark terminals, favoring the
// bright variants.
func DarkTheme() Theme {
	return Theme{
		Self:    12,
		System:  9,
		Info:    12,
		Success: 10,
		Error:   9,
		Muted:   8,
		Accent:  10,
	}
}
