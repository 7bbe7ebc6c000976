package bubbletea

// Status exports the status line text for testing.
func Status(m Model) string {
	return m.status
}

// Dark exports the active theme flag for testing.
func Dark(m Model) bool {
	return m.dark
}

// InNameMode reports whether the name prompt screen is showing.
func InNameMode(m Model) bool {
	return m.mode == modeName
}

// AboutShown reports whether the about overlay is showing.
func AboutShown(m Model) bool {
	return m.showAbout
}

// Quitting exports the shutdown flag for testing.
func Quitting(m Model) bool {
	return m.quitting
}

// RenderTranscript exports renderTranscript for testing.
func RenderTranscript(m Model) string {
	return m.renderTranscript()
}

// RenderAbout exports renderAbout for testing.
func RenderAbout(width int) string {
	return renderAbout(width)
}
