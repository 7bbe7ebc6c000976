package bubbletea

import "github.com/charmbracelet/glamour"

const docsURL = "https://github.com/Abrsh21-bel/Abrsh21-bel/wiki"

const aboutMarkdown = `# About NeoChat

Modern Classroom Chat Application

Version 2.0

Features:

- Real-time messaging
- Light/Dark themes
- Message history
- Cross-platform

© 2023 Abrsh21-bel

Documentation: ` + docsURL + `
`

// renderAbout renders the about screen markdown for the given terminal
// width. On renderer failure the raw markdown is shown instead.
func renderAbout(width int) string {
	wrap := width
	if wrap > 78 {
		wrap = 78
	}
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return aboutMarkdown
	}
	out, err := r.Render(aboutMarkdown)
	if err != nil {
		return aboutMarkdown
	}
	return out
}
