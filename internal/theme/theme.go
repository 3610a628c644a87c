// Package theme holds the Lip Gloss palette and shared styles of the board.
// It has no internal imports so every view can use it.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	Dimmed    = lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}
	Danger    = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#F25F5C"}
	Text      = lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}
)

var (
	// Border around the whole board.
	Frame = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Highlight)

	ListTitle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Subtle).
			Bold(true)

	ListTitleActive = ListTitle.
			Foreground(Highlight)

	Item = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	ItemDragged = Item.
			Foreground(Dimmed).
			Strikethrough(true)

	ItemPending = Item.
			Foreground(Special)

	Placeholder = lipgloss.NewStyle().
			Foreground(Highlight)

	Handle = lipgloss.NewStyle().
		Foreground(Dimmed)

	HandleActive = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	Status = lipgloss.NewStyle().
		Foreground(Dimmed)

	StatusError = lipgloss.NewStyle().
			Foreground(Danger)
)
