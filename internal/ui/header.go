// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/tuisort/internal/theme"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(theme.Subtle).
			Foreground(theme.Text).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight).
			Background(theme.Subtle)

	headerButtonStyle = lipgloss.NewStyle().
				Background(theme.Highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)

	headerButtonActiveStyle = headerButtonStyle.
				Background(theme.Danger).
				Bold(true)
)

// Header buttons, by index.
const (
	buttonFailure = iota
	buttonHelp
)

type header struct {
	id      string
	width   int
	title   string
	buttons []headerButton
	input   textinput.Model
	adding  bool
}

type headerButton struct {
	label  string
	active bool
}

func newHeader(title string) *header {
	ti := textinput.New()
	ti.Placeholder = "New item..."
	ti.CharLimit = 32
	ti.Width = 24

	return &header{
		id:    zone.NewPrefix(),
		title: title,
		buttons: []headerButton{
			{label: "Network failure", active: false},
			{label: "Help", active: false},
		},
		input: ti,
	}
}

func (h *header) setWidth(w int) {
	h.width = w
}

func (h *header) setActive(button int, active bool) {
	h.buttons[button].active = active
}

// click returns the button released over, if any.
func (h *header) click(msg tea.MouseMsg) (int, bool) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return 0, false
	}
	for i := range h.buttons {
		if zone.Get(h.getButtonID(i)).InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

// startAdding shows the new item prompt, labelled with the target list.
func (h *header) startAdding(target string) tea.Cmd {
	h.adding = true
	h.input.Prompt = target + " > "
	h.input.SetValue("")
	return h.input.Focus()
}

func (h *header) stopAdding() {
	h.adding = false
	h.input.Blur()
}

// updateInput forwards a message to the prompt and returns the entered text
// once the user confirms it.
func (h *header) updateInput(msg tea.Msg) (string, bool, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			v := h.input.Value()
			h.stopAdding()
			return v, v != "", nil
		case "esc":
			h.stopAdding()
			return "", false, nil
		}
	}
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return "", false, cmd
}

func (h *header) View() string {
	var buttonViews []string
	for i, button := range h.buttons {
		style := headerButtonStyle
		if button.active {
			style = headerButtonActiveStyle
		}
		buttonViews = append(buttonViews, zone.Mark(h.getButtonID(i), style.Render(button.label)))
	}
	buttonsSection := lipgloss.JoinHorizontal(lipgloss.Center, buttonViews...)
	buttonsWidth := lipgloss.Width(buttonsSection)

	left := h.title
	if h.adding {
		left = h.input.View()
	}

	// Room for the title, accounting for header padding.
	maxTitleWidth := h.width - buttonsWidth - 2
	if maxTitleWidth < 0 {
		maxTitleWidth = 0
	}
	if !h.adding && lipgloss.Width(left) > maxTitleWidth {
		runes := []rune(left)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxTitleWidth {
			runes = runes[:len(runes)-1]
		}
		if maxTitleWidth > 0 {
			left = string(runes) + "…"
		} else {
			left = ""
		}
	}
	title := titleStyle.Render(left)
	titleWidth := lipgloss.Width(title)

	spacingWidth := h.width - titleWidth - buttonsWidth - 2
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := lipgloss.NewStyle().Background(theme.Subtle).Width(spacingWidth).Render("")
	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttonsSection)
	return headerStyle.Width(h.width).Render(content)
}

func (h *header) getButtonID(index int) string {
	return h.id + "button_" + string(rune('0'+index))
}
