// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/tuisort/internal/theme"
)

const (
	logRows    = 4
	maxLogRows = 100
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(theme.Subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"}).
			Height(1)

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

// footer shows the session event log, the last status message and key help.
type footer struct {
	width     int
	log       table.Model
	rows      []table.Row
	status    string
	statusErr bool
	help      help.Model
	keys      KeyMap
}

func newFooter(keys KeyMap) *footer {
	columns := []table.Column{
		{Title: "Event", Width: 6},
		{Title: "Group", Width: 10},
		{Title: "Item", Width: 12},
		{Title: "From", Width: 18},
		{Title: "To", Width: 18},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(logRows),
		table.WithFocused(false),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return &footer{
		log:  t,
		help: help.New(),
		keys: keys,
	}
}

func (f *footer) setWidth(w int) {
	f.width = w
	f.help.Width = w
	f.log.SetWidth(w)
}

// addEvent appends a row to the event log, newest last.
func (f *footer) addEvent(kind, group, item, from, to string) {
	f.rows = append(f.rows, table.Row{kind, group, item, from, to})
	if len(f.rows) > maxLogRows {
		f.rows = f.rows[len(f.rows)-maxLogRows:]
	}
	f.log.SetRows(f.rows)
	f.log.GotoBottom()
}

func (f *footer) setStatus(msg string, isErr bool) {
	f.status = msg
	f.statusErr = isErr
}

func (f *footer) toggleHelp() {
	f.help.ShowAll = !f.help.ShowAll
}

func (f *footer) View() string {
	status := theme.Status.Render(f.status)
	if f.statusErr {
		status = theme.StatusError.Render(f.status)
	}

	mouseInfo := "Mouse: disabled"
	if zone.Enabled() {
		mouseInfo = "Mouse: enabled"
	}
	debugInfo := debugStyle.Render(fmt.Sprintf("%d events | %s", len(f.rows), mouseInfo))

	return lipgloss.JoinVertical(lipgloss.Left,
		f.log.View(),
		footerStyle.Width(f.width).Render(status),
		debugInfo,
		f.help.View(f.keys),
	)
}
