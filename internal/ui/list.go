// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/tuisort/dragsort"
	"github.com/rileylov/tuisort/internal/config"
	"github.com/rileylov/tuisort/internal/theme"
)

const (
	handleGlyph = "⠿"
	// Placeholders render as padding on the hovered item.
	verticalGap   = 1
	horizontalGap = 2
)

// Card is one draggable entry. Cards are compared by pointer.
type Card struct {
	Name    string
	pending bool // async commit not yet confirmed
}

func cloneCard(c *Card) *Card {
	return &Card{Name: c.Name}
}

// list renders one sortable list and routes pointer events for it into its
// drop zone.
type list struct {
	id      string
	width   int
	title   string
	commit  string
	focused bool
	items   *dragsort.Slice[*Card]
	zone    *dragsort.Zone[*Card]
}

func newList(cfg config.ListConfig, session *dragsort.Session[*Card]) *list {
	cards := make([]*Card, len(cfg.Items))
	for i, name := range cfg.Items {
		cards[i] = &Card{Name: name}
	}
	items := dragsort.NewSlice(cards...)

	l := &list{
		id:     zone.NewPrefix(),
		title:  cfg.Title,
		commit: cfg.Commit,
		items:  items,
	}
	l.zone = &dragsort.Zone[*Card]{
		Session:         session,
		List:            items,
		Group:           dragsort.Group(cfg.Group),
		Layout:          dragsort.Layout{Horizontal: cfg.Horizontal, RTL: cfg.RTL},
		Args:            l,
		SourceOnly:      cfg.SourceOnly,
		Disabled:        cfg.Disabled,
		Handle:          cfg.Handle,
		ForeignPosition: foreignPosition(cfg.Foreign),
	}
	return l
}

// foreignPosition maps a configured strategy onto a position function.
func foreignPosition(name string) dragsort.ForeignPosition[*Card] {
	switch name {
	case config.ForeignAlphabetical:
		return func(dragged *Card, items dragsort.List[*Card]) int {
			// Position in a sorted copy that also holds the dragged card,
			// which sorts after cards of the same name.
			pos := 0
			for i := 0; i < items.Len(); i++ {
				if items.At(i).Name <= dragged.Name {
					pos++
				}
			}
			return pos
		}
	case config.ForeignAppend:
		return func(_ *Card, items dragsort.List[*Card]) int {
			return items.Len()
		}
	default:
		return nil
	}
}

func (l *list) listID() string        { return l.id + "list" }
func (l *list) itemID(i int) string   { return l.id + "item" + strconv.Itoa(i) }
func (l *list) handleID(i int) string { return l.id + "handle" + strconv.Itoa(i) }

func (l *list) horizontal() bool      { return l.zone.Layout.Horizontal }
func (l *list) sourceOnly() bool      { return l.zone.SourceOnly }
func (l *list) group() dragsort.Group { return l.zone.Group }
func (l *list) names() []string       { return cardNames(l.items) }
func (l *list) setWidth(w int)        { l.width = w }

func (l *list) owns(s dragsort.List[*Card]) bool {
	return s == dragsort.List[*Card](l.items)
}

// dragIDs returns the item zones a drag may start on. Lists with handles
// still report whole items; the zone rejects presses off the handle.
func (l *list) dragIDs() []string {
	ids := make([]string, l.items.Len())
	for i := range ids {
		ids[i] = l.itemID(i)
	}
	return ids
}

// indexOf maps a zone ID from dragIDs back to an item index.
func (l *list) indexOf(id string) (int, bool) {
	for i, cand := range l.dragIDs() {
		if cand == id {
			return i, true
		}
	}
	return 0, false
}

// slots returns the on-screen rectangle of every item that has been scanned.
func (l *list) slots() []dragsort.Rect {
	out := make([]dragsort.Rect, 0, l.items.Len())
	for i := 0; i < l.items.Len(); i++ {
		if r, ok := zoneRect(l.itemID(i)); ok {
			out = append(out, r)
		}
	}
	return out
}

// padding is the gap a placeholder adds to an item.
func (l *list) padding() dragsort.Padding {
	if l.horizontal() {
		return dragsort.Padding{Left: horizontalGap, Right: horizontalGap}
	}
	return dragsort.Padding{Top: verticalGap, Bottom: verticalGap}
}

// hover feeds a pointer position inside the list into the drop zone.
func (l *list) hover(x, y int) bool {
	pt := pointer(x, y)
	if r, ok := zoneRect(l.listID()); !ok || !contains(r, pt) {
		return false
	}
	slots := l.slots()
	l.zone.DragEnter(pt.Y, slots)

	for i := 0; i < l.items.Len(); i++ {
		r, ok := zoneRect(l.itemID(i))
		if !ok || !contains(r, pt) {
			continue
		}
		l.zone.DragOver(i, pt, r, l.padding())
		return true
	}
	l.zone.DragOverBackground(pt.Y, slots)
	return true
}

func contains(r dragsort.Rect, p dragsort.Point) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width && p.Y >= r.Top && p.Y < r.Top+r.Height
}

func (l *list) renderItem(i int) string {
	card := l.items.At(i)
	style := theme.Item
	switch {
	case l.zone.ItemDragged(i):
		style = theme.ItemDragged
	case card.pending:
		style = theme.ItemPending
	}

	label := card.Name
	if l.zone.Handle {
		hs := theme.Handle
		if l.zone.ItemDragged(i) {
			hs = theme.HandleActive
		}
		handle := hs.Render(handleGlyph)
		if lipgloss.Width(handle) == 0 {
			panic("dragsort: handle not found")
		}
		label = zone.Mark(l.handleID(i), handle) + " " + label
	}

	if l.horizontal() {
		return l.renderHorizontalItem(i, style.Render(label))
	}
	return l.renderVerticalItem(i, style.Render(label))
}

func (l *list) renderVerticalItem(i int, body string) string {
	// Two rows per item so the pointer can be in either half.
	body = lipgloss.NewStyle().Height(2).Render(body)
	gap := theme.Placeholder.Render(strings.Repeat("╌", max(l.width-2, 4)))
	switch l.zone.PlaceholderAt(i) {
	case dragsort.PlaceholderBefore:
		body = lipgloss.JoinVertical(lipgloss.Left, gap, body)
	case dragsort.PlaceholderAfter:
		body = lipgloss.JoinVertical(lipgloss.Left, body, gap)
	}
	return zone.Mark(l.itemID(i), body)
}

func (l *list) renderHorizontalItem(i int, body string) string {
	gap := theme.Placeholder.Render("▌ ")
	// Under RTL "before" is the right-hand side.
	before, after := l.zone.PlaceholderBefore(i), l.zone.PlaceholderAfter(i)
	left, right := before, after
	if l.zone.Layout.RTL {
		left, right = after, before
	}
	if left {
		body = gap + body
	}
	if right {
		body = body + gap
	}
	return zone.Mark(l.itemID(i), body)
}

// wrap lays horizontal items out in rows no wider than the list. RTL rows
// flow from the right edge.
func (l *list) wrap(cells []string) string {
	limit := l.width
	if limit <= 0 {
		limit = 80
	}
	rtl := l.zone.Layout.RTL

	var rows []string
	var row []string
	rowWidth := 0
	flush := func() {
		if rtl {
			slices.Reverse(row)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		row, rowWidth = nil, 0
	}
	for _, c := range cells {
		w := lipgloss.Width(c)
		if len(row) > 0 && rowWidth+w > limit {
			flush()
		}
		row = append(row, c)
		rowWidth += w
	}
	if len(row) > 0 {
		flush()
	}

	align := lipgloss.Left
	if rtl {
		align = lipgloss.Right
	}
	return lipgloss.NewStyle().Width(limit).Align(align).Render(lipgloss.JoinVertical(align, rows...))
}

func (l *list) View() string {
	titleStyle := theme.ListTitle
	if l.zone.IsDraggingOver() {
		titleStyle = theme.ListTitleActive
	}
	title := l.title
	if l.focused {
		title = "▸ " + title
	}
	if l.sourceOnly() {
		title += " (source)"
	}
	out := []string{titleStyle.Render(title)}

	cells := make([]string, l.items.Len())
	for i := range cells {
		cells[i] = l.renderItem(i)
	}
	if l.horizontal() && len(cells) > 0 {
		out = append(out, l.wrap(cells))
	} else {
		out = append(out, cells...)
	}

	if l.zone.IsExpanded() {
		out = append(out, theme.Placeholder.Render("  drop here"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, out...)
	style := lipgloss.NewStyle().MarginBottom(1)
	if l.width > 0 {
		style = style.Width(l.width)
	}
	return zone.Mark(l.listID(), style.Render(content))
}

func cardNames(items *dragsort.Slice[*Card]) []string {
	out := make([]string, 0, items.Len())
	for _, c := range items.Items() {
		out = append(out, c.Name)
	}
	return out
}
