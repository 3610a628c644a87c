// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/tuisort/dragsort"
	"github.com/rileylov/tuisort/internal/config"
	"github.com/rileylov/tuisort/internal/theme"
)

// flushMsg marks a frame boundary: deferred session work runs when it
// arrives, after the view for the preceding state change has been drawn.
type flushMsg struct{}

func flush() tea.Msg { return flushMsg{} }

// commitDoneMsg reports the outcome of an async commit.
type commitDoneMsg struct {
	rec dragsort.Record[*Card]
}

// Board is the root model: a header, one column of lists per group, and a
// footer with the event log.
type Board struct {
	width  int
	height int
	keys   KeyMap

	queue   *dragsort.Queue
	session *dragsort.Session[*Card]
	lists   []*list
	focus   int

	header    *header
	footer    *footer
	container *Container
	sorter    *DragHandler

	failure    bool
	asyncDelay time.Duration
	saving     *Card // async commit awaiting its result
	pending    []tea.Cmd
}

// New builds a board for cfg. cfg must be valid.
func New(cfg *config.Config) *Board {
	queue := dragsort.NewQueue()
	session := dragsort.NewSession[*Card](queue)

	lists := make([]*list, len(cfg.Lists))
	for i, lc := range cfg.Lists {
		lists[i] = newList(lc, session)
	}

	keys := DefaultKeyMap()
	b := &Board{
		keys:       keys,
		queue:      queue,
		session:    session,
		lists:      lists,
		header:     newHeader("Drag to sort"),
		footer:     newFooter(keys),
		container:  NewContainer(cfg.Groups(), lists),
		sorter:     NewDragHandler(),
		asyncDelay: cfg.AsyncDelay,
	}
	if len(lists) > 0 {
		lists[0].focused = true
	}
	session.Subscribe(b.logEvent)
	return b
}

func (b *Board) Init() tea.Cmd {
	return nil
}

func (b *Board) isInitialized() bool {
	return b.height != 0 && b.width != 0
}

func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.resize()
		return b, nil

	case tea.KeyMsg:
		return b, b.handleKey(msg)

	case tea.MouseMsg:
		return b, b.handleMouse(msg)

	case flushMsg:
		b.queue.Flush()
		cmds := b.pending
		b.pending = nil
		return b, tea.Batch(cmds...)

	case commitDoneMsg:
		b.finishCommit(msg.rec)
		return b, nil
	}

	if b.header.adding {
		_, _, cmd := b.header.updateInput(msg)
		return b, cmd
	}
	return b, nil
}

// resize hands the interior of the frame out to header, footer and lists.
func (b *Board) resize() {
	inner := b.width - 2
	b.header.setWidth(inner)
	b.footer.setWidth(inner)
	headerH := lipgloss.Height(b.header.View())
	footerH := lipgloss.Height(b.footer.View())
	middle := b.height - 2 - headerH - footerH
	if middle < 1 {
		middle = 1
	}
	b.container.SetSize(inner, middle)
}

func (b *Board) handleKey(msg tea.KeyMsg) tea.Cmd {
	if b.header.adding {
		name, ok, cmd := b.header.updateInput(msg)
		if ok {
			l := b.lists[b.focus]
			l.items.Append(&Card{Name: name})
			b.footer.setStatus(fmt.Sprintf("Added %s to %s", name, l.title), false)
		}
		return cmd
	}

	switch {
	case key.Matches(msg, b.keys.Quit):
		return tea.Quit
	case key.Matches(msg, b.keys.Cancel):
		if b.session.Active() {
			b.sorter.Cancel()
			b.session.Reset()
			b.footer.setStatus("Drag cancelled", false)
			return flush
		}
	case key.Matches(msg, b.keys.NextList):
		b.setFocus(b.focus + 1)
	case key.Matches(msg, b.keys.PrevList):
		b.setFocus(b.focus - 1)
	case key.Matches(msg, b.keys.Add):
		if len(b.lists) > 0 {
			return b.header.startAdding(b.lists[b.focus].title)
		}
	case key.Matches(msg, b.keys.Yank):
		b.yank()
	case key.Matches(msg, b.keys.Failure):
		b.toggleFailure()
	case key.Matches(msg, b.keys.Mouse):
		zone.SetEnabled(!zone.Enabled())
	case key.Matches(msg, b.keys.Help):
		b.toggleHelp()
	}
	return nil
}

func (b *Board) setFocus(i int) {
	if len(b.lists) == 0 {
		return
	}
	b.lists[b.focus].focused = false
	b.focus = (i + len(b.lists)) % len(b.lists)
	b.lists[b.focus].focused = true
}

func (b *Board) toggleFailure() {
	b.failure = !b.failure
	b.header.setActive(buttonFailure, b.failure)
	if b.failure {
		b.footer.setStatus("Network failure on: async commits will roll back", true)
	} else {
		b.footer.setStatus("Network failure off", false)
	}
}

func (b *Board) toggleHelp() {
	b.footer.toggleHelp()
	b.header.setActive(buttonHelp, b.footer.help.ShowAll)
	b.resize()
}

// yank copies the focused list, one item per line.
func (b *Board) yank() {
	if len(b.lists) == 0 {
		return
	}
	l := b.lists[b.focus]
	if err := clipboard.WriteAll(strings.Join(l.names(), "\n")); err != nil {
		b.footer.setStatus(fmt.Sprintf("Couldn't write to clipboard: %v", err), true)
		return
	}
	b.footer.setStatus(fmt.Sprintf("Copied %s", l.title), false)
}

func (b *Board) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if i, ok := b.header.click(msg); ok && !b.sorter.IsDragging() {
		switch i {
		case buttonFailure:
			b.toggleFailure()
		case buttonHelp:
			b.toggleHelp()
		}
		return nil
	}

	if !b.sorter.IsDragging() && b.container.HandleMouse(msg) {
		return nil
	}

	action := b.sorter.HandleMouseEvent(msg, b.dragIDs())
	switch action.Kind {
	case DragPress:
		l, i, ok := b.itemAt(action.ID)
		if !ok || !b.startDrag(l, i, msg) {
			b.sorter.Cancel()
			return nil
		}
		return flush

	case DragMotion:
		if !b.session.Active() {
			return nil
		}
		for _, l := range b.lists {
			if l.hover(action.X, action.Y) {
				break
			}
		}
		return flush

	case DragRelease:
		if src := b.listFor(b.session.SourceList()); src != nil {
			src.zone.EndDrag(b.commit)
		}
		return flush
	}
	return nil
}

func (b *Board) startDrag(l *list, i int, msg tea.MouseMsg) bool {
	// An unscanned handle counts as a miss; the next frame will have it.
	onHandle := false
	if l.zone.Handle {
		if r, ok := zoneRect(l.handleID(i)); ok {
			onHandle = contains(r, pointer(msg.X, msg.Y))
		}
	}
	if !l.zone.StartDrag(i, onHandle) {
		return false
	}
	for j, cand := range b.lists {
		if cand == l {
			b.setFocus(j)
		}
	}
	return true
}

func (b *Board) dragIDs() []string {
	var ids []string
	for _, l := range b.lists {
		ids = append(ids, l.dragIDs()...)
	}
	return ids
}

func (b *Board) itemAt(id string) (*list, int, bool) {
	for _, l := range b.lists {
		if i, ok := l.indexOf(id); ok {
			return l, i, true
		}
	}
	return nil, 0, false
}

func (b *Board) listFor(items dragsort.List[*Card]) *list {
	for _, l := range b.lists {
		if l.owns(items) {
			return l
		}
	}
	return nil
}

// commit is the completion callback of every drag. It runs on the frame after
// the drop.
func (b *Board) commit(rec dragsort.Record[*Card]) {
	source, target := b.listFor(rec.SourceList), b.listFor(rec.TargetList)
	if source == nil || target == nil {
		return
	}
	if target.sourceOnly() {
		b.footer.setStatus(fmt.Sprintf("%s does not accept drops", target.title), true)
		return
	}

	switch source.commit {
	case config.CommitCopy:
		dragsort.Copy(rec, cloneCard)
	case config.CommitAsync:
		// One save at a time, so a rollback never acts on shifted indices.
		if b.saving != nil {
			b.footer.setStatus(fmt.Sprintf("Still saving %s, drop ignored", b.saving.Name), true)
			log.Printf("commit: dropped %s while saving %s", rec.DraggedItem.Name, b.saving.Name)
			return
		}
		if !dragsort.Move(rec) {
			return
		}
		b.saving = rec.DraggedItem
		rec.DraggedItem.pending = true
		b.footer.setStatus(fmt.Sprintf("Saving %s...", rec.DraggedItem.Name), false)
		b.pending = append(b.pending, tea.Tick(b.asyncDelay, func(time.Time) tea.Msg {
			return commitDoneMsg{rec: rec}
		}))
	default:
		dragsort.Move(rec)
	}
}

// finishCommit confirms an async commit, or rolls it back while the network
// failure toggle is on.
func (b *Board) finishCommit(rec dragsort.Record[*Card]) {
	b.saving = nil
	rec.DraggedItem.pending = false
	if !b.failure {
		b.footer.setStatus(fmt.Sprintf("Saved %s", rec.DraggedItem.Name), false)
		log.Printf("commit: saved %s", rec.DraggedItem.Name)
		return
	}
	if target, ok := rec.TargetList.(*dragsort.Slice[*Card]); ok {
		rec.TargetIndex = target.IndexOf(rec.DraggedItem)
	}
	if dragsort.Rollback(rec) {
		b.footer.setStatus(fmt.Sprintf("Request timed out. %s moved back.", rec.DraggedItem.Name), true)
		log.Printf("commit: rolled back %s", rec.DraggedItem.Name)
	}
}

// logEvent records a session notification in the footer and the log file.
func (b *Board) logEvent(ev dragsort.Event[*Card]) {
	item := ""
	if ev.DraggedItem != nil {
		item = ev.DraggedItem.Name
	}

	from := slotLabel(ev.SourceArgs, ev.SourceIndex)
	var to string
	switch ev.Kind {
	case dragsort.EventStart:
		to = ""
	case dragsort.EventSort:
		to = slotLabel(ev.TargetArgs, ev.NewTargetIndex)
	case dragsort.EventMove:
		from = listLabel(b.listFor(ev.OldTargetList))
		to = slotLabel(ev.TargetArgs, ev.TargetIndex)
	case dragsort.EventEnd:
		rec := ev.Record()
		to = slotLabel(rec.TargetArgs, rec.TargetIndex)
	}

	b.footer.addEvent(ev.Kind.String(), string(ev.Group), item, from, to)
	log.Printf("%s group=%s item=%q from=%s to=%s", ev.Kind, ev.Group, item, from, to)
}

func listLabel(l *list) string {
	if l == nil {
		return "-"
	}
	return l.title
}

// slotLabel formats list args and index as "Title[3]".
func slotLabel(args any, index int) string {
	l, _ := args.(*list)
	label := listLabel(l)
	if index == dragsort.NoIndex {
		return label
	}
	return label + "[" + strconv.Itoa(index) + "]"
}

func (b *Board) View() string {
	if !b.isInitialized() {
		return ""
	}
	s := theme.Frame.
		MaxHeight(b.height).
		MaxWidth(b.width)
	return zone.Scan(s.Render(lipgloss.JoinVertical(lipgloss.Top,
		b.header.View(),
		b.container.View(),
		b.footer.View(),
	)))
}
