package ui

import (
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/tuisort/dragsort"
	"github.com/rileylov/tuisort/internal/config"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newTestBoard(lists ...config.ListConfig) *Board {
	for i := range lists {
		if lists[i].Commit == "" {
			lists[i].Commit = config.CommitMove
		}
	}
	return New(&config.Config{AsyncDelay: time.Millisecond, Lists: lists})
}

// drop drags src[from] into dst and releases over slot at.
func drop(b *Board, src *list, from int, dst *list, at int, up bool) {
	if !src.zone.StartDrag(from, true) {
		panic("drag did not start")
	}
	b.session.EnterList(dst.group(), dst.items, dst.horizontal(), dst)
	b.session.HoverAt(dst.group(), dst.items, at, up)
	src.zone.EndDrag(b.commit)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCommitMove(t *testing.T) {
	b := newTestBoard(
		config.ListConfig{Title: "A", Group: "g", Items: []string{"a1", "a2"}},
		config.ListConfig{Title: "B", Group: "g", Items: []string{"b1"}},
	)
	a, bl := b.lists[0], b.lists[1]

	drop(b, a, 0, bl, 0, true)
	if got := a.names(); !slices.Equal(got, []string{"a1", "a2"}) {
		t.Fatalf("commit ran before the next frame: A = %v", got)
	}

	b.Update(flushMsg{})
	if got := a.names(); !slices.Equal(got, []string{"a2"}) {
		t.Errorf("A = %v, want [a2]", got)
	}
	if got := bl.names(); !slices.Equal(got, []string{"a1", "b1"}) {
		t.Errorf("B = %v, want [a1 b1]", got)
	}
}

func TestCommitCopy(t *testing.T) {
	b := newTestBoard(
		config.ListConfig{Title: "Palette", Group: "g", SourceOnly: true, Commit: config.CommitCopy, Items: []string{"p"}},
		config.ListConfig{Title: "Canvas", Group: "g", Items: []string{"c"}},
	)
	palette, canvas := b.lists[0], b.lists[1]
	original := palette.items.At(0)

	drop(b, palette, 0, canvas, 0, false)
	b.Update(flushMsg{})

	if got := palette.names(); !slices.Equal(got, []string{"p"}) {
		t.Errorf("palette = %v, want [p]", got)
	}
	if got := canvas.names(); !slices.Equal(got, []string{"c", "p"}) {
		t.Fatalf("canvas = %v, want [c p]", got)
	}
	if canvas.items.At(1) == original {
		t.Error("copy shares the palette card")
	}
}

func TestCommitRejectsSourceOnlyTarget(t *testing.T) {
	b := newTestBoard(
		config.ListConfig{Title: "Palette", Group: "g", SourceOnly: true, Commit: config.CommitCopy, Items: []string{"p"}},
		config.ListConfig{Title: "Canvas", Group: "g", Items: []string{"c"}},
	)
	palette, canvas := b.lists[0], b.lists[1]

	drop(b, canvas, 0, palette, 0, true)
	b.Update(flushMsg{})

	if got := palette.names(); !slices.Equal(got, []string{"p"}) {
		t.Errorf("palette = %v, want [p]", got)
	}
	if got := canvas.names(); !slices.Equal(got, []string{"c"}) {
		t.Errorf("canvas = %v, want [c]", got)
	}
	if !b.footer.statusErr {
		t.Error("expected an error status")
	}
}

func TestAsyncCommit(t *testing.T) {
	tests := []struct {
		name    string
		failure bool
		wantA   []string
		wantB   []string
	}{
		{name: "saved", wantA: []string{"a2"}, wantB: []string{"b1", "a1"}},
		{name: "rolled back", failure: true, wantA: []string{"a1", "a2"}, wantB: []string{"b1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(
				config.ListConfig{Title: "A", Group: "g", Commit: config.CommitAsync, Items: []string{"a1", "a2"}},
				config.ListConfig{Title: "B", Group: "g", Items: []string{"b1"}},
			)
			a, bl := b.lists[0], b.lists[1]
			card := a.items.At(0)

			drop(b, a, 0, bl, 0, false)
			b.queue.Flush()

			if !card.pending {
				t.Fatal("card not marked pending")
			}
			if len(b.pending) != 1 {
				t.Fatalf("pending commands = %d, want 1", len(b.pending))
			}
			msg, ok := b.pending[0]().(commitDoneMsg)
			if !ok {
				t.Fatal("pending command did not report completion")
			}

			b.failure = tt.failure
			b.Update(msg)

			if card.pending {
				t.Error("card still pending")
			}
			if got := a.names(); !slices.Equal(got, tt.wantA) {
				t.Errorf("A = %v, want %v", got, tt.wantA)
			}
			if got := bl.names(); !slices.Equal(got, tt.wantB) {
				t.Errorf("B = %v, want %v", got, tt.wantB)
			}
			if b.footer.statusErr != tt.failure {
				t.Errorf("statusErr = %v, want %v", b.footer.statusErr, tt.failure)
			}
		})
	}
}

func TestEventLog(t *testing.T) {
	b := newTestBoard(
		config.ListConfig{Title: "A", Group: "g", Items: []string{"a1", "a2"}},
		config.ListConfig{Title: "B", Group: "g"},
	)
	a, bl := b.lists[0], b.lists[1]

	drop(b, a, 1, bl, 0, true)
	if len(b.footer.rows) != 0 {
		t.Fatalf("events logged before the next frame: %v", b.footer.rows)
	}
	b.Update(flushMsg{})

	want := [][]string{
		{"start", "g", "a2", "A[1]", ""},
		{"move", "g", "a2", "A", "B[0]"},
		{"end", "g", "a2", "A[1]", "B[0]"},
	}
	if len(b.footer.rows) != len(want) {
		t.Fatalf("rows = %v, want %d rows", b.footer.rows, len(want))
	}
	for i, row := range b.footer.rows {
		if !slices.Equal([]string(row), want[i]) {
			t.Errorf("row %d = %v, want %v", i, row, want[i])
		}
	}
}

func TestSlotLabel(t *testing.T) {
	l := &list{title: "A"}
	tests := []struct {
		args  any
		index int
		want  string
	}{
		{args: l, index: 2, want: "A[2]"},
		{args: l, index: dragsort.NoIndex, want: "A"},
		{args: nil, index: 0, want: "-[0]"},
	}
	for _, tt := range tests {
		if got := slotLabel(tt.args, tt.index); got != tt.want {
			t.Errorf("slotLabel(%v, %d) = %q, want %q", tt.args, tt.index, got, tt.want)
		}
	}
}

func TestCancelKey(t *testing.T) {
	b := newTestBoard(config.ListConfig{Title: "A", Group: "g", Items: []string{"a1", "a2"}})
	a := b.lists[0]
	a.zone.StartDrag(0, true)
	b.session.HoverAt("g", a.items, 1, false)

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if b.session.Active() {
		t.Fatal("session still active after esc")
	}
	if cmd == nil {
		t.Fatal("esc returned no flush command")
	}
	b.Update(cmd())
	if got := a.names(); !slices.Equal(got, []string{"a1", "a2"}) {
		t.Errorf("A = %v, cancelled drag must not reorder", got)
	}
}

func TestFocusKeys(t *testing.T) {
	b := newTestBoard(
		config.ListConfig{Title: "A", Group: "g"},
		config.ListConfig{Title: "B", Group: "g"},
		config.ListConfig{Title: "C", Group: "h"},
	)

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{msg: tea.KeyMsg{Type: tea.KeyTab}, want: 1},
		{msg: tea.KeyMsg{Type: tea.KeyTab}, want: 2},
		{msg: tea.KeyMsg{Type: tea.KeyTab}, want: 0},
		{msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: 2},
	}
	for i, s := range steps {
		b.Update(s.msg)
		if b.focus != s.want {
			t.Fatalf("step %d: focus = %d, want %d", i, b.focus, s.want)
		}
		for j, l := range b.lists {
			if l.focused != (j == s.want) {
				t.Errorf("step %d: list %d focused = %v", i, j, l.focused)
			}
		}
	}
}

func TestAddItem(t *testing.T) {
	b := newTestBoard(
		config.ListConfig{Title: "A", Group: "g", Items: []string{"a1"}},
		config.ListConfig{Title: "B", Group: "g"},
	)
	b.Update(tea.KeyMsg{Type: tea.KeyTab})
	b.Update(runes("a"))
	if !b.header.adding {
		t.Fatal("prompt not shown")
	}

	// Keys go to the prompt while it is open.
	b.Update(runes("q"))
	b.Update(runes("x"))
	b.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if b.header.adding {
		t.Error("prompt still open")
	}
	if got := b.lists[1].names(); !slices.Equal(got, []string{"qx"}) {
		t.Errorf("B = %v, want [qx]", got)
	}
	if got := b.lists[0].names(); !slices.Equal(got, []string{"a1"}) {
		t.Errorf("A = %v, want [a1]", got)
	}
}

func TestFailureKey(t *testing.T) {
	b := newTestBoard(config.ListConfig{Title: "A", Group: "g"})

	b.Update(runes("f"))
	if !b.failure || !b.header.buttons[buttonFailure].active {
		t.Fatal("failure not switched on")
	}
	b.Update(runes("f"))
	if b.failure || b.header.buttons[buttonFailure].active {
		t.Fatal("failure not switched off")
	}
}

func TestAsyncCommitOneAtATime(t *testing.T) {
	b := newTestBoard(config.ListConfig{
		Title:  "Saved remotely",
		Group:  "g",
		Commit: config.CommitAsync,
		Items:  []string{"Foo", "Bar", "Baz", "Quux"},
	})
	l := b.lists[0]
	b.failure = true

	drop(b, l, 0, l, 2, false)
	b.queue.Flush()
	if got := l.names(); !slices.Equal(got, []string{"Bar", "Baz", "Foo", "Quux"}) {
		t.Fatalf("after first drop = %v", got)
	}
	first, ok := b.pending[0]().(commitDoneMsg)
	if !ok {
		t.Fatal("first save did not report completion")
	}

	// A second drop while the first is still saving is refused.
	drop(b, l, 3, l, 1, true)
	b.queue.Flush()
	if got := l.names(); !slices.Equal(got, []string{"Bar", "Baz", "Foo", "Quux"}) {
		t.Fatalf("second drop applied during save: %v", got)
	}
	if len(b.pending) != 1 {
		t.Fatalf("pending commands = %d, want 1", len(b.pending))
	}
	if !b.footer.statusErr {
		t.Error("expected an error status for the refused drop")
	}

	b.Update(first)
	if got := l.names(); !slices.Equal(got, []string{"Foo", "Bar", "Baz", "Quux"}) {
		t.Errorf("after rollback = %v, want [Foo Bar Baz Quux]", got)
	}

	b.pending = nil
	drop(b, l, 3, l, 1, true)
	b.queue.Flush()
	if got := l.names(); !slices.Equal(got, []string{"Foo", "Quux", "Bar", "Baz"}) {
		t.Errorf("drop after the save finished = %v", got)
	}
}

func TestRollbackFollowsCard(t *testing.T) {
	b := newTestBoard(
		config.ListConfig{Title: "A", Group: "g", Commit: config.CommitAsync, Items: []string{"a1", "a2"}},
		config.ListConfig{Title: "B", Group: "g", Items: []string{"b1", "b2"}},
	)
	a, bl := b.lists[0], b.lists[1]
	b.failure = true

	drop(b, a, 0, bl, 0, true)
	b.queue.Flush()
	msg := b.pending[0]().(commitDoneMsg)

	// A plain move shifts the saved card before the result arrives.
	drop(b, bl, 2, bl, 0, true)
	b.queue.Flush()
	if got := bl.names(); !slices.Equal(got, []string{"b2", "a1", "b1"}) {
		t.Fatalf("B = %v", got)
	}

	b.Update(msg)
	if got := a.names(); !slices.Equal(got, []string{"a1", "a2"}) {
		t.Errorf("A = %v, want [a1 a2]", got)
	}
	if got := bl.names(); !slices.Equal(got, []string{"b2", "b1"}) {
		t.Errorf("B = %v, want [b2 b1]", got)
	}
}

func TestPressOnUnscannedHandle(t *testing.T) {
	b := newTestBoard(config.ListConfig{Title: "A", Group: "g", Handle: true, Items: []string{"a1"}})

	// Freshly added items have no scanned handle yet.
	if b.startDrag(b.lists[0], 0, tea.MouseMsg{}) {
		t.Fatal("drag started without hitting the handle")
	}
	if b.session.Active() {
		t.Error("session active after a refused press")
	}
	if v := b.lists[0].View(); !strings.Contains(v, handleGlyph) {
		t.Errorf("handle not rendered:\n%s", v)
	}
}

func TestViewBeforeSize(t *testing.T) {
	b := newTestBoard(config.ListConfig{Title: "A", Group: "g"})
	if v := b.View(); v != "" {
		t.Errorf("View() = %q before the first size message", v)
	}
}
