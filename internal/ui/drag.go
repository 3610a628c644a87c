// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/tuisort/dragsort"
)

// DragState represents the current state of a pointer drag
type DragState int

const (
	DragStateIdle DragState = iota
	DragStateDragging
)

// DragKind says what a mouse event meant to the drag handler
type DragKind int

const (
	DragNone DragKind = iota
	DragPress
	DragMotion
	DragRelease
)

// DragAction is the outcome of feeding a mouse event to a DragHandler
type DragAction struct {
	Kind   DragKind
	ID     string // zone the drag started on
	DeltaX int
	X, Y   int
}

// DragHandler tracks a left-button drag that starts on one of a set of zones.
// The column resizer and the item sorter each own one.
type DragHandler struct {
	state  DragState
	dragID string // ID of the zone being dragged
	lastX  int    // Last known X position during drag
}

// NewDragHandler creates a new drag handler
func NewDragHandler() *DragHandler {
	return &DragHandler{
		state: DragStateIdle,
	}
}

// HandleMouseEvent processes mouse events for drag operations. It returns an
// action with Kind DragNone when the event is not part of a drag.
func (d *DragHandler) HandleMouseEvent(msg tea.MouseMsg, ids []string) DragAction {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && d.state == DragStateIdle {
			for _, id := range ids {
				if zone.Get(id).InBounds(msg) {
					d.startDrag(id, msg.X)
					return DragAction{Kind: DragPress, ID: id, X: msg.X, Y: msg.Y}
				}
			}
		}
	case tea.MouseActionMotion:
		if d.state == DragStateDragging {
			deltaX := msg.X - d.lastX
			d.lastX = msg.X
			return DragAction{Kind: DragMotion, ID: d.dragID, DeltaX: deltaX, X: msg.X, Y: msg.Y}
		}
	case tea.MouseActionRelease:
		if d.state == DragStateDragging {
			id := d.dragID
			d.stopDrag()
			return DragAction{Kind: DragRelease, ID: id, X: msg.X, Y: msg.Y}
		}
	}
	return DragAction{}
}

// IsDragging returns true if currently in a drag operation
func (d *DragHandler) IsDragging() bool {
	return d.state == DragStateDragging
}

// DragID returns the ID of the zone currently being dragged
func (d *DragHandler) DragID() string {
	return d.dragID
}

// Cancel drops the current drag without a release event.
func (d *DragHandler) Cancel() {
	d.stopDrag()
}

// startDrag begins a drag operation
func (d *DragHandler) startDrag(id string, x int) {
	d.state = DragStateDragging
	d.dragID = id
	d.lastX = x
}

// stopDrag ends the current drag operation
func (d *DragHandler) stopDrag() {
	d.state = DragStateIdle
	d.dragID = ""
	d.lastX = 0
}

// zoneRect converts a scanned zone into slot geometry. Terminal cells are
// inclusive on both ends.
func zoneRect(id string) (dragsort.Rect, bool) {
	z := zone.Get(id)
	if z == nil || z.IsZero() {
		return dragsort.Rect{}, false
	}
	return dragsort.Rect{
		Left:   float64(z.StartX),
		Top:    float64(z.StartY),
		Width:  float64(z.EndX - z.StartX + 1),
		Height: float64(z.EndY - z.StartY + 1),
	}, true
}

// pointer places a mouse cell at its centre so slot midpoints split cells
// cleanly.
func pointer(x, y int) dragsort.Point {
	return dragsort.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}
