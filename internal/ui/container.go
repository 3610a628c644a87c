// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/tuisort/internal/theme"
)

const (
	handleWidth   = 1    // Width of column handles in characters
	minWidthChars = 16   // Minimum width in characters for any column
	maxProportion = 0.70 // Maximum proportion (70%) for any column
)

var (
	// Style for column handles
	columnHandleStyle = lipgloss.NewStyle().
				Width(handleWidth).
				Background(theme.Subtle).
				Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#585858"})

	// Style for column handles when being dragged
	columnHandleActiveStyle = columnHandleStyle.
				Background(theme.Highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"})
)

// column stacks the lists of one group.
type column struct {
	lists []*list
}

// Container lays groups out side by side with draggable boundaries between
// them.
type Container struct {
	id          string
	width       int
	height      int
	columns     []*column
	proportions []float64 // Width proportions for each column (sum = 1.0)
	dragHandler *DragHandler
}

// NewContainer creates a container with one column per group, in the given
// order. Lists whose group is not named are left out.
func NewContainer(groups []string, lists []*list) *Container {
	columns := make([]*column, len(groups))
	byGroup := make(map[string]*column, len(groups))
	for i, g := range groups {
		columns[i] = &column{}
		byGroup[g] = columns[i]
	}
	for _, l := range lists {
		if c, ok := byGroup[string(l.group())]; ok {
			c.lists = append(c.lists, l)
		}
	}

	proportions := make([]float64, len(columns))
	for i := range proportions {
		proportions[i] = 1 / float64(len(columns))
	}

	return &Container{
		id:          zone.NewPrefix(),
		columns:     columns,
		proportions: proportions,
		dragHandler: NewDragHandler(),
	}
}

// SetSize updates the container size and lays out the columns.
func (r *Container) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.layout()
}

func (r *Container) availableWidth() int {
	return r.width - ((len(r.columns) - 1) * handleWidth)
}

func (r *Container) layout() {
	available := r.availableWidth()
	for i, c := range r.columns {
		w := int(float64(available) * r.proportions[i])
		for _, l := range c.lists {
			l.setWidth(w)
		}
	}
}

// HandleMouse resizes columns. It reports whether the event was consumed.
func (r *Container) HandleMouse(msg tea.MouseMsg) bool {
	action := r.dragHandler.HandleMouseEvent(msg, r.getHandleIDs())
	switch action.Kind {
	case DragNone:
		return false
	case DragMotion:
		if action.DeltaX != 0 {
			r.updateProportionsFromDrag(action.ID, action.DeltaX)
			r.layout()
		}
	}
	return true
}

func (r *Container) View() string {
	if len(r.columns) == 0 {
		return ""
	}

	var parts []string
	available := r.availableWidth()

	for i, c := range r.columns {
		w := int(float64(available) * r.proportions[i])
		views := make([]string, len(c.lists))
		for j, l := range c.lists {
			views[j] = l.View()
		}
		colView := lipgloss.NewStyle().
			Width(w).
			Height(r.height).
			MaxHeight(r.height).
			Render(lipgloss.JoinVertical(lipgloss.Left, views...))
		parts = append(parts, colView)

		// Add drag handle (except after the last column)
		if i < len(r.columns)-1 {
			parts = append(parts, r.renderHandle(r.getHandleID(i)))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// getHandleIDs returns all column handle IDs
func (r *Container) getHandleIDs() []string {
	var ids []string
	for i := 0; i < len(r.columns)-1; i++ {
		ids = append(ids, r.getHandleID(i))
	}
	return ids
}

// getHandleID returns the zone ID for a specific handle
func (r *Container) getHandleID(handleIndex int) string {
	return r.id + "handle_" + strconv.Itoa(handleIndex)
}

// renderHandle renders a column handle with appropriate styling
func (r *Container) renderHandle(handleID string) string {
	style := columnHandleStyle
	if r.dragHandler.IsDragging() && r.dragHandler.DragID() == handleID {
		style = columnHandleActiveStyle
	}
	height := max(r.height, 1)
	content := strings.TrimSuffix(strings.Repeat("│\n", height), "\n")
	return zone.Mark(handleID, style.Render(content))
}

// updateProportionsFromDrag updates column proportions based on drag movement
func (r *Container) updateProportionsFromDrag(handleID string, deltaX int) {
	handleIndex := -1
	for i := 0; i < len(r.columns)-1; i++ {
		if r.getHandleID(i) == handleID {
			handleIndex = i
			break
		}
	}
	if handleIndex == -1 {
		return
	}

	available := r.availableWidth()
	if available <= 0 {
		return
	}

	deltaPercent := float64(deltaX) / float64(available)

	// Left column grows/shrinks, right column shrinks/grows
	leftIndex := handleIndex
	rightIndex := handleIndex + 1

	newLeftProp := r.proportions[leftIndex] + deltaPercent
	newRightProp := r.proportions[rightIndex] - deltaPercent

	minProportion := float64(minWidthChars) / float64(available)

	if newLeftProp < minProportion {
		newLeftProp = minProportion
		newRightProp = r.proportions[rightIndex] + (r.proportions[leftIndex] - newLeftProp)
	}
	if newLeftProp > maxProportion {
		newLeftProp = maxProportion
		newRightProp = r.proportions[rightIndex] + (r.proportions[leftIndex] - newLeftProp)
	}
	if newRightProp < minProportion {
		newRightProp = minProportion
		newLeftProp = r.proportions[leftIndex] + (r.proportions[rightIndex] - newRightProp)
	}
	if newRightProp > maxProportion {
		newRightProp = maxProportion
		newLeftProp = r.proportions[leftIndex] + (r.proportions[rightIndex] - newRightProp)
	}

	r.proportions[leftIndex] = newLeftProp
	r.proportions[rightIndex] = newRightProp
	r.normalizeProportions()
}

// normalizeProportions ensures all proportions sum to 1.0
func (r *Container) normalizeProportions() {
	total := 0.0
	for _, p := range r.proportions {
		total += p
	}
	if total > 0 {
		for i := range r.proportions {
			r.proportions[i] /= total
		}
	}
}
