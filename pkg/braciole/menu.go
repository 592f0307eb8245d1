package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Menu composes a style, an entry tree and the navigation state, and
// orchestrates the layout/draw pipeline. A Menu is single-threaded: one
// control loop issues mutation, navigation and draw calls strictly in
// sequence, and callers on concurrent systems must serialize access
// themselves.
type Menu struct {
	tree  *menuTree
	style Style
	state navState
}

// New creates a menu whose root entry carries the title. The root is drawn
// as the heading and counts toward the entry total, but never appears as a
// row.
func New(title string, style Style) *Menu {
	m := &Menu{style: style}
	m.tree = newMenuTree(NewEntry(title, EntrySubmenu, &m.style))
	return m
}

// AddItem appends entry as the last child of the root and refreshes the
// cached entry count.
func (m *Menu) AddItem(entry Entry) {
	m.tree.appendChild(rootIndex, entry)
	m.state.updateItemCount(m.tree.len())
}

// AddCheckbox appends a checkbox row.
func (m *Menu) AddCheckbox(label string) {
	m.AddItem(NewEntry(label, EntryCheckbox, &m.style))
}

// AddSelector appends a selector row over a fixed option list.
func (m *Menu) AddSelector(label string, options []string) {
	m.AddItem(NewSelectorEntry(label, &m.style, options))
}

// AddSection appends a non-interactive section row.
func (m *Menu) AddSection(label string) {
	m.AddItem(NewEntry(label, EntrySection, &m.style))
}

// AddSubmenu grafts the nested menu's entire tree under the root, keeping it
// nested rather than flattening. Ownership transfers: nested must not be
// used afterwards.
func (m *Menu) AddSubmenu(nested *Menu) {
	m.tree.absorb(rootIndex, nested.tree)
	m.state.updateItemCount(m.tree.len())
}

func (m *Menu) NavigateDown() {
	m.state.moveDown()
}

func (m *Menu) NavigateUp() {
	m.state.moveUp()
}

// SelectItem is an extension point for hosts; the core defines no activation
// behavior.
func (m *Menu) SelectItem() {}

// Title returns the root entry's label.
func (m *Menu) Title() string {
	return m.tree.entryAt(rootIndex).Label
}

// Cursor returns the navigation cursor, which selects both the highlighted
// entry and the first row shown in the viewport.
func (m *Menu) Cursor() int {
	return m.state.cursor
}

// Len is the total entry count, root included.
func (m *Menu) Len() int {
	return m.tree.len()
}

// EntryAt returns the i-th entry of the display traversal (0 is the first
// row below the heading), or nil when out of range. The pointer is only
// valid until the next mutation.
func (m *Menu) EntryAt(i int) *Entry {
	order := m.tree.walk()
	if i < 0 || i >= len(order) {
		return nil
	}
	return m.tree.entryAt(order[i])
}

// HighlightedEntry returns the entry under the cursor, or nil when the
// cursor points past the last row.
func (m *Menu) HighlightedEntry() *Entry {
	return m.EntryAt(m.state.cursor)
}

// Draw renders one frame onto the surface:
//
//  1. Clear to the background color.
//  2. Draw the title at the top-left with the heading style.
//  3. The viewport is everything below the heading's line height.
//  4. Walk the tree depth-first in insertion order, skipping the first
//     cursor entries, so the highlighted row is always the first visible
//     one.
//  5. Rows that would not fit whole are not drawn at all; traversal stops
//     at the first such row.
//
// The first surface error aborts the walk and is returned as-is, leaving a
// partially rendered frame on the surface.
func (m *Menu) Draw(s Surface) error {
	bounds := s.Bounds()

	if err := s.Clear(m.style.Background); err != nil {
		return err
	}

	root := m.tree.entryAt(rootIndex)
	if err := s.DrawText(root.Label, sdl.Point{}, m.style.Heading, constants.TextAlignLeft, constants.BaselineTop); err != nil {
		return err
	}

	headerHeight := m.style.Heading.LineHeight()
	remaining := resizedHeightBottom(bounds, bounds.H-headerHeight)

	order := m.tree.walk()
	if m.state.cursor >= len(order) {
		return nil
	}

	for _, idx := range order[m.state.cursor:] {
		entry := m.tree.entryAt(idx)

		itemHeight := entry.Size().H
		if itemHeight > remaining.H {
			break
		}

		row := s.Cropped(sdl.Rect{X: remaining.X, Y: remaining.Y, W: remaining.W, H: itemHeight})
		if err := entry.draw(row); err != nil {
			return err
		}

		remaining = resizedHeightBottom(remaining, remaining.H-itemHeight)
	}

	return nil
}
