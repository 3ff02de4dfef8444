package model

import "strings"

// noSelection is the sentinel for "nothing selected" (empty list).
const noSelection = -1

// List owns the todo collection and the current selection.
//
// Invariant: when the list is non-empty, the selected index is always within
// bounds; when it is empty, nothing is selected. Every mutating method
// re-establishes this before returning.
type List struct {
	items    []TodoItem
	selected int
	nextID   uint64
}

// NewList builds a List around already-loaded items. nextID is computed as
// max(existing ids)+1, so the first id handed out on a fresh list is 1.
// A non-empty list starts with the first item selected.
func NewList(items []TodoItem) List {
	l := List{items: items, selected: noSelection, nextID: 1}
	for _, it := range items {
		if it.ID >= l.nextID {
			l.nextID = it.ID + 1
		}
	}
	if len(l.items) > 0 {
		l.selected = 0
	}
	return l
}

// Items exposes the collection for rendering and persistence. Callers must
// not mutate the returned slice.
func (l *List) Items() []TodoItem { return l.items }

// Selected reports the selected index, or ok=false when the list is empty.
func (l *List) Selected() (int, bool) {
	if l.selected == noSelection {
		return 0, false
	}
	return l.selected, true
}

// SelectedItem returns the item under the selection, or ok=false when empty.
func (l *List) SelectedItem() (TodoItem, bool) {
	if l.selected == noSelection {
		return TodoItem{}, false
	}
	return l.items[l.selected], true
}

// NextID reports the id the next Add will assign.
func (l *List) NextID() uint64 { return l.nextID }

// Add appends a new item with the given text (trimmed) and selects it.
// Whitespace-only text is a no-op. Reports whether the list changed.
func (l *List) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	l.items = append(l.items, NewTodoItem(l.nextID, text))
	l.nextID++
	l.selected = len(l.items) - 1
	return true
}

// ToggleSelected flips the completed flag on the selected item.
// Reports whether the list changed.
func (l *List) ToggleSelected() bool {
	if l.selected == noSelection {
		return false
	}
	l.items[l.selected].ToggleCompletion()
	return true
}

// DeleteSelected removes the selected item, preserving the relative order of
// the rest, then re-establishes the selection invariant.
// Reports whether the list changed.
func (l *List) DeleteSelected() bool {
	if l.selected == noSelection {
		return false
	}
	removed := l.selected
	l.items = append(l.items[:removed], l.items[removed+1:]...)
	l.selected = adjustSelection(removed, len(l.items)+1, removed)
	return true
}

// adjustSelection computes the post-deletion selection for a list that had
// oldLen items and just lost the one at removed. DeleteSelected always passes
// oldSelected == removed, but the rule is stated generally so it can be
// tested in isolation: an emptied list selects nothing; a removal before the
// selection shifts it left; a selection at or past the new end clamps to the
// new last index; otherwise the index is unchanged and now points at what was
// the following item.
func adjustSelection(oldSelected, oldLen, removed int) int {
	newLen := oldLen - 1
	if newLen <= 0 || oldSelected == noSelection {
		return noSelection
	}
	s := oldSelected
	if removed < s {
		s--
	}
	if s >= newLen {
		s = newLen - 1
	}
	return s
}

// Next moves the selection forward by one, wrapping past the end to 0.
// On a non-empty list with no selection it selects index 0.
func (l *List) Next() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.selected == noSelection:
		l.selected = 0
	case l.selected >= len(l.items)-1:
		l.selected = 0
	default:
		l.selected++
	}
}

// Previous moves the selection backward by one, wrapping before 0 to the
// last index. On a non-empty list with no selection it selects index 0.
func (l *List) Previous() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.selected == noSelection:
		l.selected = 0
	case l.selected == 0:
		l.selected = len(l.items) - 1
	default:
		l.selected--
	}
}

func (l *List) CompletedCount() int {
	n := 0
	for _, it := range l.items {
		if it.Completed {
			n++
		}
	}
	return n
}

func (l *List) TotalCount() int { return len(l.items) }
