// Package selection owns the ordered set of chosen catalog entries. It is
// the single writer of both membership and order: every surface (tree
// checkbox, selected panel, search overlay) mutates selection only through
// this model, so one code path keeps membership and order in step no
// matter where a change originates.
package selection

import "github.com/AntiHeld889/beamerctl/internal/catalog"

// OnChange is invoked synchronously after every mutation that changed
// state, with the current order. The slice is a fresh copy.
type OnChange func(order []string)

// Model is the ordered, deduplicated sequence of selected catalog paths.
type Model struct {
	index    *catalog.Index
	order    []string
	member   map[string]bool
	onChange OnChange
	seeded   bool
}

// NewModel creates an empty selection over the given catalog. onChange may
// be nil.
func NewModel(index *catalog.Index, onChange OnChange) *Model {
	return &Model{
		index:    index,
		member:   make(map[string]bool),
		onChange: onChange,
	}
}

// Toggle flips membership for path: selecting appends it to the end of the
// order, deselecting removes it. Paths without a catalog entry are
// ignored. Returns true if state changed.
func (m *Model) Toggle(path string) bool {
	if m.member[path] {
		return m.SetOff(path)
	}
	return m.SetOn(path)
}

// SetOn selects path, appending it to the end of the order. No-op if
// already selected or unknown to the catalog.
func (m *Model) SetOn(path string) bool {
	if m.member[path] {
		return false
	}
	if _, ok := m.index.Lookup(path); !ok {
		return false
	}
	m.member[path] = true
	m.order = append(m.order, path)
	m.seeded = true
	m.changed()
	return true
}

// SetOff deselects path and removes it from the order. No-op if not
// selected.
func (m *Model) SetOff(path string) bool {
	if !m.member[path] {
		return false
	}
	delete(m.member, path)
	for i, p := range m.order {
		if p == path {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.changed()
	return true
}

// Remove is the canonical removal entry point for every surface; it defers
// to SetOff so removal cannot diverge from toggle state.
func (m *Model) Remove(path string) bool {
	return m.SetOff(path)
}

// Move swaps path with its adjacent neighbor (-1 = up, +1 = down). No-op
// at either boundary, for absent paths, and for any other direction value.
func (m *Model) Move(path string, direction int) bool {
	if direction != -1 && direction != 1 {
		return false
	}
	for i, p := range m.order {
		if p != path {
			continue
		}
		j := i + direction
		if j < 0 || j >= len(m.order) {
			return false
		}
		m.order[i], m.order[j] = m.order[j], m.order[i]
		m.changed()
		return true
	}
	return false
}

// ApplyInitialOrder reorders the currently selected paths so the ones
// listed in paths come first, in that relative order; selected paths not
// listed keep their encounter order and follow. One-time: it no-ops after
// any other mutation has run, and on nil/empty input.
func (m *Model) ApplyInitialOrder(paths []string) {
	if m.seeded || len(paths) == 0 {
		return
	}
	m.seeded = true

	reordered := make([]string, 0, len(m.order))
	taken := make(map[string]bool, len(paths))
	for _, p := range paths {
		if m.member[p] && !taken[p] {
			reordered = append(reordered, p)
			taken[p] = true
		}
	}
	for _, p := range m.order {
		if !taken[p] {
			reordered = append(reordered, p)
		}
	}
	m.order = reordered
	m.changed()
}

// Seed marks path as selected without firing onChange; used to reflect
// pre-selected state at load time, before ApplyInitialOrder.
func (m *Model) Seed(path string) {
	if m.member[path] {
		return
	}
	if _, ok := m.index.Lookup(path); !ok {
		return
	}
	m.member[path] = true
	m.order = append(m.order, path)
}

// Contains reports whether path is selected.
func (m *Model) Contains(path string) bool {
	return m.member[path]
}

// Order returns a copy of the current ordered selection.
func (m *Model) Order() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of selected paths.
func (m *Model) Len() int {
	return len(m.order)
}

// CanMoveUp reports whether path exists and is not first.
func (m *Model) CanMoveUp(path string) bool {
	for i, p := range m.order {
		if p == path {
			return i > 0
		}
	}
	return false
}

// CanMoveDown reports whether path exists and is not last.
func (m *Model) CanMoveDown(path string) bool {
	for i, p := range m.order {
		if p == path {
			return i < len(m.order)-1
		}
	}
	return false
}

func (m *Model) changed() {
	if m.onChange != nil {
		m.onChange(m.Order())
	}
}
