package braciole

// navState is the navigation state machine: a cursor plus the cached entry
// count. The count is recomputed after every structural mutation, never
// incrementally maintained.
type navState struct {
	cursor    int
	itemCount int
}

// updateItemCount overwrites the cached count. The cursor is deliberately
// not clamped: no operation shrinks the tree today, so an out-of-range
// cursor cannot arise through the public API.
func (n *navState) updateItemCount(count int) {
	n.itemCount = count
}

// moveDown advances the cursor, wrapping to zero one step past itemCount.
// The cursor can therefore sit at itemCount for exactly one call before the
// wrap fires; tests pin this cycle length.
func (n *navState) moveDown() {
	n.cursor++
	if n.cursor > n.itemCount {
		n.cursor = 0
	}
}

// moveUp retreats the cursor, wrapping to the last entry from zero. With no
// entries the cursor stays at zero instead of going negative.
func (n *navState) moveUp() {
	if n.cursor == 0 {
		if n.itemCount == 0 {
			return
		}
		n.cursor = n.itemCount - 1
		return
	}
	n.cursor--
}
