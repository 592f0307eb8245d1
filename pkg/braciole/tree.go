package braciole

// menuTree is an arena-backed ordered n-ary tree. Node 0 is always the root
// and is never removed. Children are stored as arena indices in insertion
// order, which is also display order. The arena keeps absorption of whole
// subtrees a slice append instead of a deep copy, and bounds stack use on
// deep menus since traversal is iterative.
type menuTree struct {
	nodes []treeNode
}

type treeNode struct {
	entry    Entry
	children []int
}

const rootIndex = 0

func newMenuTree(root Entry) *menuTree {
	return &menuTree{nodes: []treeNode{{entry: root}}}
}

// len is the total entry count, root included.
func (t *menuTree) len() int {
	return len(t.nodes)
}

// entryAt returns a pointer into the arena. The pointer is invalidated by
// the next structural mutation; use it immediately.
func (t *menuTree) entryAt(i int) *Entry {
	return &t.nodes[i].entry
}

// appendChild adds entry as the last child of parent and returns its index.
func (t *menuTree) appendChild(parent int, entry Entry) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, treeNode{entry: entry})
	t.nodes[parent].children = append(t.nodes[parent].children, idx)
	return idx
}

// absorb grafts every node of other under parent, transferring the subtree
// whole. Child indices of the absorbed nodes shift by the current arena
// length; other must not be used afterwards.
func (t *menuTree) absorb(parent int, other *menuTree) {
	offset := len(t.nodes)

	for _, n := range other.nodes {
		var children []int
		if len(n.children) > 0 {
			children = make([]int, len(n.children))
			for i, c := range n.children {
				children[i] = c + offset
			}
		}
		t.nodes = append(t.nodes, treeNode{entry: n.entry, children: children})
	}

	t.nodes[parent].children = append(t.nodes[parent].children, offset)
}

// walk returns the depth-first, insertion-ordered traversal of every entry
// below the root (the root itself is excluded).
func (t *menuTree) walk() []int {
	order := make([]int, 0, len(t.nodes)-1)
	stack := make([]int, 0, len(t.nodes))

	root := t.nodes[rootIndex]
	for i := len(root.children) - 1; i >= 0; i-- {
		stack = append(stack, root.children[i])
	}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, idx)

		children := t.nodes[idx].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return order
}
