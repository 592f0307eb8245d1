package braciole

import "testing"

func labels(t *testing.T, m *Menu) []string {
	t.Helper()

	var out []string
	for i := 0; ; i++ {
		entry := m.EntryAt(i)
		if entry == nil {
			break
		}
		out = append(out, entry.Label)
	}
	return out
}

func TestItemCountIncludesRoot(t *testing.T) {
	style := testStyle()

	tests := []struct {
		name  string
		build func(m *Menu)
		want  int
	}{
		{
			name:  "empty menu",
			build: func(m *Menu) {},
			want:  1,
		},
		{
			name: "three flat entries",
			build: func(m *Menu) {
				m.AddCheckbox("a")
				m.AddSelector("b", []string{"x"})
				m.AddSection("c")
			},
			want: 4,
		},
		{
			name: "single-entry submenu counts once",
			build: func(m *Menu) {
				m.AddCheckbox("a")
				m.AddSubmenu(New("sub", testStyle()))
			},
			want: 3,
		},
		{
			name: "submenu with children counts all nodes",
			build: func(m *Menu) {
				sub := New("sub", testStyle())
				sub.AddCheckbox("inner1")
				sub.AddSection("inner2")
				m.AddSubmenu(sub)
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New("root", style)
			tt.build(m)
			if got := m.Len(); got != tt.want {
				t.Fatalf("Len() = %d, want %d", got, tt.want)
			}
			if m.state.itemCount != m.Len() && m.Len() > 1 {
				t.Fatalf("cached item count %d does not match Len() %d", m.state.itemCount, m.Len())
			}
		})
	}
}

func TestMutationSequenceCountLaw(t *testing.T) {
	// N mutation calls always leave the count at N+1, whatever the mix.
	m := New("root", testStyle())

	n := 0
	m.AddCheckbox("c1")
	n++
	m.AddSelector("s1", []string{"a", "b"})
	n++
	m.AddSubmenu(New("sub1", testStyle()))
	n++
	m.AddSection("sec1")
	n++
	m.AddSubmenu(New("sub2", testStyle()))
	n++

	if got := m.Len(); got != n+1 {
		t.Fatalf("Len() = %d, want %d", got, n+1)
	}
}

func TestTraversalOrderDepthFirstInsertionOrder(t *testing.T) {
	m := New("root", testStyle())
	m.AddCheckbox("a")

	sub := New("sub", testStyle())
	sub.AddCheckbox("b1")
	sub.AddSection("b2")

	nested := New("nested", testStyle())
	nested.AddCheckbox("b3")
	sub.AddSubmenu(nested)

	m.AddSubmenu(sub)
	m.AddSection("c")

	want := []string{"a", "sub", "b1", "b2", "nested", "b3", "c"}
	got := labels(t, m)

	if len(got) != len(want) {
		t.Fatalf("traversal = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("traversal[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestAbsorbedSubtreeStaysNested(t *testing.T) {
	m := New("root", testStyle())

	sub := New("sub", testStyle())
	sub.AddCheckbox("inner")
	m.AddSubmenu(sub)

	// The root must have exactly one child (the submenu), not two.
	if got := len(m.tree.nodes[rootIndex].children); got != 1 {
		t.Fatalf("root children = %d, want 1", got)
	}

	subIdx := m.tree.nodes[rootIndex].children[0]
	if got := m.tree.entryAt(subIdx).Label; got != "sub" {
		t.Fatalf("root child label = %q, want %q", got, "sub")
	}
	if got := len(m.tree.nodes[subIdx].children); got != 1 {
		t.Fatalf("submenu children = %d, want 1", got)
	}
}

func TestEntryAtOutOfRange(t *testing.T) {
	m := New("root", testStyle())
	m.AddCheckbox("a")

	if m.EntryAt(-1) != nil {
		t.Fatal("EntryAt(-1) should be nil")
	}
	if m.EntryAt(1) != nil {
		t.Fatal("EntryAt(1) should be nil")
	}
}
