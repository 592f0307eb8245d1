// Package braciole renders hierarchical menus onto pixel-addressable
// displays and lets a host loop navigate them.
//
// A Menu owns an ordered tree of entries (sections, checkboxes, selectors
// and nested submenus), a shared Style, and a navigation cursor. The host
// builds the tree with the Add* methods, moves the cursor with NavigateUp
// and NavigateDown, and calls Draw once per frame. Draw clears the surface,
// paints the title heading, then fills the remaining viewport top-down with
// whole rows starting at the cursor; a row that would not fit entirely is
// not drawn at all.
//
// Drawing goes through the Surface interface. RendererSurface is the SDL2
// implementation; tests substitute in-memory fakes. Everything is
// single-threaded by design: the library targets handhelds driven by one
// control loop.
//
// # Basic usage
//
//	braciole.Init(braciole.Options{WindowTitle: "Settings"})
//	defer braciole.Close()
//
//	menu := braciole.New("Settings", braciole.DefaultStyle())
//	menu.AddCheckbox("Sound")
//	menu.AddSelector("Theme", []string{"Dark", "Light"})
//	menu.AddSection("About")
//
//	audio := braciole.New("Audio", braciole.DefaultStyle())
//	audio.AddCheckbox("Mono")
//	menu.AddSubmenu(audio)
//
//	err := braciole.Show(menu, braciole.DefaultShowOptions())
package braciole
