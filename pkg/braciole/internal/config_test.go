package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadThemeFileOverrides(t *testing.T) {
	SetTheme(Theme{
		BackgroundColor: HexToColor(0x000000),
		TextColor:       HexToColor(0xFFFFFF),
		FontPath:        "/orig/font.ttf",
	})

	path := filepath.Join(t.TempDir(), "theme.toml")
	content := `
background = "0x112233"
text = "ABCDEF"
font_path = "/fonts/custom.ttf"

[font_sizes]
heading = 52
item = 40
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadThemeFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFile: %v", err)
	}

	if theme.BackgroundColor != HexToColor(0x112233) {
		t.Fatalf("background = %+v", theme.BackgroundColor)
	}
	if theme.TextColor != HexToColor(0xABCDEF) {
		t.Fatalf("text = %+v", theme.TextColor)
	}
	if theme.FontPath != "/fonts/custom.ttf" {
		t.Fatalf("font path = %q", theme.FontPath)
	}
	if DefaultFontSizes.Heading != 52 || DefaultFontSizes.Item != 40 {
		t.Fatalf("font sizes = %+v", DefaultFontSizes)
	}
}

func TestLoadThemeFileKeepsUnsetFields(t *testing.T) {
	SetTheme(Theme{
		BackgroundColor: HexToColor(0x101010),
		FontPath:        "/orig/font.ttf",
	})

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("text = \"0x00FF00\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadThemeFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFile: %v", err)
	}

	if theme.BackgroundColor != HexToColor(0x101010) {
		t.Fatal("unset background must keep the active theme's value")
	}
	if theme.FontPath != "/orig/font.ttf" {
		t.Fatal("unset font path must keep the active theme's value")
	}
	if theme.TextColor != HexToColor(0x00FF00) {
		t.Fatalf("text = %+v", theme.TextColor)
	}
}

func TestLoadThemeFileMissing(t *testing.T) {
	if _, err := LoadThemeFile("/does/not/exist.toml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadThemeFileBadColorKeepsCurrent(t *testing.T) {
	SetTheme(Theme{TextColor: HexToColor(0xFFFFFF)})

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("text = \"not-a-color\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadThemeFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFile: %v", err)
	}

	if theme.TextColor != HexToColor(0xFFFFFF) {
		t.Fatal("invalid color must keep the active theme's value")
	}
}
