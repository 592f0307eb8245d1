package nextui

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// NextVal is the theme record emitted by the NextUI settings binary.
type NextVal struct {
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	Color3   string `json:"color3"`
	Color4   string `json:"color4"`
	Color5   string `json:"color5"`
	Color6   string `json:"color6"`
	BGColor  string `json:"bgcolor"`
	Font     int    `json:"font"`
	FontPath string `json:"fontpath"`
}

var defaultTheme = internal.Theme{
	BackgroundColor:      internal.HexToColor(0x000000),
	TextColor:            internal.HexToColor(0xFFFFFF),
	HeadingColor:         internal.HexToColor(0xFFFFFF),
	IndicatorFillColor:   internal.HexToColor(0x9B2257),
	HighlightColor:       internal.HexToColor(0x9B2257),
	HighlightedTextColor: internal.HexToColor(0x000000),
	FontPath:             "",
	BackgroundImagePath:  "/mnt/SDCARD/bg.png",
}

func InitNextUITheme() internal.Theme {
	var nv *NextVal
	var err error

	if constants.IsDevMode() {
		nv, err = InitStaticNextVal(os.Getenv("NEXTVAL_PATH"))
	} else {
		nv, err = loadNextVal()
	}

	if err != nil {
		return defaultTheme
	}

	theme := internal.Theme{
		BackgroundColor:      parseHexColor(nv.BGColor),
		TextColor:            parseHexColor(nv.Color4),
		HeadingColor:         parseHexColor(nv.Color1),
		IndicatorFillColor:   parseHexColor(nv.Color2),
		HighlightColor:       parseHexColor(nv.Color2),
		HighlightedTextColor: parseHexColor(nv.Color5),
		FontPath:             nv.FontPath,
	}

	if constants.IsDevMode() {
		theme.BackgroundImagePath = os.Getenv(constants.BackgroundPathEnvVar)
	} else {
		theme.BackgroundImagePath = "/mnt/SDCARD/bg.png"
	}

	return theme
}

func InitStaticNextVal(filePath string) (*NextVal, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var nextval NextVal
	err = json.Unmarshal(data, &nextval)
	if err != nil {
		return nil, fmt.Errorf("error parsing JSON from file: %w", err)
	}

	return &nextval, nil
}

func loadNextVal() (*NextVal, error) {
	execPath := "/mnt/SDCARD/.system/tg5040/bin/nextval.elf"

	cmd := exec.Command(execPath)
	output, err := cmd.Output()
	if err != nil {
		internal.GetInternalLogger().Error("Error executing nextval!", "error", err)
		return nil, err
	}

	var nextval NextVal
	err = json.Unmarshal([]byte(strings.TrimSpace(string(output))), &nextval)
	if err != nil {
		internal.GetInternalLogger().Error("Error parsing nextval JSON", "error", err)
		return nil, err
	}

	return &nextval, nil
}

func parseHexColor(hexStr string) sdl.Color {
	hexStr = strings.TrimPrefix(hexStr, "0x")

	hex, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return sdl.Color{R: 255, G: 0, B: 0, A: 255}
	}

	return internal.HexToColor(uint32(hex))
}
