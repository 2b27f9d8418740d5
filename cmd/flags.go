package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/they4kman/sweepcore/game"
)

type GameMode int

const (
	// Classic keeps only the first-clicked cell clear of mines
	Classic GameMode = iota
	// Win7 also clears every cell surrounding the first click
	Win7
)

var gameModes = map[string]GameMode{
	"win7":    Win7,
	"classic": Classic,
}

// SafeRadius is the first-click safe zone radius this mode implies
func (mode GameMode) SafeRadius() int {
	if mode == Win7 {
		return 1
	}
	return 0
}

func parseGameMode(value string) (GameMode, error) {
	if mode, isValid := gameModes[strings.ToLower(value)]; isValid {
		return mode, nil
	}
	return 0, fmt.Errorf("invalid game mode %q (want one of %s)", value, choices(gameModes))
}

type gameModeValue GameMode

func newGameModeValue(val GameMode, p *GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	for name, mode := range gameModes {
		if mode == GameMode(*modeVal) {
			return name
		}
	}
	return fmt.Sprint(int(*modeVal))
}

func (modeVal *gameModeValue) Set(value string) error {
	mode, err := parseGameMode(value)
	if err != nil {
		return err
	}
	*modeVal = gameModeValue(mode)
	return nil
}

func (modeVal *gameModeValue) Type() string {
	return "mode"
}

// presetValue accepts only the names of built-in presets
type presetValue string

func newPresetValue(val string, p *string) *presetValue {
	*p = val
	return (*presetValue)(p)
}

func (presetVal *presetValue) String() string {
	return string(*presetVal)
}

func (presetVal *presetValue) Set(value string) error {
	preset, found := game.LookupPreset(value)
	if !found {
		return fmt.Errorf("invalid preset %q (want one of %s)", value, presetChoices())
	}
	*presetVal = presetValue(preset.Name)
	return nil
}

func (presetVal *presetValue) Type() string {
	return "preset"
}

func presetChoices() string {
	names := make([]string, 0, len(game.Presets()))
	for _, preset := range game.Presets() {
		names = append(names, preset.Name)
	}
	return strings.Join(names, ", ")
}

var directors = map[string]struct{}{
	"random":     {},
	"constraint": {},
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (directorVal *directorValue) String() string {
	return string(*directorVal)
}

func (directorVal *directorValue) Set(value string) error {
	value = strings.ToLower(value)
	if _, isValid := directors[value]; !isValid {
		return fmt.Errorf("invalid director %q (want one of %s)", value, choices(directors))
	}
	*directorVal = directorValue(value)
	return nil
}

func (directorVal *directorValue) Type() string {
	return "director"
}

func choices[V any](named map[string]V) string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
