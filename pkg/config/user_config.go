package config

import (
	"os"

	"github.com/KnightChaser/llce/pkg/snapshot"
)

// UserConfig holds all of the user-configurable options
type UserConfig struct {
	// Gui is for configuring visual things like colors and the language of
	// the messages we print
	Gui GuiConfig `yaml:"gui,omitempty"`

	// Scan tunes the memory capture engine and how much of a result set we
	// print before truncating
	Scan ScanConfig `yaml:"scan,omitempty"`

	// OS determines which external programs we shell out to
	OS OSConfig `yaml:"oS,omitempty"`
}

// GuiConfig is for configuring visual things
type GuiConfig struct {
	// Language determines which translation set we use. 'auto' detects it
	// from the environment
	Language string `yaml:"language,omitempty"`

	// Theme determines the colors of our styled output
	Theme ThemeConfig `yaml:"theme,omitempty"`
}

// ThemeConfig maps the output styles onto color names understood by the
// renderer (green, yellow, red, etc.)
type ThemeConfig struct {
	SuccessColor string `yaml:"successColor,omitempty"`
	WarningColor string `yaml:"warningColor,omitempty"`
	ErrorColor   string `yaml:"errorColor,omitempty"`
}

// ScanConfig tunes the snapshot engine
type ScanConfig struct {
	// ChunkSize is the number of bytes read from the target per
	// cross-process read. Large regions are always read in chunks because a
	// single huge read fails atomically even when a subset is readable
	ChunkSize int `yaml:"chunkSize,omitempty"`

	// Workers caps the number of capture goroutines. 0 means one per
	// online CPU
	Workers int `yaml:"workers,omitempty"`

	// MaxDisplayedChanges is how many change records 'detect' prints before
	// truncating (use 'detect page' to see everything)
	MaxDisplayedChanges int `yaml:"maxDisplayedChanges,omitempty"`

	// MaxDisplayedResults is how many matches 'search' prints before
	// truncating
	MaxDisplayedResults int `yaml:"maxDisplayedResults,omitempty"`
}

// OSConfig contains config on the level of the os
type OSConfig struct {
	// Pager is the command we pipe long output through (e.g. 'less -R')
	Pager string `yaml:"pager,omitempty"`
}

// GetDefaultConfig returns the application default configuration NOTE (to
// contributors, not users): do not default a boolean to true, because false
// is the boolean zero value and this will be ignored when parsing the user's
// config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Gui: GuiConfig{
			Language: "auto",
			Theme: ThemeConfig{
				SuccessColor: "green",
				WarningColor: "yellow",
				ErrorColor:   "red",
			},
		},
		Scan: ScanConfig{
			ChunkSize:           snapshot.DefaultChunkSize,
			Workers:             0,
			MaxDisplayedChanges: 20,
			MaxDisplayedResults: 20,
		},
		OS: OSConfig{
			Pager: defaultPager(),
		},
	}
}

func defaultPager() string {
	if pager := os.Getenv("PAGER"); pager != "" {
		return pager
	}
	return "less"
}
