// Package constants provides application-wide constants.
package constants

import "time"

const (
	// AppName is the application name.
	AppName = "autotyper"

	// AppDataDir is the directory name for application data.
	AppDataDir = ".config/autotyper"
)

// Configuration defaults
const (
	// ConfigFileJSON is the default JSON definitions file name.
	ConfigFileJSON = "autotyper.json"

	// ConfigFileTOML is the default TOML definitions file name.
	ConfigFileTOML = "autotyper.toml"

	// DefaultTyper is the keystroke backend used when none is selected.
	DefaultTyper = "xdotool"

	// DefaultDelay is the pause between two simulated keystrokes.
	DefaultDelay = 50 * time.Millisecond
)

const (
	// HiddenPrefix marks definitions omitted from listings. Hidden
	// entries stay expandable; the prefix only keeps helper
	// definitions out of --list output.
	HiddenPrefix = "_"
)
