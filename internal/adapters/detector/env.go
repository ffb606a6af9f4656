// Package detector picks the report format from the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// FormatAuto defers the choice of report format to DetectFormat.
const FormatAuto = "auto"

// DetectFormat returns "text" when stdout is an interactive terminal outside CI
// and "json" otherwise.
func DetectFormat() string {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return "json"
	}
	return "text"
}

// ResolveFormat applies the user's --output flag to the detected format.
func ResolveFormat(detected, userFlag string) string {
	switch userFlag {
	case FormatAuto, "":
		return detected
	default:
		return userFlag
	}
}
