package platform

import (
	"errors"
	"fmt"
	"strings"
)

// Platform identifies an operating system scripts can be generated for.
type Platform string

const (
	Win32  Platform = "win32"
	Darwin Platform = "darwin"
	Linux  Platform = "linux"
)

// All lists every supported platform in generation order.
var All = []Platform{Win32, Darwin, Linux}

// ErrUnsupported is returned when the running OS is not one of All.
var ErrUnsupported = errors.New("unsupported platform")

// String returns the platform identifier used in output paths.
func (p Platform) String() string { return string(p) }

// IsWindows reports whether scripts for p use batch syntax.
func (p Platform) IsWindows() bool { return p == Win32 }

// ScriptExt returns the file extension of scripts generated for p.
func (p Platform) ScriptExt() string {
	if p.IsWindows() {
		return "bat"
	}
	return "sh"
}

// Parse returns the platform named by name.
func Parse(name string) (Platform, error) {
	for _, p := range All {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q, valid platforms are %s", name, Names(All))
}

// FromGOOS maps a runtime.GOOS value to its platform.
func FromGOOS(goos string) (Platform, error) {
	switch goos {
	case "windows":
		return Win32, nil
	case "darwin":
		return Darwin, nil
	case "linux":
		return Linux, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupported, goos)
}

// Select returns the platforms to generate for. With all set it returns
// every supported platform, otherwise only the one goos maps to.
func Select(all bool, goos string) ([]Platform, error) {
	if all {
		return append([]Platform(nil), All...), nil
	}
	p, err := FromGOOS(goos)
	if err != nil {
		return nil, err
	}
	return []Platform{p}, nil
}

// Names returns the identifiers of ps, formatted for messages.
func Names(ps []Platform) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = "'" + string(p) + "'"
	}
	return "[" + strings.Join(names, ", ") + "]"
}
