package script

import "github.com/donerkebap13/decsgen/internal/platform"

// Configuration is a CMake build flavor.
type Configuration string

const (
	Debug   Configuration = "Debug"
	Release Configuration = "Release"
)

// Configurations lists the flavors scripts are generated for, in order.
var Configurations = []Configuration{Debug, Release}

// Lower returns the lowercase name used in file and folder names.
func (c Configuration) Lower() string {
	switch c {
	case Debug:
		return "debug"
	case Release:
		return "release"
	}
	return string(c)
}

// Cell is one entry of a Matrix.
type Cell struct {
	Platform      platform.Platform
	Configuration Configuration
}

// Key returns "<platform>-<configuration>", the project folder name.
func (c Cell) Key() string {
	return c.Platform.String() + "-" + c.Configuration.Lower()
}

// Matrix is the set of platform and configuration pairs to generate for.
type Matrix struct {
	Platforms      []platform.Platform
	Configurations []Configuration
}

// Combinations returns the cartesian product of the matrix, platforms in
// the outer loop and configurations in the inner one.
func (m *Matrix) Combinations() []Cell {
	if len(m.Platforms) == 0 || len(m.Configurations) == 0 {
		return nil
	}
	result := make([]Cell, 0, m.CombinationCount())
	for _, p := range m.Platforms {
		for _, c := range m.Configurations {
			result = append(result, Cell{Platform: p, Configuration: c})
		}
	}
	return result
}

// CombinationCount returns the number of cells Combinations yields.
func (m *Matrix) CombinationCount() int {
	return len(m.Platforms) * len(m.Configurations)
}
