package cmake

import (
	"strings"

	"golang.org/x/sys/execabs"
)

type define struct {
	key   string
	value string
}

// CMake renders a CMake configure command line. It never runs CMake itself;
// the command ends up inside generated scripts.
type CMake struct {
	sourceDir string
	generator string
	configs   string
	defines   []define
}

// New returns a CMake command configuring the project at sourceDir.
func New(sourceDir string) *CMake {
	return &CMake{sourceDir: sourceDir}
}

// Source overrides the source directory.
func (c *CMake) Source(dir string) { c.sourceDir = dir }

// Generator sets the CMake generator (e.g. "Xcode", "Ninja").
func (c *CMake) Generator(name string) { c.generator = name }

// ConfigurationTypes sets CMAKE_CONFIGURATION_TYPES (e.g. "Debug").
func (c *CMake) ConfigurationTypes(name string) { c.configs = name }

// Define adds a -D<key>=<value> definition. The value is forwarded
// verbatim. Redefining a key replaces its value but keeps its position.
func (c *CMake) Define(key, value string) {
	for i := range c.defines {
		if c.defines[i].key == key {
			c.defines[i].value = value
			return
		}
	}
	c.defines = append(c.defines, define{key: key, value: value})
}

// Args returns the command arguments, without the leading "cmake".
func (c *CMake) Args() []string {
	args := []string{`"` + c.sourceDir + `"`}
	if c.configs != "" {
		args = append(args, `-DCMAKE_CONFIGURATION_TYPES="`+c.configs+`"`)
	}
	if c.generator != "" {
		args = append(args, "-G", c.generator)
	}
	for _, d := range c.defines {
		args = append(args, "-D"+d.key+"="+d.value)
	}
	return args
}

// Command renders the full command line, tokens separated by one space.
func (c *CMake) Command() string {
	return "cmake " + strings.Join(c.Args(), " ")
}

// String implements fmt.Stringer.
func (c *CMake) String() string { return c.Command() }

// LookPath reports the path of the cmake binary, if any is on PATH.
func LookPath() (string, bool) {
	path, err := execabs.LookPath("cmake")
	if err != nil {
		return "", false
	}
	return path, true
}
