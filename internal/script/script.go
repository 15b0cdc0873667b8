package script

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/donerkebap13/decsgen/internal/platform"
	"github.com/donerkebap13/decsgen/x/cmake"
)

const (
	// ScriptsDir is the folder, relative to the root, that receives scripts.
	ScriptsDir = "generate_solution_scripts"
	// ProjectsDir is the folder, relative to the root, CMake generates into.
	ProjectsDir = "projects"
	// SourceDirName is the default CMake source folder under the root.
	SourceDirName = "DonerECS"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Options controls what the generated scripts pass to CMake.
type Options struct {
	Root          string // folder holding generate_solution_scripts and projects
	SourceDir     string // CMake source dir; defaults to <Root>/DonerECS
	GenerateTests bool
	MaxEntities   string
	MaxTags       string
	Xcode         bool
}

func (o *Options) sourceDir() string {
	if o.SourceDir != "" {
		return o.SourceDir
	}
	return filepath.Join(o.Root, SourceDirName)
}

// Phase is a kind of generated script.
type Phase int

const (
	// Generate wipes the project folder and configures from scratch.
	Generate Phase = iota
	// Update configures into the existing project folder.
	Update
)

// Phases lists every phase in output order.
var Phases = []Phase{Generate, Update}

func (p Phase) String() string {
	if p == Update {
		return "update"
	}
	return "generate"
}

// step is the numbered suffix used in script names.
func (p Phase) step() string {
	if p == Update {
		return "02-update"
	}
	return "01-generate"
}

// File is a rendered script ready to be written.
type File struct {
	Path     string
	Platform platform.Platform
	Content  []byte
	Mode     fs.FileMode
}

// CMakeCall returns the CMake command line for one platform and
// configuration.
func CMakeCall(opts *Options, p platform.Platform, c Configuration) string {
	cm := cmake.New(opts.sourceDir())
	cm.ConfigurationTypes(string(c))
	if p == platform.Darwin && opts.Xcode {
		cm.Generator("Xcode")
	}
	if opts.GenerateTests {
		cm.Define("DECS_ENABLE_TESTS", "1")
	}
	cm.Define("MAX_ENTITIES", opts.MaxEntities)
	cm.Define("MAX_TAGS", opts.MaxTags)
	return cm.Command()
}

// ScriptDir returns the folder scripts for p are written to.
func ScriptDir(root string, p platform.Platform) string {
	return filepath.Join(root, ScriptsDir, p.String())
}

// ProjectDir returns the folder the scripts of cell configure into.
func ProjectDir(root string, cell Cell) string {
	return filepath.Join(root, ProjectsDir, cell.Key())
}

// ScriptName returns the file name of the script for c and phase.
func ScriptName(p platform.Platform, c Configuration, phase Phase) string {
	return c.Lower() + "-" + phase.step() + "." + p.ScriptExt()
}

// Plan renders every script for platforms without touching the disk.
// Files come out grouped by platform: all generate scripts first, then the
// update ones, each in configuration order.
func Plan(opts *Options, platforms []platform.Platform) ([]File, error) {
	m := Matrix{Platforms: platforms, Configurations: Configurations}
	calls := make(map[Cell]string, m.CombinationCount())
	for _, cell := range m.Combinations() {
		calls[cell] = CMakeCall(opts, cell.Platform, cell.Configuration)
	}

	files := make([]File, 0, m.CombinationCount()*len(Phases))
	for _, p := range platforms {
		dir := ScriptDir(opts.Root, p)
		for _, phase := range Phases {
			for _, c := range m.Configurations {
				cell := Cell{Platform: p, Configuration: c}
				content, err := render(p, phase, ProjectDir(opts.Root, cell), calls[cell])
				if err != nil {
					return nil, fmt.Errorf("failed to render %s script for %s: %w", phase, cell.Key(), err)
				}
				mode := fs.FileMode(0o755)
				if p.IsWindows() {
					mode = 0o644
				}
				files = append(files, File{
					Path:     filepath.Join(dir, ScriptName(p, c, phase)),
					Platform: p,
					Content:  content,
					Mode:     mode,
				})
			}
		}
	}
	return files, nil
}

func render(p platform.Platform, phase Phase, projectDir, cmakeCall string) ([]byte, error) {
	name := phase.String() + "." + p.ScriptExt() + ".tmpl"
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, name, struct {
		ProjectDir string
		CMakeCall  string
	}{projectDir, cmakeCall})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores files on disk, creating parent folders as needed and
// overwriting whatever is already there.
func Write(files []File) error {
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
			return fmt.Errorf("failed to create script dir: %w", err)
		}
		if err := os.WriteFile(f.Path, f.Content, f.Mode); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
		// WriteFile keeps the mode of a file it overwrites.
		if err := os.Chmod(f.Path, f.Mode); err != nil {
			return fmt.Errorf("failed to chmod %s: %w", f.Path, err)
		}
	}
	return nil
}
