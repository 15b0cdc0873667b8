package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/donerkebap13/decsgen/internal/config"
	"github.com/donerkebap13/decsgen/internal/env"
	"github.com/donerkebap13/decsgen/internal/platform"
	"github.com/donerkebap13/decsgen/internal/script"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = newRootCmd(runtime.GOOS, nil)

// generator holds the state shared by the root command and its children.
type generator struct {
	goos   string
	logger *zap.Logger

	generateTests bool
	maxEntities   string
	maxTags       string
	allPlatforms  bool
	xcode         bool
	root          string
	configPath    string
	verbose       bool

	opts script.Options
}

func newRootCmd(goos string, logger *zap.Logger) *cobra.Command {
	g := &generator{goos: goos, logger: logger}
	cmd := &cobra.Command{
		Use:   "decsgen",
		Short: "decsgen writes CMake solution scripts for DonerECS",
		Long: `decsgen writes shell (or batch, on Windows) scripts under generate_solution_scripts/
that create a project folder and run CMake on DonerECS inside it, once per
build configuration.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: g.setup,
		PersistentPostRun: g.sync,
		RunE:              g.runGenerate,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&g.generateTests, "generate-tests", false, "Generate Tests project")
	flags.StringVar(&g.maxEntities, "max-entities", config.DefaultMaxEntities, "Max number of entities. Maximum allowed is 8192")
	flags.StringVar(&g.maxTags, "max-tags", config.DefaultMaxTags, "Max number of registrable tags. Rounded to highest power of two")
	flags.BoolVar(&g.allPlatforms, "all-platforms", false, "Generate scripts for all supported platforms")
	flags.BoolVar(&g.xcode, "xcode", false, "Generate OSX projects using XCode")
	flags.StringVar(&g.root, "root", "", "Folder scripts and projects are placed under (default is the working directory)")
	flags.StringVar(&g.configPath, "config", "", "Config file (default is <root>/"+config.FileName+")")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.Flags().Bool("dry-run", false, "Print the scripts that would be written without writing them")

	cmd.AddCommand(newListCmd(g))
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if code := execute(rootCmd); code != 0 {
		os.Exit(code)
	}
}

func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	stderr := cmd.ErrOrStderr()
	if errors.Is(err, platform.ErrUnsupported) {
		printBanner(stderr, fmt.Sprintf("You're working under an unsupported OS! Valid OS are %s", platform.Names(platform.All)))
		return 1
	}
	color.New(color.FgRed).Fprint(stderr, "(✗) ")
	fmt.Fprintln(stderr, err)
	return 1
}

var bannerRule = strings.Repeat("!", 79)

func printBanner(w io.Writer, msg string) {
	red := color.New(color.FgRed)
	fmt.Fprintln(w)
	red.Fprintln(w, bannerRule)
	fmt.Fprintln(w, msg)
	red.Fprintln(w, bannerRule)
	fmt.Fprintln(w)
}

// setup resolves the root folder, merges the config file under the flags
// and builds the logger.
func (g *generator) setup(cmd *cobra.Command, _ []string) error {
	root, err := env.RootDir(g.root)
	if err != nil {
		return fmt.Errorf("failed to resolve root dir: %w", err)
	}

	cfgPath, required := g.configPath, g.configPath != ""
	if !required {
		cfgPath = config.DefaultPath(root)
	}
	cfg, err := config.Load(cfgPath, required)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("generate-tests") {
		g.generateTests = config.Bool(cfg.GenerateTests, g.generateTests)
	}
	if !flags.Changed("max-entities") {
		g.maxEntities = config.String(cfg.MaxEntities, g.maxEntities)
	}
	if !flags.Changed("max-tags") {
		g.maxTags = config.String(cfg.MaxTags, g.maxTags)
	}
	if !flags.Changed("all-platforms") {
		g.allPlatforms = config.Bool(cfg.AllPlatforms, g.allPlatforms)
	}
	if !flags.Changed("xcode") {
		g.xcode = config.Bool(cfg.Xcode, g.xcode)
	}

	g.opts = script.Options{
		Root:          root,
		SourceDir:     config.String(cfg.SourceDir, ""),
		GenerateTests: g.generateTests,
		MaxEntities:   g.maxEntities,
		MaxTags:       g.maxTags,
		Xcode:         g.xcode,
	}

	if g.logger == nil {
		g.logger, err = newLogger(g.verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	g.logger.Debug("Options resolved",
		zap.String("root", root),
		zap.String("config", cfgPath),
		zap.Bool("generate-tests", g.generateTests),
		zap.String("max-entities", g.maxEntities),
		zap.String("max-tags", g.maxTags),
		zap.Bool("all-platforms", g.allPlatforms),
		zap.Bool("xcode", g.xcode))
	return nil
}

func (g *generator) sync(*cobra.Command, []string) {
	if g.logger != nil {
		_ = g.logger.Sync()
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
