// Package main provides the CLI entrypoint for letterfest.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mfenerich/duplicate-letter-fest/internal/balloon"
	"github.com/mfenerich/duplicate-letter-fest/internal/config"
	"github.com/mfenerich/duplicate-letter-fest/internal/finder"
	"github.com/mfenerich/duplicate-letter-fest/internal/inputs"
	"github.com/mfenerich/duplicate-letter-fest/internal/logging"
	"github.com/mfenerich/duplicate-letter-fest/internal/model"
	"github.com/mfenerich/duplicate-letter-fest/internal/profile"
	"github.com/mfenerich/duplicate-letter-fest/internal/result"
)

const (
	defaultHeight = 12

	// Inputs longer than this skip the balloon animation.
	maxAnimatedLength = 30
)

var (
	festVerbose     bool
	festFast        bool
	festHeight      int
	festNoAnimation bool
	festMemProfile  bool
	festInputFile   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "letterfest",
		Short:         "Spot repeated letters with fun balloon animations",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runFestCmd,
	}

	rootCmd.Flags().BoolVarP(&festVerbose, "verbose", "v", false, "enable debug logging of character counts")
	rootCmd.Flags().BoolVar(&festFast, "fast", false, "use faster balloon animation speed")
	rootCmd.Flags().IntVar(&festHeight, "height", defaultHeight, "height (number of steps) for balloon float")
	rootCmd.Flags().BoolVar(&festNoAnimation, "no-animation", false, "skip balloon animation and only show summary")
	rootCmd.Flags().BoolVar(&festMemProfile, "mem-profile", false, "show memory usage statistics for the duplicate-finding algorithm")
	rootCmd.Flags().StringVar(&festInputFile, "input-file", "", "path to a file containing one input per line")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runFestCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "verbose", &festVerbose, fileCfg.Fest.Verbose)
	applyBoolConfig(cmd, "fast", &festFast, fileCfg.Fest.Fast)
	applyIntConfig(cmd, "height", &festHeight, fileCfg.Fest.Height)
	applyBoolConfig(cmd, "no-animation", &festNoAnimation, fileCfg.Fest.NoAnimation)
	applyBoolConfig(cmd, "mem-profile", &festMemProfile, fileCfg.Fest.MemProfile)

	cfg := model.Config{
		Verbose:    festVerbose,
		Fast:       festFast,
		Height:     festHeight,
		Animate:    !festNoAnimation,
		MemProfile: festMemProfile,
		InputFile:  festInputFile,
	}
	if cfg.Height <= 0 {
		return fmt.Errorf("--height must be > 0")
	}

	log := logging.New(os.Stderr, cfg.Verbose)
	fndr := finder.New(log)

	texts, err := collectInputs(cfg)
	if err != nil {
		return err
	}
	for _, text := range texts {
		if err := processInput(text, cfg, log, fndr); err != nil {
			return err
		}
	}
	return nil
}

func collectInputs(cfg model.Config) ([]string, error) {
	if cfg.InputFile != "" {
		return inputs.ReadLines(cfg.InputFile)
	}
	var (
		text string
		err  error
	)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		var submitted bool
		text, submitted, err = inputs.Prompt()
		if err != nil {
			return nil, err
		}
		if !submitted {
			return nil, nil
		}
	} else {
		text, err = inputs.ReadLine(os.Stdin)
		if err != nil {
			return nil, err
		}
	}
	if text == "" {
		fmt.Println("No input provided. Exiting.")
		return nil, nil
	}
	return []string{text}, nil
}

func processInput(text string, cfg model.Config, log zerolog.Logger, fndr *finder.Finder) error {
	var prof *profile.MemoryProfiler
	if cfg.MemProfile {
		prof = &profile.MemoryProfiler{}
		if err := prof.Start(); err != nil {
			return fmt.Errorf("failed to start memory profiler: %w", err)
		}
		defer prof.Release()
	}

	start := time.Now()
	duplicates, err := fndr.FindDuplicates(text)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("failed to analyze input: %w", err)
	}

	var mem *model.MemoryStats
	if prof != nil {
		if stats, ok := prof.Stop(); ok {
			mem = &stats
		}
	}

	res := result.New(text, duplicates, elapsed, mem)
	return present(res, cfg, log)
}

func present(res result.Result, cfg model.Config, log zerolog.Logger) error {
	duplicates := res.Duplicates()
	animate := cfg.Animate && len(duplicates) > 0

	length := utf8.RuneCountInString(res.InputText())
	if animate && length > maxAnimatedLength {
		log.Warn().Msgf("input length %d > %d, skipping balloon animation", length, maxAnimatedLength)
		animate = false
	}
	if animate && !animationFitsTerminal(len(duplicates), len(res.SummaryLines())) {
		log.Warn().Msg("terminal too small for balloon animation, showing summary only")
		animate = false
	}

	if animate {
		if err := balloon.Animate(res, cfg.Height, cfg.FloatTime()); err != nil {
			return err
		}
	} else if len(duplicates) == 0 {
		fmt.Println("No duplicate letters found! Nice and unique.")
	}

	return balloon.PrintSummary(os.Stdout, res)
}

func animationFitsTerminal(balloons, summaryLines int) bool {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return false
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return false
	}
	return balloon.Fits(width, height, balloons, summaryLines)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# letterfest configuration
# Uncomment a value to enable it. CLI flags override config values.

[fest]
# verbose = false        # Debug logging of character counts
# fast = false           # Faster balloon animation speed
# height = %d            # Height (number of steps) for balloon float
# no-animation = false   # Skip balloon animation and only show summary
# mem-profile = false    # Memory usage statistics for the algorithm
`,
		defaultHeight,
	)
}
