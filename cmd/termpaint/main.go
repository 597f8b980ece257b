package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termpaint/app"
	"github.com/lixenwraith/termpaint/audio"
	"github.com/lixenwraith/termpaint/config"
	"github.com/lixenwraith/termpaint/input"
	"github.com/lixenwraith/termpaint/surface"
)

var version = "dev"

// options holds command-line flags
type options struct {
	Debug      bool
	ConfigPath string
	Columns    int
	Rows       int
	Sound      bool
}

func main() {
	var opts options
	rootCmd := newRootCommand(&opts)

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the termpaint command with its flags bound to opts
func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termpaint [flags]",
		Short: "Character-grid drawing editor for the terminal",
		Long: `termpaint draws with characters on a fixed-size canvas using the mouse.

Keys: q quit, 1-9 select tool, [ ] cycle brush, y copy canvas, C clear canvas.`,
		Example: `  # Default 60x20 canvas
  termpaint

  # Larger canvas with sound and a debug log in ./logs
  termpaint --columns 120 --rows 40 --sound --debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, *opts)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "Write debug log to logs/termpaint.log")
	rootCmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/termpaint/config.toml)")
	rootCmd.Flags().IntVar(&opts.Columns, "columns", 0, "Canvas width in cells")
	rootCmd.Flags().IntVar(&opts.Rows, "rows", 0, "Canvas height in cells")
	rootCmd.Flags().BoolVar(&opts.Sound, "sound", false, "Enable feedback sounds")
	return rootCmd
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, string, error) {
	path := opts.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("columns") {
		cfg.Canvas.Columns = opts.Columns
	}
	if flags.Changed("rows") {
		cfg.Canvas.Rows = opts.Rows
	}
	if flags.Changed("sound") {
		cfg.Audio.Enabled = opts.Sound
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", errors.Wrap(err, "flags")
	}
	return cfg, path, nil
}

func run(cmd *cobra.Command, opts options) error {
	if logFile := setupLogging(opts.Debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, path, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	slog.Debug("starting", "version", version, "config", path,
		"columns", cfg.Canvas.Columns, "rows", cfg.Canvas.Rows)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	s := surface.NewTcell(screen)
	if err := s.Open(); err != nil {
		return err
	}

	// Terminal is restored on every exit path; a panic is printed after restore
	defer func() {
		if r := recover(); r != nil {
			s.Close()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTERMPAINT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
		s.Close()
	}()

	reader := input.NewReader(s.Screen())

	var editorOpts []app.Option
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			slog.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer sm.Cleanup()
		}
		editorOpts = append(editorOpts, app.WithSound(sm))
	}

	if w := watchConfig(path, reader); w != nil {
		defer w.Close()
	}

	editor, err := app.New(s, reader, cfg, editorOpts...)
	if err != nil {
		return err
	}
	return editor.Run()
}

// watchConfig forwards config file changes into the event loop
// Returns nil when the config directory does not exist
func watchConfig(path string, reader *input.Reader) *config.Watcher {
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		slog.Debug("config directory missing, live reload disabled", "path", path)
		return nil
	}

	w, err := config.Watch(path, func(cfg *config.Config, err error) {
		var data any = cfg
		if err != nil {
			data = err
		}
		if perr := reader.Post(data); perr != nil {
			slog.Warn("config reload dropped", "error", perr)
		}
	})
	if err != nil {
		slog.Warn("config watch failed", "error", err)
		return nil
	}
	return w
}
