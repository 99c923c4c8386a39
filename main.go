package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/logger"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/render"
	"github.com/fsnotify/fsnotify"
)

// Global variables for dependencies
var (
	appLogger  *logger.Logger
	mazeLogger *logger.Logger
	asciiOpts  render.ASCIIOptions
)

func initLoggers() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}

	mazeLogger, err = logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}
}

func initRenderOptions() {
	asciiOpts = render.ASCIIOptions{
		WallColor:    config.ColorReset,
		EntryColor:   config.BgGreen,
		ExitColor:    config.BgRed,
		PathColor:    config.ColorYellow,
		PatternColor: config.BgYellow,
	}
}

// run performs one full configuration -> generation -> solving -> rendering
// cycle.
func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	mazeLogger.Info(fmt.Sprintf("Generating %dx%d maze with %s", cfg.Width, cfg.Height, cfg.Algorithm))
	m, err := maze.Generate(cfg.Options())
	if err != nil {
		return err
	}
	mazeLogger.Info(fmt.Sprintf("Generated maze %s", m.ID))

	path, err := maze.Solve(m)
	switch {
	case errors.Is(err, maze.ErrNoPathFound):
		mazeLogger.Warning("Entrance and exit are disconnected, rendering without a path")
	case err != nil:
		return err
	default:
		mazeLogger.Info(fmt.Sprintf("Solved maze in %d steps: %s", len(path.Directions), path.Letters()))
	}

	fmt.Print(render.ASCII(m, &path, asciiOpts))

	if err := render.WriteHexFile(cfg.OutputFile, m, path); err != nil {
		return err
	}
	mazeLogger.Info(fmt.Sprintf("Maze saved to %s", cfg.OutputFile))
	return nil
}

// watch re-runs the cycle whenever the configuration file changes.
func watch(configPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		return fmt.Errorf("watching %s: %w", configPath, err)
	}
	appLogger.Info(fmt.Sprintf("Watching %s for changes", configPath))

	var last time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(configPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Editors fire bursts of events per save.
			if time.Since(last) < 100*time.Millisecond {
				continue
			}
			last = time.Now()

			appLogger.Info("Configuration changed, regenerating")
			if err := run(configPath); err != nil {
				appLogger.Error(fmt.Sprintf("Regenerating maze: %v", err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			appLogger.Error(fmt.Sprintf("Watching config: %v", err))
		}
	}
}

func main() {
	watchFlag := flag.Bool("watch", false, "regenerate the maze whenever the config file changes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-watch] <config_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	configPath := flag.Arg(0)

	initLoggers()
	initRenderOptions()

	if err := run(configPath); err != nil {
		appLogger.Error(fmt.Sprintf("%v", err))
		os.Exit(1)
	}

	if *watchFlag {
		if err := watch(configPath); err != nil {
			appLogger.Error(fmt.Sprintf("%v", err))
			os.Exit(1)
		}
	}
}
