package commands

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agiangrant/carousel/internal/tui"
	"github.com/agiangrant/carousel/loop"
)

// Run implements the 'carousel run' command
func Run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", DefaultConfigFile, "Config file")
	logPath := fs.String("log", "carousel.log", "Log file")
	noWatch := fs.Bool("no-watch", false, "Do not reload the config file on change")
	fs.Parse(args)

	config, err := tui.LoadFileConfig(*configPath)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	logger := log.New(os.Stderr, "", log.LstdFlags)
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		logger.SetOutput(logFile)
		log.SetOutput(logFile)
	}

	// Clock callbacks are posted onto the program's event loop. Nothing is
	// scheduled before the program runs Init.
	var program *tea.Program
	clock := loop.NewRealtime(func(fn func()) {
		program.Send(tui.Callback(fn))
	}, config.FPS)

	model, err := tui.NewModel(config, clock, logger)
	if err != nil {
		return err
	}
	model.SetConfigPath(*configPath)

	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if !*noWatch {
		watcher, err := tui.Watch(*configPath, func(cfg tui.FileConfig, err error) {
			program.Send(tui.ConfigReloaded(cfg, err))
		})
		if err != nil {
			logger.Printf("config watcher disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	logger.Printf("carousel[%s] starting with %d slides", model.Carousel().ID(), len(config.Slides))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("carousel: %w", err)
	}
	return nil
}
