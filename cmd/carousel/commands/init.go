package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/carousel/internal/tui"
)

// DefaultConfigFile is the config file run and init use by default.
const DefaultConfigFile = "carousel.toml"

// Init implements the 'carousel init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("config", DefaultConfigFile, "Config file to create")
	force := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(args)

	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *path)
	}

	if err := tui.SaveFileConfig(*path, tui.DefaultFileConfig()); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", *path)
	fmt.Println("\nRun 'carousel run' to start.")
	return nil
}
