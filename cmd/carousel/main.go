package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/carousel/cmd/carousel/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = commands.Run(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("carousel version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`carousel - terminal slide carousel

Usage: carousel <command> [options]

Commands:
  run      Show the carousel in the terminal
  init     Write a default carousel.toml
  version  Print version information
  help     Show this help message

Examples:
  carousel init                       Create carousel.toml in the current directory
  carousel run                        Run with ./carousel.toml (defaults if missing)
  carousel run --config slides.toml   Run with another config file
  carousel run --no-watch             Disable reloading when the file changes

Configuration:
  Slides, timings and gesture thresholds live in carousel.toml. While the
  carousel runs, edits to the file are applied on save; press r to reload
  by hand.`)
}
