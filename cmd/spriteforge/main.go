package main

import (
	"fmt"
	"os"

	"github.com/spriteforge/spriteforge/cmd/spriteforge/durations"
	"github.com/spriteforge/spriteforge/cmd/spriteforge/groups"
	"github.com/spriteforge/spriteforge/cmd/spriteforge/optimize"
	"github.com/spriteforge/spriteforge/cmd/spriteforge/version"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "optimize":
		optimize.Run(os.Args[2:])
	case "durations":
		durations.Run(os.Args[2:])
	case "groups":
		groups.Run(os.Args[2:])
	case "version":
		version.Run()
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`spriteforge - Sprite store optimizer

Usage:
  spriteforge <command> [options]

Commands:
  optimize   Deduplicate and compact a project's sprite store
  durations  Normalize frame durations across a project's things
  groups     Split or merge outfit frame groups
  version    Print version information
  help       Show this help message

Run 'spriteforge <command> --help' for more information on a command.`)
}
