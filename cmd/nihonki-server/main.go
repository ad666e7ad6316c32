// nihonki-server publishes a directory of vocabulary lessons over HTTP.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	flags := newFlagSet()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flags)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if help, _ := flags.GetBool("help"); help {
		printHelp(flags)
		return
	}

	if showVersion, _ := flags.GetBool("version"); showVersion {
		fmt.Printf("nihonki-server - Lesson Server\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := runServer(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp(flags *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `nihonki-server serves a directory of lesson files to nihonki clients.

Routes:
  GET /api/health         status and lesson count
  GET /api/lessons        lesson summaries
  GET /api/lessons/:id    one lesson
  GET /data/:id.json      one lesson, static site layout

Usage:
  nihonki-server [flags]

Flags:
%s
Every flag can also be set in the config file or as NIHONKI_<FLAG>,
e.g. NIHONKI_DATA_DIR=/srv/lessons.
`, flags.FlagUsages())
}
