// Command keypadchain computes how many presses a human needs to type codes
// on a numeric keypad through a chain of robot-operated directional keypads.
//
//	keypadchain solve -d 25 -i codes.txt
//	keypadchain expand -d 2 029A
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options are the command line flags, for go-flags to parse into.
type Options struct {
	Config   string `short:"c" long:"config" description:"YAML configuration file" value-name:"<file>"`
	LogLevel string `long:"log-level" description:"override the configured log level" value-name:"<level>"`
	LogFile  string `long:"log-file" description:"also write JSON logs to this file, rotated by size" value-name:"<file>"`

	Solve   SolveCommand   `command:"solve" description:"print the weighted press total of a batch of codes"`
	Expand  ExpandCommand  `command:"expand" description:"print one minimal press sequence for a code"`
	Version VersionCommand `command:"version" description:"print the program version"`
}

var opts Options

func main() {
	// stderr console logger until a command installs the configured one
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = false

	_, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "exited with error:\n > %s\n", err.Error())
		os.Exit(1)
	}
}
