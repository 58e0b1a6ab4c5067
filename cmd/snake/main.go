// snake is a terminal Snake game.
//
// Usage:
//
//	snake [--more-hazards]
//
// Steer with WASD or the arrow keys, collect food (+) and avoid hazards (@).
// --more-hazards raises the number of hazards on the board. Flag names are
// case-insensitive; every other flag and argument, --help included, is
// ignored.
//
// The process always exits with status 1.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - collect food, avoid hazards",
	Long: `Snake is a terminal game. The snake leaves a permanent trail, so every
move makes the board tighter.

Controls:
  W/A/S/D, arrows - Steer
  P               - Start, play again
  Q               - Quit after game over
  Ctrl+C          - Abort

Examples:
  snake
  snake --more-hazards`,
	Args: cobra.ArbitraryArgs,
	// Flags are parsed by parseOptions so that help and unknown flags
	// never keep the game from starting.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := parseOptions(args)
		if err != nil {
			return err
		}
		return runGame(cmd, opts)
	},
}

// options are the command-line settings.
type options struct {
	moreHazards bool
}

// parseOptions reads options from the raw arguments.
func parseOptions(args []string) (options, error) {
	var opts options

	flags := pflag.NewFlagSet("snake", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SetNormalizeFunc(lowerCaseFlags)
	flags.ParseErrorsAllowlist.UnknownFlags = true

	flags.BoolVar(&opts.moreHazards, "more-hazards", false, "Scatter many more hazards on the board")

	// Declared so pflag doesn't answer it with usage and ErrHelp.
	flags.BoolP("help", "h", false, "")
	if err := flags.MarkHidden("help"); err != nil {
		return opts, err
	}

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// lowerCaseFlags makes flag names case-insensitive.
func lowerCaseFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ToLower(name))
}
