// Package main provides the runeclass binary entry point.
// runeclass classifies text from the command line and runs classification
// fixtures.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "runeclass"
)

// errFailed signals a non-zero exit whose cause has already been printed.
var errFailed = errors.New("fixtures failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func rootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Classify characters across encodings and languages",
		Long: `runeclass answers classification questions about text: is it a number,
is it made of letters of a given alphabet, which case are they, is it
punctuation, is it valid in its encoding and how many characters does it hold.

Subjects are given as UTF-8 and converted to the selected encoding first.

Configuration is read from ~/.config/runeclass/config.yaml and from the
nearest runeclass.yaml above the working directory. Flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML), replaces the project config lookup")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&a.encoding, "encoding", "e", "", "Subject encoding (utf8, ascii, iso-8859-1)")
	cmd.PersistentFlags().StringVarP(&a.language, "language", "l", "", "Alphabet language (english, spanish, french)")

	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.AddCommand(
		a.classifyCmd(),
		a.lengthCmd(),
		a.checkCmd(),
		a.configCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			// No config needed.
			PersistentPreRun: func(cmd *cobra.Command, args []string) {},
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(out, "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}
