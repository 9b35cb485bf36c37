package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runeclass"
)

func (a *app) lengthCmd() *cobra.Command {
	var (
		escape         bool
		marker         string
		escapeEncoding string
		end            string
		unescape       bool
	)

	cmd := &cobra.Command{
		Use:   "length TEXT",
		Short: "Count the characters of a subject",
		Long: `Count the characters of a subject in the selected encoding.

With --escape, every occurrence of the escape marker followed by a code point
counts as one character, so that "caf\u00e9" has a length of 4. Escaped
combining marks count zero. Marker, escape encoding and end default to the
escape section of the configuration.`,
		Example: `  runeclass length SixValue -e ascii
  runeclass length 'HealthyYUM2345N' -e ascii --escape --marker YUM
  runeclass length 'caf&#233;' --escape --marker '&#' --escape-encoding decimal --end ';' --unescape`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.subject(args[0])
			if err != nil {
				return err
			}

			if !escape && !unescape {
				n, err := runeclass.Length(s, a.enc)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, n)
				return nil
			}

			// Escape settings: flags over config
			esc := a.cfg.Escape
			flags := cmd.Flags()
			if flags.Changed("marker") {
				esc.SetMarker(marker)
			}
			if flags.Changed("escape-encoding") {
				esc.Encoding = escapeEncoding
			}
			if flags.Changed("end") {
				esc.SetEnd(end)
			}
			escEnc, err := esc.EscapeEncoding()
			if err != nil {
				return err
			}

			a.logger.Debug("Counting with escapes",
				"marker", esc.MarkerValue(),
				"escape_encoding", escEnc,
				"end", esc.EndValue())

			if unescape {
				u, err := runeclass.Unescape(s, a.enc, esc.MarkerValue(), escEnc, esc.EndValue())
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, u)
				return nil
			}

			n, err := runeclass.LengthEscaped(s, a.enc, esc.MarkerValue(), escEnc, esc.EndValue())
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&escape, "escape", false, "Count escape sequences as one character")
	cmd.Flags().StringVar(&marker, "marker", "", "Escape marker (default from config)")
	cmd.Flags().StringVar(&escapeEncoding, "escape-encoding", "", "How escaped code points are written (hex, decimal)")
	cmd.Flags().StringVar(&end, "end", "", "Optional string closing an escape")
	cmd.Flags().BoolVar(&unescape, "unescape", false, "Print the subject with escapes resolved instead of its length")

	return cmd
}
