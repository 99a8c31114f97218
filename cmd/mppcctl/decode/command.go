package decode

import (
	"fmt"
	"os"
	"strings"

	"github.com/mdouchement/logger"
	"github.com/mdouchement/mppcps"
	"github.com/mdouchement/mppcps/c11204"
	"github.com/spf13/cobra"
)

func Commands() []*cobra.Command {
	return []*cobra.Command{decodeCommand(), statusCommand()}
}

func decodeCommand() *cobra.Command {
	var command string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "decode FRAME",
		Short: "Decode a response frame (Go quoted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.LogWith(cmd.Context())

			frame, err := mppcps.UnescapeFrame(args[0])
			if err != nil {
				return fmt.Errorf("frame: %w", err)
			}

			if _, err := c11204.Split(frame); err == nil {
				c11204.Verify(log, frame) // Mismatch is reported, decoding goes on.
			}

			fields, err := mppcps.Inspect(frame, c11204.Command(strings.ToUpper(command)), verbose)
			if err != nil {
				return err
			}

			return mppcps.WriteFields(os.Stdout, fields)
		},
	}
	cmd.Flags().StringVarP(&command, "command", "", "", "Command the frame responds to (default guessed from the frame)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the documentation of each field")

	return cmd
}

func statusCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "status DIGITS",
		Short: "Describe a 4 digits status word",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := c11204.ParseStatus(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}

			fmt.Println(s.Binary())
			return mppcps.WriteFields(os.Stdout, mppcps.StatusFields(s, verbose))
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the documentation of each bit")

	return cmd
}
