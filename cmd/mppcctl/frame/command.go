package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mdouchement/logger"
	"github.com/mdouchement/mppcps"
	"github.com/mdouchement/mppcps/c11204"
	"github.com/spf13/cobra"
)

var ErrChecksumMismatch = errors.New("checksum mismatch")

func Commands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "checksum COMMAND [PARAM]",
			Short: "Compute the checksum of a command and its parameter",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(_ *cobra.Command, args []string) error {
				command, param, err := parse(args)
				if err != nil {
					return err
				}

				fmt.Println(strings.ToUpper(c11204.Checksum(command, param)))
				return nil
			},
		},
		{
			Use:   "frame COMMAND [PARAM]",
			Short: "Build a ready to send frame (Go quoted)",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(_ *cobra.Command, args []string) error {
				command, param, err := parse(args)
				if err != nil {
					return err
				}

				fmt.Println(mppcps.EscapeFrame(c11204.Frame(command, param)))
				return nil
			},
		},
		{
			Use:   "verify FRAME",
			Short: "Verify the checksum of a received frame (Go quoted)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				frame, err := mppcps.UnescapeFrame(args[0])
				if err != nil {
					return fmt.Errorf("frame: %w", err)
				}

				if !c11204.Verify(logger.LogWith(cmd.Context()), frame) {
					return ErrChecksumMismatch
				}

				fmt.Println("ok")
				return nil
			},
		},
	}
}

func parse(args []string) (c11204.Command, string, error) {
	command := c11204.Command(strings.ToUpper(args[0]))
	if !command.Known() {
		return "", "", fmt.Errorf("%s: %w", args[0], mppcps.ErrUnknownCommand)
	}

	var param string
	if len(args) == 2 {
		param = strings.ToUpper(args[1])
	}

	return command, param, nil
}
