package simulate

import (
	"fmt"
	"os"

	"github.com/mdouchement/logger"
	"github.com/mdouchement/mppcps"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	var temperature, current float64
	var verbose bool

	cmd := &cobra.Command{
		Use:   "simulate REQUEST...",
		Short: "Send requests (e.g. `HON` or a Go quoted frame) to a dummy device and decode its responses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.LogWith(cmd.Context())

			device := mppcps.NewDummyDevice()
			device.SetLogger(log)
			device.SetEnvironment(temperature, current)
			log.Infof("Dummy device on port `%s`", device.Port())

			for _, arg := range args {
				frame, command, err := mppcps.ParseRequest(arg)
				if err != nil {
					return err
				}

				response := device.Handle(frame)
				fmt.Printf("> %s\n< %s\n", mppcps.EscapeFrame(frame), mppcps.EscapeFrame(response))

				fields, err := mppcps.Inspect(response, command, verbose)
				if err != nil {
					return err
				}
				if err = mppcps.WriteFields(os.Stdout, fields); err != nil {
					return err
				}
				fmt.Println()
			}

			return nil
		},
	}
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 25, "MPPC temperature in °C")
	cmd.Flags().Float64VarP(&current, "current", "i", 0.1, "Load current in mA")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the documentation of each field")

	return cmd
}
