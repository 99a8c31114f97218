package inspect

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdouchement/mppcps"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	var simulate, verbose bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Start the TUI frame inspector",
		Long: `Start the TUI frame inspector.
Paste response frames (Go quoted) to decode them.
With --simulate, type requests (e.g. "HON", "HBV 563B") answered by a dummy device.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			var device *mppcps.DummyDevice
			if simulate {
				device = mppcps.NewDummyDevice()
			}

			tui := tea.NewProgram(newTUI(device, verbose), tea.WithAltScreen())
			_, err := tui.Run()
			return err
		},
	}
	cmd.Flags().BoolVarP(&simulate, "simulate", "s", false, "Send the typed requests to a dummy device")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the documentation of each field")

	return cmd
}
