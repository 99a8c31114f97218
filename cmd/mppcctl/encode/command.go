package encode

import (
	"fmt"
	"os"

	"github.com/mdouchement/mppcps"
	"github.com/mdouchement/mppcps/c11204"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build the parameters of the setting commands",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(hstCommand())
	cmd.AddCommand(hscCommand())

	return cmd
}

func hstCommand() *cobra.Command {
	tc := c11204.DefaultTemperatureCorrection()

	cmd := &cobra.Command{
		Use:   "hst",
		Short: "Build the temperature correction parameter (HST)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg, ok := mppcps.ConfigWith(cmd.Context()); ok {
				tc = cfg.TemperatureCorrection
			}

			param, err := tc.Param()
			if err != nil {
				return err
			}

			if err = mppcps.WriteFields(os.Stdout, mppcps.TemperatureCorrectionFields(tc)); err != nil {
				return err
			}
			return output(c11204.CommandSetTemperatureCorrection, param)
		},
	}
	cmd.Flags().Float64VarP(&tc.DTPrime1, "dtp1", "", tc.DTPrime1, "High temperature side DT'1 in mV/°C²")
	cmd.Flags().Float64VarP(&tc.DTPrime2, "dtp2", "", tc.DTPrime2, "Low temperature side DT'2 in mV/°C²")
	cmd.Flags().Float64VarP(&tc.DT1, "dt1", "", tc.DT1, "High temperature side DT1 in mV/°C")
	cmd.Flags().Float64VarP(&tc.DT2, "dt2", "", tc.DT2, "Low temperature side DT2 in mV/°C")
	cmd.Flags().Float64VarP(&tc.Vb, "vb", "", tc.Vb, "Reference voltage Vb in V")
	cmd.Flags().Float64VarP(&tc.Tb, "tb", "", tc.Tb, "Reference temperature Tb in °C")

	return cmd
}

func hscCommand() *cobra.Command {
	var ps mppcps.PowerSupply

	cmd := &cobra.Command{
		Use:   "hsc",
		Short: "Build the power supply function parameter (HSC)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg, ok := mppcps.ConfigWith(cmd.Context()); ok {
				ps = cfg.PowerSupply
			}

			param, err := c11204.HSCParam(ps.OvercurrentProtection, ps.OutputVoltageControl)
			if err != nil {
				return err
			}

			return output(c11204.CommandSetPowerSupplyConfig, param)
		},
	}
	cmd.Flags().IntVarP(&ps.OvercurrentProtection, "overcurrent-protection", "", 0, "0: shutdown, 1: automatic restoration")
	cmd.Flags().IntVarP(&ps.OutputVoltageControl, "output-voltage-control", "", 0, "0: disable, 1: enable")

	return cmd
}

func output(command c11204.Command, param string) error {
	_, err := fmt.Printf("Parameter: %s\nFrame:     %s\n", param, mppcps.EscapeFrame(c11204.Frame(command, param)))
	return err
}
