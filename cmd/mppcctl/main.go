package main

import (
	"fmt"
	"os"
	"regexp"
	"runtime"

	"github.com/mdouchement/logger"
	"github.com/mdouchement/mppcps"
	"github.com/mdouchement/mppcps/cmd/mppcctl/decode"
	"github.com/mdouchement/mppcps/cmd/mppcctl/encode"
	"github.com/mdouchement/mppcps/cmd/mppcctl/frame"
	"github.com/mdouchement/mppcps/cmd/mppcctl/inspect"
	showcompensation "github.com/mdouchement/mppcps/cmd/mppcctl/show_compensation"
	"github.com/mdouchement/mppcps/cmd/mppcctl/simulate"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	debug bool
	cpath string
)

func main() {
	cmd := &cobra.Command{
		Use:     "mppcctl",
		Short:   "A toolbox for the Hamamatsu C11204 MPPC power supply protocol",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg := mppcps.DefaultConfig()
			if cpath != "" {
				var err error
				cfg, err = mppcps.Load(cpath)
				if err != nil {
					return err
				}
				ctx = mppcps.WithConfig(ctx, cfg)
			}

			h := logger.NewSlogTextHandler(os.Stderr, &logger.SlogTextOption{
				Level:           cfg.LogLevel(debug),
				ForceColors:     true,
				ForceFormatting: true,
				PrefixRE:        regexp.MustCompile(`^(\[.*?\])\s`),
				FullTimestamp:   true,
				TimestampFormat: "15:04:05",
			})
			log := logger.WrapSlogHandler(h)
			cmd.SetContext(logger.WithLogger(ctx, log))
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logs")
	cmd.PersistentFlags().StringVarP(&cpath, "config", "c", "", "Calibration profile path")
	cmd.AddCommand(frame.Commands()...)
	cmd.AddCommand(decode.Commands()...)
	cmd.AddCommand(encode.Command())
	cmd.AddCommand(showcompensation.Command())
	cmd.AddCommand(inspect.Command())
	cmd.AddCommand(simulate.Command())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Version for mppcctl",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(cmd.Version)
		},
	})

	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
