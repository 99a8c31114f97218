package showcompensation

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"strconv"

	"github.com/go-analyze/charts"
	"github.com/mattn/go-sixel"
	"github.com/mdouchement/mppcps"
	"github.com/mdouchement/mppcps/c11204"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	var resolution int
	var step float64

	cmd := &cobra.Command{
		Use:   "show-compensation",
		Short: "Show the output voltage temperature compensation curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ok := mppcps.ConfigWith(cmd.Context())
			if !ok {
				cfg = mppcps.DefaultConfig()
			}

			fmt.Println(c11204.CompensationNote)

			points, err := mppcps.CompensationCurve(cfg.TemperatureCorrection, cfg.Plot.From, cfg.Plot.To, step)
			if err != nil {
				return err
			}

			//
			// Compute series
			//

			vo := charts.LineSeries{Name: "Vo"}
			vb := charts.LineSeries{Name: "Vb"}
			labels := make([]string, 0, len(points))
			for _, p := range points {
				vo.Values = append(vo.Values, p.Voltage)
				vb.Values = append(vb.Values, cfg.TemperatureCorrection.Vb)
				labels = append(labels, strconv.FormatFloat(p.Temperature, 'f', -1, 64))
			}

			//
			// Render chart
			//

			opt := charts.NewLineChartOptionWithSeries(charts.LineSeriesList{vo, vb})
			opt.Theme = charts.GetTheme(charts.ThemeVividDark)
			opt.Padding = charts.NewBox(20, 20, 20, 20)
			opt.Title.Text = fmt.Sprintf("Temperature compensation (Tb = %g°C)", cfg.TemperatureCorrection.Tb)
			opt.Title.FontStyle.FontSize = 16
			opt.Title.Offset = charts.OffsetLeft
			opt.Legend = charts.LegendOption{
				Show:     mppcps.ToPtr(true),
				Offset:   charts.OffsetCenter,
				Vertical: mppcps.ToPtr(true),
				Padding:  charts.NewBox(0, 0, 0, 20),
			}
			opt.Symbol = charts.SymbolNone
			opt.LineStrokeWidth = 2
			opt.XAxis.Show = mppcps.ToPtr(true)
			opt.XAxis.Title = "°C"
			opt.XAxis.Labels = labels
			opt.XAxis.LabelCount = 10
			opt.YAxis = []charts.YAxisOption{
				{
					Show:  mppcps.ToPtr(true),
					Title: "V",
				},
			}
			p := charts.NewPainter(charts.PainterOptions{
				OutputFormat: charts.ChartOutputPNG,
				Width:        resolution,
				Height:       int(float64(resolution) / (16.0 / 9.0)),
			})

			err = p.LineChart(opt)
			if err != nil {
				return fmt.Errorf("chart: %w", err)
			}

			mPNG, err := p.Bytes()
			if err != nil {
				return fmt.Errorf("chart: %w", err)
			}

			m, _, err := image.Decode(bytes.NewReader(mPNG))
			if err != nil {
				return fmt.Errorf("chart: %w", err)
			}

			codec := sixel.NewEncoder(os.Stdout)
			err = codec.Encode(m)
			if err != nil {
				return fmt.Errorf("chart: %w", err)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&resolution, "resolution", "r", 1000, "The width size in pixel of the graph")
	cmd.Flags().Float64VarP(&step, "step", "s", 0.5, "Temperature step in °C")

	return cmd
}
