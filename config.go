package mppcps

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mdouchement/mppcps/c11204"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Debug                 bool                         `yaml:"debug"`
	TemperatureCorrection c11204.TemperatureCorrection `yaml:"temperature_correction"`
	PowerSupply           PowerSupply                  `yaml:"power_supply"`
	Plot                  Plot                         `yaml:"plot"`
}

// PowerSupply flags are kept as integers to match the device documentation (0 or 1).
type PowerSupply struct {
	OvercurrentProtection int `yaml:"overcurrent_protection"`
	OutputVoltageControl  int `yaml:"output_voltage_control"`
}

// Plot is the temperature range in °C used to render the compensation curve.
type Plot struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// DefaultConfig returns the factory settings.
func DefaultConfig() Config {
	return Config{
		TemperatureCorrection: c11204.DefaultTemperatureCorrection(),
		Plot:                  Plot{From: -20, To: 60}, // Operating temperature limit
	}
}

func Load(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	codec := yaml.NewDecoder(f)
	err = codec.Decode(&c)
	if err != nil {
		return c, err
	}

	//

	if _, err = c.HSTParam(); err != nil {
		return c, fmt.Errorf("temperature_correction: %w", err)
	}

	if _, err = c.HSCParam(); err != nil {
		return c, fmt.Errorf("power_supply: %w", err)
	}

	if c.Plot.From >= c.Plot.To {
		return c, fmt.Errorf("plot: from (%g) must be lower than to (%g)", c.Plot.From, c.Plot.To)
	}

	return c, nil
}

// LogLevel returns the level of the logs, debug is forced by the command line.
func (c Config) LogLevel(debug bool) slog.Level {
	if c.Debug || debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

type ctxKey struct{}

// WithConfig returns a copy of ctx holding the loaded profile.
func WithConfig(ctx context.Context, c Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// ConfigWith returns the profile held by ctx, if any.
func ConfigWith(ctx context.Context) (Config, bool) {
	if ctx == nil {
		return Config{}, false
	}
	c, ok := ctx.Value(ctxKey{}).(Config)
	return c, ok
}

func (c Config) HSTParam() (string, error) {
	return c.TemperatureCorrection.Param()
}

func (c Config) HSCParam() (string, error) {
	return c11204.HSCParam(c.PowerSupply.OvercurrentProtection, c.PowerSupply.OutputVoltageControl)
}
