package mppcps

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdouchement/mppcps/c11204"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mppcps.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
debug: true
temperature_correction:
  dt1: 54.3
  dt2: 50.1
  vb: 53.8
power_supply:
  overcurrent_protection: 1
  output_voltage_control: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := Config{
		Debug: true,
		TemperatureCorrection: c11204.TemperatureCorrection{
			DT1: 54.3,
			DT2: 50.1,
			Vb:  53.8,
			Tb:  25, // Default
		},
		PowerSupply: PowerSupply{OvercurrentProtection: 1},
		Plot:        Plot{From: -20, To: 60},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	hsc, err := cfg.HSCParam()
	if err != nil {
		t.Fatal(err)
	}
	if hsc != "0002" {
		t.Errorf("HSCParam() = %q, want %q", hsc, "0002")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     error
	}{
		{
			name:    "negative coefficient",
			content: "temperature_correction:\n  dt1: -1\n",
			err:     c11204.ErrOutOfRange,
		},
		{
			name:    "invalid flag",
			content: "power_supply:\n  output_voltage_control: 2\n",
			err:     c11204.ErrInvalidFlag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.err) {
				t.Errorf("Load() error = %v, want %v", err, tt.err)
			}
		})
	}

	if _, err := Load(writeConfig(t, "plot:\n  from: 10\n  to: 0\n")); err == nil {
		t.Error("Load() accepted an empty plot range")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want %v", err, os.ErrNotExist)
	}
}

func TestConfigLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		debug bool
		want  slog.Level
	}{
		{name: "default", cfg: DefaultConfig(), want: slog.LevelInfo},
		{name: "profile", cfg: Config{Debug: true}, want: slog.LevelDebug},
		{name: "flag", cfg: DefaultConfig(), debug: true, want: slog.LevelDebug},
		{name: "both", cfg: Config{Debug: true}, debug: true, want: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.LogLevel(tt.debug); got != tt.want {
				t.Errorf("LogLevel(%v) = %v, want %v", tt.debug, got, tt.want)
			}
		})
	}
}

func TestLoadDebugLevel(t *testing.T) {
	cfg, err := Load(writeConfig(t, "debug: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.LogLevel(false); got != slog.LevelDebug {
		t.Errorf("LogLevel(false) = %v, want %v", got, slog.LevelDebug)
	}
}

func TestConfigWith(t *testing.T) {
	if _, ok := ConfigWith(context.Background()); ok {
		t.Error("ConfigWith() found a profile in an empty context")
	}

	want := Config{Debug: true, Plot: Plot{From: 0, To: 40}}
	got, ok := ConfigWith(WithConfig(context.Background(), want))
	if !ok {
		t.Fatal("ConfigWith() did not find the profile")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ConfigWith() mismatch (-want +got):\n%s", diff)
	}
}
