package c11204

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/mdouchement/logger"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) logger.Logger {
	return logger.WrapSlogHandler(logger.NewSlogTextHandler(buf, &logger.SlogTextOption{
		Level:            level,
		DisableTimestamp: true,
	}))
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		name    string
		command Command
		param   string
		want    string
	}{
		{"hpo", CommandMonitorInfo, "", "ec"},
		{"error frame", ErrorMnemonic, "0004", "21"},
		{"hsc", CommandSetPowerSupplyConfig, "0003", "a6"},
		{"hbv", CommandSetReferenceVoltage, "563B", "c5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Checksum(tt.command, tt.param)
			if got != tt.want {
				t.Errorf("Checksum(%q, %q) = %q, want %q", tt.command, tt.param, got, tt.want)
			}
			if got != Checksum(tt.command, tt.param) {
				t.Error("Checksum is not deterministic")
			}
		})
	}
}

func TestSumOverflow(t *testing.T) {
	// A long parameter overflows several times the low byte.
	param := strings.Repeat("F", 24)
	want := byte((STX + ETX + 'H' + 'S' + 'T' + 24*'F') & 0xFF)
	if got := Sum(CommandSetTemperatureCorrection, param); got != want {
		t.Errorf("Sum() = 0x%02X, want 0x%02X", got, want)
	}
}

func TestVerifyChecksum(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		want  bool
	}{
		{"reference error frame", "\x02hxx0004\x0321\r", true},
		{"uppercase given checksum", "\x02HSC0003\x03A6\r", true},
		{"built frame", Frame(CommandMonitorInfo, ""), true},
		{"built frame with param", Frame(CommandSetPowerSupplyConfig, "0003"), true},
		{"lowercase given checksum", "\x02HSC0003\x03a6\r", true},
		{"wrong checksum", "\x02hxx0004\x0322\r", false},
		{"corrupted payload", "\x02hxx0005\x0321\r", false},
		{"too short", "\x02hx\r", false},
		{"missing stx", "hxx0004\x0321\r", false},
		{"missing etx", "\x02hxx00004" + "21\r", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyChecksum(tt.frame); got != tt.want {
				t.Errorf("VerifyChecksum(%q) = %v, want %v", tt.frame, got, tt.want)
			}
			if got := Verify(nil, tt.frame); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}

func TestVerifyReport(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		want  bool
		logs  []string
	}{
		{
			name:  "valid",
			frame: "\x02hxx0004\x0321\r",
			want:  true,
		},
		{
			name:  "checksum mismatch",
			frame: "\x02hxx0004\x0322\r",
			logs:  []string{"Checksum mismatch", "given 22", "computed 21"},
		},
		{
			name:  "malformed",
			frame: "\x02hxx00004" + "21\r",
			logs:  []string{"Checksum not verified", ErrMalformedFrame.Error(), "expected ETX"},
		},
		{
			name:  "too short",
			frame: "\x02hx\r",
			logs:  []string{"Checksum not verified", ErrShortFrame.Error()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			if got := Verify(newBufferLogger(&buf, slog.LevelDebug), tt.frame); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.frame, got, tt.want)
			}

			output := buf.String()
			if len(tt.logs) == 0 && output != "" {
				t.Errorf("Verify(%q) logged %q, want nothing", tt.frame, output)
			}
			for _, s := range tt.logs {
				if !strings.Contains(output, s) {
					t.Errorf("Verify(%q) logged %q, want it to contain %q", tt.frame, output, s)
				}
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	param := strings.Repeat("A", 24)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum(CommandSetTemperatureCorrection, param)
	}
}
