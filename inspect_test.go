package mppcps

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdouchement/mppcps/c11204"
)

func TestInspectMonitorInfo(t *testing.T) {
	frame := c11204.Frame("hpo", "0001"+"0000"+"9B38"+"0014"+"B701")

	fields, err := Inspect(frame, "", false)
	if err != nil {
		t.Fatal(err)
	}

	values := map[string]string{}
	for _, f := range fields {
		values[f.Name] = f.Value
	}

	want := map[string]string{
		"Command":      "hpo",
		"Checksum":     "ok",
		"Status":       "0001 (0000000000000001)",
		"Status bit 1": "High voltage output : ON",
		"Status bit 2": "Overcurrent protection : Not working",
		"Voltage":      "72.002 V",
		"Current":      "0.104 mA",
		"Temperature":  "25.744 °C",
	}
	for k, v := range want {
		if values[k] != v {
			t.Errorf("%s = %q, want %q", k, values[k], v)
		}
	}

	if _, ok := values["Status bit 6"]; ok {
		t.Error("undocumented status bit 6 must be skipped")
	}
}

func TestInspectDeviceError(t *testing.T) {
	fields, err := Inspect("\x02hxx0004\x0321\r", "", true)
	if err != nil {
		t.Fatal(err)
	}

	want := []Field{
		{Name: "Command", Value: "hxx"},
		{Name: "Checksum", Value: "ok"},
		{Name: "Error", Value: "Checksum error", Note: c11204.ErrorCodeChecksum.Description()},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("Inspect() mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectForcedCommand(t *testing.T) {
	// Without the command, the echo alone cannot tell it is an HGV response.
	fields, err := Inspect("\x02???9B38", c11204.CommandGetVoltage, false)
	if err != nil {
		t.Fatal(err)
	}

	want := []Field{
		{Name: "Command", Value: "???"},
		{Name: "Voltage", Value: "72.002 V"},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("Inspect() mismatch (-want +got):\n%s", diff)
	}

	if _, err := Inspect("\x02???9B38", "", false); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Inspect() error = %v, want %v", err, ErrUnknownCommand)
	}
}

func TestInspectAck(t *testing.T) {
	fields, err := Inspect(c11204.Frame("hon", ""), "", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 2 || fields[0].Value != "hon" {
		t.Errorf("Inspect() = %+v", fields)
	}
}

func TestWriteFields(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFields(&buf, []Field{
		{Name: "Command", Value: "hxx"},
		{Name: "Error", Value: "Timeout error", Note: "CR not received"},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"Command : hxx",
		"Error   : Timeout error",
		"          CR not received",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("WriteFields() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestEscapeFrame(t *testing.T) {
	frame := c11204.Frame(c11204.CommandMonitorInfo, "")
	escaped := EscapeFrame(frame)
	if escaped != `"\x02HPO\x03EC\r"` {
		t.Errorf("EscapeFrame() = %s", escaped)
	}

	for _, s := range []string{escaped, strings.Trim(escaped, `"`), frame} {
		got, err := UnescapeFrame(s)
		if err != nil {
			t.Fatal(err)
		}
		if got != frame {
			t.Errorf("UnescapeFrame(%s) = %q, want %q", s, got, frame)
		}
	}
}
