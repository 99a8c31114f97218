package mppcps

import (
	"fmt"
	"io"
	"strings"

	"github.com/mdouchement/mppcps/c11204"
)

// Inspect decodes any response frame into displayable fields.
// When command is empty, it is guessed from the echoed command field.
func Inspect(frame string, command c11204.Command, verbose bool) ([]Field, error) {
	reply, err := c11204.DecodeError(frame)
	if err != nil {
		return nil, err
	}

	fields := []Field{{Name: "Command", Value: reply.Command}}
	if _, err := c11204.Split(frame); err == nil {
		checksum := "ok"
		if !c11204.VerifyChecksum(frame) {
			checksum = "mismatch"
		}
		fields = append(fields, Field{Name: "Checksum", Value: checksum})
	}

	if reply.Failed() {
		f := Field{Name: "Error", Value: reply.Error.Name()}
		if verbose {
			f.Note = reply.Error.Description()
		}
		return append(fields, f), nil
	}

	if command == "" {
		command = c11204.Command(strings.ToUpper(reply.Command))
	}
	if !command.Known() {
		return nil, fmt.Errorf("%s: %w", command, ErrUnknownCommand)
	}

	more, err := inspect(frame, command, verbose)
	if err != nil {
		return nil, err
	}

	return append(fields, more...), nil
}

func inspect(frame string, command c11204.Command, verbose bool) ([]Field, error) {
	switch command {
	case c11204.CommandMonitorInfo:
		t, err := c11204.ParseMonitorInfoResponse(frame)
		if err != nil {
			return nil, err
		}

		fields := []Field{{Name: "Status", Value: fmt.Sprintf("%s (%s)", t.Status, t.Status.Binary())}}
		fields = append(fields, describe(t.Status.Describe(verbose), "Status bit")...)
		return append(fields,
			Field{Name: "Reserved", Value: t.Reserved},
			Field{Name: "Voltage", Value: volts(t.Voltage)},
			Field{Name: "Current", Value: milliamps(t.Current)},
			Field{Name: "Temperature", Value: celsius(t.Temperature)},
		), nil
	case c11204.CommandReadTemperatureCorrection:
		tc, err := c11204.ParseTemperatureCorrectionResponse(frame)
		if err != nil {
			return nil, err
		}

		fields := TemperatureCorrectionFields(tc.TemperatureCorrection)
		if verbose {
			fields[0].Note = c11204.CompensationNote
		}
		return fields, nil
	case c11204.CommandGetVoltage:
		return measure(frame, "Voltage", c11204.ParseVoltageResponse, volts)
	case c11204.CommandGetTemperature:
		return measure(frame, "Temperature", c11204.ParseTemperatureResponse, celsius)
	case c11204.CommandGetCurrent:
		return measure(frame, "Current", c11204.ParseCurrentResponse, milliamps)
	case c11204.CommandFirmwareInfo:
		fw, err := c11204.ParseFirmwareInfoResponse(frame)
		if err != nil {
			return nil, err
		}

		return []Field{
			{Name: "Device name", Value: strings.TrimSpace(fw.DeviceName)},
			{Name: "Version", Value: strings.TrimSpace(fw.Version)},
			{Name: "Build date", Value: strings.TrimSpace(fw.BuildDate)},
		}, nil
	case c11204.CommandSerialNumber:
		sn, err := c11204.ParseSerialNumberResponse(frame)
		if err != nil {
			return nil, err
		}

		return []Field{{Name: "Serial number", Value: sn.Number}}, nil
	case c11204.CommandReadPowerSupplyConfig:
		cfg, err := c11204.ParsePowerSupplyConfigResponse(frame)
		if err != nil {
			return nil, err
		}

		return describe(cfg.Describe(verbose), "Power supply"), nil
	default:
		// Commands without data: only the echo matters and it has already been reported.
		return nil, nil
	}
}

// TemperatureCorrectionFields formats the coefficients with their units.
func TemperatureCorrectionFields(tc c11204.TemperatureCorrection) []Field {
	return []Field{
		{Name: "DT'1", Value: fmt.Sprintf("%.4f mV/°C²", tc.DTPrime1)},
		{Name: "DT'2", Value: fmt.Sprintf("%.4f mV/°C²", tc.DTPrime2)},
		{Name: "DT1", Value: fmt.Sprintf("%.4f mV/°C", tc.DT1)},
		{Name: "DT2", Value: fmt.Sprintf("%.4f mV/°C", tc.DT2)},
		{Name: "Vb", Value: volts(tc.Vb)},
		{Name: "Tb", Value: celsius(tc.Tb)},
	}
}

// StatusFields formats a status word, skipping the undocumented positions.
func StatusFields(s c11204.Status, verbose bool) []Field {
	return describe(s.Describe(verbose), "Status bit")
}

// WriteFields prints fields, one per line, followed by their note when present.
func WriteFields(w io.Writer, fields []Field) error {
	var width int
	for _, f := range fields {
		width = max(width, len(f.Name))
	}

	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%-*s : %s\n", width, f.Name, f.Value); err != nil {
			return err
		}

		if f.Note == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%*s   %s\n", width, "", f.Note); err != nil {
			return err
		}
	}

	return nil
}

func describe(lines []c11204.StatusLine, prefix string) []Field {
	fields := make([]Field, 0, len(lines))
	for _, l := range lines {
		if l.Text == "" {
			continue
		}

		fields = append(fields, Field{
			Name:  fmt.Sprintf("%s %d", prefix, l.Position),
			Value: l.Text,
			Note:  l.Note,
		})
	}

	return fields
}

func measure(frame, name string, parse func(string) (*c11204.Measure, error), format func(float64) string) ([]Field, error) {
	m, err := parse(frame)
	if err != nil {
		return nil, err
	}

	return []Field{{Name: name, Value: format(m.Value)}}, nil
}

func volts(v float64) string {
	return fmt.Sprintf("%.3f V", v)
}

func milliamps(v float64) string {
	return fmt.Sprintf("%.3f mA", v)
}

func celsius(v float64) string {
	return fmt.Sprintf("%.3f °C", v)
}
