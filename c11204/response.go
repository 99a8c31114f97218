package c11204

import "fmt"

// Response field layouts, as offsets in the received frame (STX is at offset 0).
const (
	offsetFirstField  = payloadOffset
	offsetStatus      = offsetFirstField
	offsetReserved    = offsetStatus + FieldLength
	offsetVoltage     = offsetReserved + FieldLength
	offsetCurrent     = offsetVoltage + FieldLength
	offsetTemperature = offsetCurrent + FieldLength

	offsetDeviceName = payloadOffset
	offsetVersion    = offsetDeviceName + TextLength
	offsetBuildDate  = offsetVersion + TextLength
)

// ParseMonitorInfoResponse decodes the HPO response:
//
//	[STX][hpo][STATUS(4)][RESERVED(4)][VOLTAGE(4)][CURRENT(4)][TEMPERATURE(4)]...
func ParseMonitorInfoResponse(frame string) (*Telemetry, error) {
	reply, err := DecodeError(frame)
	if err != nil {
		return nil, fmt.Errorf("hpo: %w", err)
	}
	if reply.Failed() {
		return &Telemetry{Reply: reply}, nil
	}

	t := &Telemetry{Reply: reply}
	digits, err := field(frame, offsetStatus, FieldLength)
	if err != nil {
		return nil, fmt.Errorf("hpo: %w", err)
	}
	if t.Status, err = ParseStatus(digits); err != nil {
		return nil, fmt.Errorf("hpo: %w", err)
	}

	if t.Reserved, err = field(frame, offsetReserved, FieldLength); err != nil {
		return nil, fmt.Errorf("hpo: %w", err)
	}

	for _, f := range []struct {
		offset int
		dst    *float64
		fn     func(string) (float64, error)
	}{
		{offsetVoltage, &t.Voltage, DecodeVoltage},
		{offsetCurrent, &t.Current, DecodeCurrent},
		{offsetTemperature, &t.Temperature, DecodeTemperature},
	} {
		if *f.dst, err = decodeField(frame, f.offset, f.fn); err != nil {
			return nil, fmt.Errorf("hpo: %w", err)
		}
	}

	return t, nil
}

// ParseTemperatureCorrectionResponse decodes the HRT response.
func ParseTemperatureCorrectionResponse(frame string) (*TemperatureCorrectionReply, error) {
	reply, err := DecodeError(frame)
	if err != nil {
		return nil, fmt.Errorf("hrt: %w", err)
	}
	if reply.Failed() {
		return &TemperatureCorrectionReply{Reply: reply}, nil
	}

	param, err := field(frame, offsetFirstField, 6*FieldLength)
	if err != nil {
		return nil, fmt.Errorf("hrt: %w", err)
	}

	tc, err := ParseTemperatureCorrection(param)
	if err != nil {
		return nil, fmt.Errorf("hrt: %w", err)
	}

	return &TemperatureCorrectionReply{Reply: reply, TemperatureCorrection: tc}, nil
}

// ParseVoltageResponse decodes the HGV response in V.
func ParseVoltageResponse(frame string) (*Measure, error) {
	return parseMeasure("hgv", frame, DecodeVoltage)
}

// ParseTemperatureResponse decodes the HGT response in °C.
func ParseTemperatureResponse(frame string) (*Measure, error) {
	return parseMeasure("hgt", frame, DecodeTemperature)
}

// ParseCurrentResponse decodes the HGC response in mA.
func ParseCurrentResponse(frame string) (*Measure, error) {
	return parseMeasure("hgc", frame, DecodeCurrent)
}

// ParseFirmwareInfoResponse decodes the HFI response:
//
//	[STX][hfi][DEVICE_NAME(16)][VERSION(16)][BUILD_DATE(11)]...
func ParseFirmwareInfoResponse(frame string) (*FirmwareInfo, error) {
	reply, err := DecodeError(frame)
	if err != nil {
		return nil, fmt.Errorf("hfi: %w", err)
	}
	if reply.Failed() {
		return &FirmwareInfo{Reply: reply}, nil
	}

	fw := &FirmwareInfo{Reply: reply}
	for _, f := range []struct {
		offset int
		width  int
		dst    *string
	}{
		{offsetDeviceName, TextLength, &fw.DeviceName},
		{offsetVersion, TextLength, &fw.Version},
		{offsetBuildDate, BuildDateWidth, &fw.BuildDate},
	} {
		if *f.dst, err = field(frame, f.offset, f.width); err != nil {
			return nil, fmt.Errorf("hfi: %w", err)
		}
	}

	return fw, nil
}

// ParseSerialNumberResponse decodes the HGN response.
func ParseSerialNumberResponse(frame string) (*SerialNumber, error) {
	reply, err := DecodeError(frame)
	if err != nil {
		return nil, fmt.Errorf("hgn: %w", err)
	}
	if reply.Failed() {
		return &SerialNumber{Reply: reply}, nil
	}

	number, err := field(frame, payloadOffset, TextLength)
	if err != nil {
		return nil, fmt.Errorf("hgn: %w", err)
	}

	return &SerialNumber{Reply: reply, Number: number}, nil
}

// ParsePowerSupplyConfigResponse decodes the HRC response.
func ParsePowerSupplyConfigResponse(frame string) (*PowerSupplyConfigReply, error) {
	reply, err := DecodeError(frame)
	if err != nil {
		return nil, fmt.Errorf("hrc: %w", err)
	}
	if reply.Failed() {
		return &PowerSupplyConfigReply{Reply: reply}, nil
	}

	digits, err := field(frame, offsetFirstField, FieldLength)
	if err != nil {
		return nil, fmt.Errorf("hrc: %w", err)
	}

	cfg, err := ParsePowerSupplyConfig(digits)
	if err != nil {
		return nil, fmt.Errorf("hrc: %w", err)
	}

	return &PowerSupplyConfigReply{Reply: reply, PowerSupplyConfig: cfg}, nil
}

// ParseAckResponse decodes the response of the commands without data
// (HST, HOF, HON, HRE, HCM, HSC, HBV).
func ParseAckResponse(frame string) (Reply, error) {
	return DecodeError(frame)
}

// HasData reports whether the response of the command carries data.
func (c Command) HasData() bool {
	switch c {
	case CommandReadTemperatureCorrection, CommandMonitorInfo, CommandGetVoltage, CommandGetTemperature,
		CommandGetCurrent, CommandFirmwareInfo, CommandSerialNumber, CommandReadPowerSupplyConfig:
		return true
	}
	return false
}

// Known reports whether the command belongs to the device command set.
func (c Command) Known() bool {
	switch c {
	case CommandSetTemperatureCorrection, CommandOutputOff, CommandOutputOn, CommandReset,
		CommandSwitchTemperatureCorrection, CommandSetPowerSupplyConfig, CommandSetReferenceVoltage:
		return true
	}
	return c.HasData()
}

func parseMeasure(name, frame string, fn func(string) (float64, error)) (*Measure, error) {
	reply, err := DecodeError(frame)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if reply.Failed() {
		return &Measure{Reply: reply}, nil
	}

	v, err := decodeField(frame, offsetFirstField, fn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &Measure{Reply: reply, Value: v}, nil
}

func decodeField(frame string, offset int, fn func(string) (float64, error)) (float64, error) {
	digits, err := field(frame, offset, FieldLength)
	if err != nil {
		return 0, err
	}

	return fn(digits)
}

// field slices a payload field, never reading into the trailer of a well formed frame.
func field(frame string, offset, width int) (string, error) {
	end := len(frame)
	if _, err := Split(frame); err == nil {
		end -= trailerLength
	}

	if end < offset+width {
		return "", fmt.Errorf("%w: got %d payload bytes, field ends at %d", ErrShortFrame, end, offset+width)
	}

	return frame[offset : offset+width], nil
}
