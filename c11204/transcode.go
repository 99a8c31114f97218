package c11204

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrInvalidWidth = errors.New("invalid field width")
	ErrInvalidHex   = errors.New("invalid hexadecimal digits")
	ErrOutOfRange   = errors.New("value not representable on the wire")
	ErrInvalidFlag  = errors.New("flag must be 0 or 1")
)

// DecodeTemperature converts a 4 digits wire value to °C.
func DecodeTemperature(digits string) (float64, error) {
	v, err := parseField(digits, FieldLength)
	if err != nil {
		return 0, fmt.Errorf("temperature: %w", err)
	}

	return (float64(v)*TemperatureScale - TemperatureOffset) / TemperatureSlope, nil
}

// DecodeVoltage converts a 4 digits wire value to V.
func DecodeVoltage(digits string) (float64, error) {
	return decodeLinear("voltage", digits, VoltageScale)
}

// DecodeCurrent converts a 4 digits wire value to mA.
func DecodeCurrent(digits string) (float64, error) {
	return decodeLinear("current", digits, CurrentScale)
}

// DecodeDTPrime converts a 4 digits wire value to mV/°C².
func DecodeDTPrime(digits string) (float64, error) {
	return decodeLinear("dt'", digits, DTPrimeScale)
}

// DecodeDT converts a 4 digits wire value to mV/°C.
func DecodeDT(digits string) (float64, error) {
	return decodeLinear("dt", digits, DTScale)
}

func EncodeTemperature(t float64) (string, error) {
	v, err := truncate((t*TemperatureSlope + TemperatureOffset) / TemperatureScale)
	if err != nil {
		return "", fmt.Errorf("temperature %g: %w", t, err)
	}

	return f4x(v), nil
}

func EncodeVoltage(v float64) (string, error) {
	return encodeLinear("voltage", v, VoltageScale)
}

func EncodeCurrent(i float64) (string, error) {
	return encodeLinear("current", i, CurrentScale)
}

func EncodeDTPrime(dtp float64) (string, error) {
	return encodeLinear("dt'", dtp, DTPrimeScale)
}

func EncodeDT(dt float64) (string, error) {
	return encodeLinear("dt", dt, DTScale)
}

func decodeLinear(name, digits string, scale float64) (float64, error) {
	v, err := parseField(digits, FieldLength)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return float64(v) * scale, nil
}

func encodeLinear(name string, value, scale float64) (string, error) {
	v, err := truncate(value / scale)
	if err != nil {
		return "", fmt.Errorf("%s %g: %w", name, value, err)
	}

	return f4x(v), nil
}

// truncate rounds toward zero the way the device firmware expects.
func truncate(raw float64) (uint16, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, ErrOutOfRange
	}

	raw = math.Trunc(raw)
	if raw < 0 || raw > math.MaxUint16 {
		return 0, ErrOutOfRange
	}

	return uint16(raw), nil
}

func parseField(digits string, width int) (uint64, error) {
	if len(digits) != width {
		return 0, fmt.Errorf("%q: %w: got %d, expected %d", digits, ErrInvalidWidth, len(digits), width)
	}

	v, err := strconv.ParseUint(digits, 16, width*4)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", digits, ErrInvalidHex)
	}

	return v, nil
}
