package c11204

import (
	"fmt"
	"strings"
)

// Param packs the coefficients into the 24 digits HST parameter.
// Field order: DT'1, DT'2, DT1, DT2, Vb, Tb.
func (tc TemperatureCorrection) Param() (string, error) {
	encoders := []struct {
		name  string
		value float64
		fn    func(float64) (string, error)
	}{
		{"dtp1", tc.DTPrime1, EncodeDTPrime},
		{"dtp2", tc.DTPrime2, EncodeDTPrime},
		{"dt1", tc.DT1, EncodeDT},
		{"dt2", tc.DT2, EncodeDT},
		{"vb", tc.Vb, EncodeVoltage},
		{"tb", tc.Tb, EncodeTemperature},
	}

	var b strings.Builder
	for _, e := range encoders {
		digits, err := e.fn(e.value)
		if err != nil {
			return "", fmt.Errorf("hst: %s: %w", e.name, err)
		}
		b.WriteString(digits)
	}

	return b.String(), nil
}

// ParseTemperatureCorrection is the inverse of Param.
func ParseTemperatureCorrection(param string) (TemperatureCorrection, error) {
	var tc TemperatureCorrection
	if len(param) != 6*FieldLength {
		return tc, fmt.Errorf("temperature correction: %w: got %d, expected %d", ErrInvalidWidth, len(param), 6*FieldLength)
	}

	decoders := []struct {
		dst *float64
		fn  func(string) (float64, error)
	}{
		{&tc.DTPrime1, DecodeDTPrime},
		{&tc.DTPrime2, DecodeDTPrime},
		{&tc.DT1, DecodeDT},
		{&tc.DT2, DecodeDT},
		{&tc.Vb, DecodeVoltage},
		{&tc.Tb, DecodeTemperature},
	}

	for i, d := range decoders {
		v, err := d.fn(param[i*FieldLength : (i+1)*FieldLength])
		if err != nil {
			return tc, fmt.Errorf("temperature correction: %w", err)
		}
		*d.dst = v
	}

	return tc, nil
}

// HSTParam builds the HST parameter from raw coefficients.
func HSTParam(dtp1, dtp2, dt1, dt2, vb, tb float64) (string, error) {
	return TemperatureCorrection{
		DTPrime1: dtp1,
		DTPrime2: dtp2,
		DT1:      dt1,
		DT2:      dt2,
		Vb:       vb,
		Tb:       tb,
	}.Param()
}

// HSCParam builds the 4 digits HSC parameter.
//
//	overcurrentProtection: 0 shutdown, 1 automatic restoration
//	outputVoltageControl:  0 disable, 1 enable
func HSCParam(overcurrentProtection, outputVoltageControl int) (string, error) {
	if overcurrentProtection != 0 && overcurrentProtection != 1 {
		return "", fmt.Errorf("hsc: overcurrent protection %d: %w", overcurrentProtection, ErrInvalidFlag)
	}
	if outputVoltageControl != 0 && outputVoltageControl != 1 {
		return "", fmt.Errorf("hsc: output voltage control %d: %w", outputVoltageControl, ErrInvalidFlag)
	}

	return f4x(uint16(outputVoltageControl + 2*overcurrentProtection)), nil
}

// Param packs the configuration into the HSC parameter.
func (c PowerSupplyConfig) Param() string {
	p, _ := HSCParam(b2i(c.OvercurrentProtection), b2i(c.OutputVoltageControl)) // Cannot fail with booleans.
	return p
}

// ParsePowerSupplyConfig decodes a 4 digits HRC/HSC field.
func ParsePowerSupplyConfig(digits string) (PowerSupplyConfig, error) {
	v, err := parseField(digits, FieldLength)
	if err != nil {
		return PowerSupplyConfig{}, fmt.Errorf("power supply config: %w", err)
	}

	return PowerSupplyConfig{
		OutputVoltageControl:  v&0b01 != 0,
		OvercurrentProtection: v&0b10 != 0,
	}, nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
