package c11204

import "fmt"

type (
	Command   string
	ErrorCode uint8
)

// A Reply is the part every response shares: the echoed command field and,
// for rejected frames, the device error.
type Reply struct {
	Command string       `json:"command"`
	Error   *DeviceError `json:"error,omitempty"`
}

// Failed reports whether the device answered with an error frame.
func (r Reply) Failed() bool {
	return r.Error != nil
}

// Telemetry is the HPO response.
type Telemetry struct {
	Reply
	Status      Status  `json:"status"`
	Reserved    string  `json:"reserved"`
	Voltage     float64 `json:"voltage"`     // V
	Current     float64 `json:"current"`     // mA
	Temperature float64 `json:"temperature"` // °C
}

// TemperatureCorrection holds the coefficients read by HRT and written by HST.
type TemperatureCorrection struct {
	DTPrime1 float64 `json:"dtp1" yaml:"dtp1"` // mV/°C²
	DTPrime2 float64 `json:"dtp2" yaml:"dtp2"` // mV/°C²
	DT1      float64 `json:"dt1" yaml:"dt1"`   // mV/°C
	DT2      float64 `json:"dt2" yaml:"dt2"`   // mV/°C
	Vb       float64 `json:"vb" yaml:"vb"`     // V
	Tb       float64 `json:"tb" yaml:"tb"`     // °C
}

// DefaultTemperatureCorrection returns the factory reference point with compensation disabled.
func DefaultTemperatureCorrection() TemperatureCorrection {
	return TemperatureCorrection{Vb: 40, Tb: 25}
}

type TemperatureCorrectionReply struct {
	Reply
	TemperatureCorrection
}

type PowerSupplyConfig struct {
	OvercurrentProtection bool `json:"overcurrent_protection"` // false: shutdown, true: automatic restoration
	OutputVoltageControl  bool `json:"output_voltage_control"`
}

type PowerSupplyConfigReply struct {
	Reply
	PowerSupplyConfig
}

// Measure is the response of the single value commands (HGV, HGT, HGC).
type Measure struct {
	Reply
	Value float64 `json:"value"`
}

type FirmwareInfo struct {
	Reply
	DeviceName string `json:"device_name"`
	Version    string `json:"version"`
	BuildDate  string `json:"build_date"`
}

type SerialNumber struct {
	Reply
	Number string `json:"number"`
}

func f4x[T ~uint16](v T) string {
	return fmt.Sprintf("%04X", v)
}
