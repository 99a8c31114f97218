package mppcps

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/mdouchement/logger"
	"github.com/mdouchement/mppcps/c11204"
)

// A DummyDevice emulates a C11204 power supply. It should only be used for dev & tests.
type DummyDevice struct {
	sync        sync.Mutex
	log         logger.Logger
	status      c11204.Status
	correction  c11204.TemperatureCorrection
	config      c11204.PowerSupplyConfig
	temperature float64
	current     float64
}

const (
	dummyDeviceName = "C11204-02"
	dummyVersion    = "1.00"
	dummyBuildDate  = "2016/01/01"
	dummySerial     = "0000000000000001"
)

func NewDummyDevice() *DummyDevice {
	return &DummyDevice{
		status:      c11204.StatusTemperatureSensorConnected | c11204.StatusVoltageStable,
		correction:  c11204.DefaultTemperatureCorrection(),
		temperature: 25,
		current:     0.1,
	}
}

func (d *DummyDevice) SetLogger(l logger.Logger) {
	d.log = l
}

func (d *DummyDevice) Port() string {
	return "x-testing"
}

// SetEnvironment sets the MPPC temperature in °C and the load current in mA.
func (d *DummyDevice) SetEnvironment(temperature, current float64) {
	d.sync.Lock()
	defer d.sync.Unlock()

	d.temperature = temperature
	d.current = current
}

// Handle answers a command frame with a response frame.
func (d *DummyDevice) Handle(frame string) string {
	d.sync.Lock()
	defer d.sync.Unlock()

	response := d.handle(frame)
	if d.log != nil {
		d.log.Debug(fmt.Sprintf("%s => %s", strconv.Quote(frame), strconv.Quote(response)))
	}

	return response
}

func (d *DummyDevice) handle(frame string) string {
	raw, err := c11204.Split(frame)
	if err != nil {
		if errors.Is(err, c11204.ErrMalformedFrame) && len(frame) > 0 && frame[0] == c11204.STX && frame[len(frame)-1] != c11204.CR {
			return c11204.ErrorFrame(c11204.ErrorCodeTimeout) // CR never received.
		}
		return c11204.ErrorFrame(c11204.ErrorCodeSyntax)
	}

	if !strings.EqualFold(raw.Checksum, raw.ComputedChecksum()) {
		return c11204.ErrorFrame(c11204.ErrorCodeChecksum)
	}

	command := c11204.Command(raw.Command)
	if !command.Known() {
		return c11204.ErrorFrame(c11204.ErrorCodeCommand)
	}

	if len(raw.Payload) != paramLength(command) {
		return c11204.ErrorFrame(c11204.ErrorCodeParameterSize)
	}

	for _, c := range raw.Payload {
		if !strings.ContainsRune("0123456789ABCDEF", c) {
			return c11204.ErrorFrame(c11204.ErrorCodeParameter)
		}
	}

	payload, err := d.execute(command, raw.Payload)
	if err != nil {
		if d.log != nil {
			d.log.WithError(err).Errorf("Could not execute %s", command)
		}
		return c11204.ErrorFrame(c11204.ErrorCodeParameter)
	}

	return c11204.Frame(c11204.Command(strings.ToLower(raw.Command)), payload)
}

func (d *DummyDevice) execute(command c11204.Command, param string) (string, error) {
	switch command {
	case c11204.CommandMonitorInfo:
		return d.status.String() + "0000" + encode(c11204.EncodeVoltage, d.output(), c11204.VoltageScale) +
			encode(c11204.EncodeCurrent, d.current, c11204.CurrentScale) + d.sensor(), nil
	case c11204.CommandGetVoltage:
		return encode(c11204.EncodeVoltage, d.output(), c11204.VoltageScale), nil
	case c11204.CommandGetCurrent:
		return encode(c11204.EncodeCurrent, d.current, c11204.CurrentScale), nil
	case c11204.CommandGetTemperature:
		return d.sensor(), nil
	case c11204.CommandReadTemperatureCorrection:
		return d.correction.Param()
	case c11204.CommandReadPowerSupplyConfig:
		return d.config.Param(), nil
	case c11204.CommandFirmwareInfo:
		return fmt.Sprintf("%-*s%-*s%-*s", c11204.TextLength, dummyDeviceName, c11204.TextLength, dummyVersion, c11204.BuildDateWidth, dummyBuildDate), nil
	case c11204.CommandSerialNumber:
		return dummySerial, nil
	case c11204.CommandSetTemperatureCorrection:
		tc, err := c11204.ParseTemperatureCorrection(param)
		if err != nil {
			return "", err
		}
		d.correction = tc
	case c11204.CommandSetPowerSupplyConfig:
		cfg, err := c11204.ParsePowerSupplyConfig(param)
		if err != nil {
			return "", err
		}
		d.config = cfg
		d.set(c11204.StatusAutomaticRestoration, cfg.OvercurrentProtection)
	case c11204.CommandSetReferenceVoltage:
		vb, err := c11204.DecodeVoltage(param)
		if err != nil {
			return "", err
		}
		d.correction.Vb = vb
	case c11204.CommandSwitchTemperatureCorrection:
		switch param {
		case "0000":
			d.set(c11204.StatusTemperatureCorrectionDisabled, false)
		case "0001":
			d.set(c11204.StatusTemperatureCorrectionDisabled, true)
		default:
			return "", fmt.Errorf("hcm: invalid mode %s", param)
		}
	case c11204.CommandOutputOn:
		d.set(c11204.StatusHighVoltageOutput, true)
	case c11204.CommandOutputOff:
		d.set(c11204.StatusHighVoltageOutput, false)
	case c11204.CommandReset:
		d.set(c11204.StatusOvercurrentProtection, false)
		d.set(c11204.StatusVoltageSuppression, false)
	}

	return "", nil
}

// output is the voltage currently applied to the MPPC.
func (d *DummyDevice) output() float64 {
	if d.status&c11204.StatusHighVoltageOutput == 0 {
		return 0
	}
	if d.status&c11204.StatusTemperatureCorrectionDisabled != 0 {
		return d.correction.Vb
	}

	return d.correction.OutputVoltage(d.temperature)
}

func (d *DummyDevice) sensor() string {
	digits, err := c11204.EncodeTemperature(d.temperature)
	if err == nil {
		return digits
	}

	// The sensor saturates, its reading decreases as the temperature rises.
	if d.temperature > -c11204.TemperatureOffset/c11204.TemperatureSlope {
		return "0000"
	}
	return "FFFF"
}

func (d *DummyDevice) set(flag c11204.Status, on bool) {
	if on {
		d.status |= flag
		return
	}
	d.status &^= flag
}

func paramLength(command c11204.Command) int {
	switch command {
	case c11204.CommandSetTemperatureCorrection:
		return 6 * c11204.FieldLength
	case c11204.CommandSetPowerSupplyConfig, c11204.CommandSetReferenceVoltage, c11204.CommandSwitchTemperatureCorrection:
		return c11204.FieldLength
	}
	return 0
}

// encode clamps v in the range the field can carry.
func encode(fn func(float64) (string, error), v, scale float64) string {
	v = math.Min(math.Max(v, 0), math.MaxUint16*scale)
	digits, err := fn(v)
	if err != nil {
		return "0000" // Only NaN ends here.
	}
	return digits
}
