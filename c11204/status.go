package c11204

import "fmt"

// Status is the 16 bits status word returned by HPO.
// Bit positions are numbered from 1 (least significant) to 16.
type Status uint16

const (
	StatusHighVoltageOutput Status = 1 << iota
	StatusOvercurrentProtection
	StatusOutputCurrentOutOfSpec
	StatusTemperatureSensorConnected
	StatusTemperatureOutOfRange
	_
	StatusTemperatureCorrectionDisabled
	_
	_
	_
	StatusAutomaticRestoration
	StatusVoltageSuppression
	StatusVoltageControl
	_
	StatusVoltageStable
	_
)

const StatusBits = 16

// statusTexts is indexed by position-1 then by bit value.
var statusTexts = [StatusBits][2]string{
	{"High voltage output : OFF", "High voltage output : ON"},
	{"Overcurrent protection : Not working", "Overcurrent protection : Working protection"},
	{"Output current value : Within specification, value is more than 2mA", "Output current value : Outside specification, value is less than 2mA"},
	{"Temperature sensor connect : Temperature sensor is unconnected or operating temperature departs from -30 to 100 degree", "Temperature sensor connect : Temperature sensor is connected and operating temperature is -30 to 100 degree"},
	{"Operating temperature limit : Operating temperature is -20 to 60 degree", "Operating temperature limit : Operating temperature departs from -20 to 60 degree"},
	{"", ""},
	{"Temperature correction : Enable", "Temperature correction : Disable"},
	{"", ""},
	{"", ""},
	{"", ""},
	{"Automatic restoration : Not working", "Automatic restoration : Working"},
	{"Voltage suppression : Not working", "Voltage suppression : Working, overcurrent protection is running"},
	{"Output voltage control : Not working", "Output voltage control : During voltage control"},
	{"", ""},
	{"Voltage stability : Unstable", "Voltage stability : Stable"},
	{"", ""},
}

var statusNotes = [StatusBits]string{
	"When not using the output voltage ON/OFF control function, high voltage is output immediately after the power is turned on.",
	"The default threshold is 3mA. When a current load of 3mA is exceeded for more than 4 seconds, the output voltage becomes 0V. Send a reset command or reboot the module to output the high voltage again.",
	"",
	"Another part of the documentation states the opposite meaning. If temperature departs from the operating temperature limit greatly, the temperature compensation becomes OFF forcibly.",
	"If temperature departs from the operating temperature limit greatly, the temperature compensation becomes OFF forcibly.",
	"",
	"Another part of the documentation states the opposite meaning. In the case of 0, output voltage is determined by each setting parameter and the temperature sensor value. In the case of 1, it is decided only by the reference voltage. Use HCM to switch the mode.",
	"",
	"",
	"",
	"",
	"In the case of 1, overcurrent protection is set to automatic restoration: while it is running the voltage gradually rises.",
	"",
	"",
	"",
	"",
}

// A StatusLine is the description of one bit position.
// Note is only filled in verbose mode and may be empty.
type StatusLine struct {
	Position int    `json:"position"`
	Set      bool   `json:"set"`
	Text     string `json:"text"`
	Note     string `json:"note,omitempty"`
}

// ParseStatus decodes a 4 digits status field.
func ParseStatus(digits string) (Status, error) {
	v, err := parseField(digits, FieldLength)
	if err != nil {
		return 0, fmt.Errorf("status: %w", err)
	}

	return Status(v), nil
}

// Bit returns the value at the given position (1..16).
// Positions outside of the status word are reported as unset.
func (s Status) Bit(position int) bool {
	if position < 1 || position > StatusBits {
		return false
	}

	return s&(1<<(position-1)) != 0
}

// Binary returns the zero padded 16 bits representation, most significant bit first.
func (s Status) Binary() string {
	return fmt.Sprintf("%016b", uint16(s))
}

func (s Status) String() string {
	return f4x(s)
}

// Describe returns one line per bit position, from position 1 to 16.
func (s Status) Describe(verbose bool) []StatusLine {
	lines := make([]StatusLine, StatusBits)
	for i := 0; i < StatusBits; i++ {
		set := s.Bit(i + 1)
		lines[i] = StatusLine{
			Position: i + 1,
			Set:      set,
			Text:     statusTexts[i][b2i(set)],
		}
		if verbose {
			lines[i].Note = statusNotes[i]
		}
	}

	return lines
}

var powerSupplyTexts = [2][2]string{
	{"Overcurrent protection : Shutdown", "Overcurrent protection : Automatic restoration"},
	{"Output voltage control : Disable", "Output voltage control : Enable"},
}

var powerSupplyNotes = [2]string{
	"This is the condition of overcurrent protection function. 0: Shut down function, 1: Automatic restoration function",
	"This is the condition of output voltage control function. 0: Disable, 1: Enable",
}

// Describe returns the overcurrent protection line then the output voltage control line.
func (c PowerSupplyConfig) Describe(verbose bool) []StatusLine {
	lines := []StatusLine{
		{Position: 1, Set: c.OvercurrentProtection, Text: powerSupplyTexts[0][b2i(c.OvercurrentProtection)]},
		{Position: 2, Set: c.OutputVoltageControl, Text: powerSupplyTexts[1][b2i(c.OutputVoltageControl)]},
	}
	if verbose {
		for i := range lines {
			lines[i].Note = powerSupplyNotes[i]
		}
	}

	return lines
}
