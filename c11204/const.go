package c11204

const (
	STX = 0x02
	ETX = 0x03
	CR  = 0x0D

	// ErrorMnemonic is echoed in place of the command when the device rejects a frame.
	ErrorMnemonic = "hxx"

	CommandLength  = 3
	FieldLength    = 4  // Most values are 4 hex digits.
	TextLength     = 16 // Serial number, device name and version.
	BuildDateWidth = 11

	// Offsets in a received frame (STX included).
	commandOffset   = 1
	payloadOffset   = commandOffset + CommandLength
	errorCodeOffset = 7
	trailerLength   = 4 // ETX + 2 checksum digits + CR
)

const (
	CommandReadTemperatureCorrection   Command = "HRT"
	CommandMonitorInfo                 Command = "HPO"
	CommandGetVoltage                  Command = "HGV"
	CommandGetTemperature              Command = "HGT"
	CommandGetCurrent                  Command = "HGC"
	CommandFirmwareInfo                Command = "HFI"
	CommandSerialNumber                Command = "HGN"
	CommandReadPowerSupplyConfig       Command = "HRC"
	CommandSetTemperatureCorrection    Command = "HST"
	CommandOutputOff                   Command = "HOF"
	CommandOutputOn                    Command = "HON"
	CommandReset                       Command = "HRE"
	CommandSwitchTemperatureCorrection Command = "HCM"
	CommandSetPowerSupplyConfig        Command = "HSC"
	CommandSetReferenceVoltage         Command = "HBV"
)

// Scale factors provided by the manufacturer.
const (
	TemperatureScale  = 1.907e-5
	TemperatureOffset = 1.035
	TemperatureSlope  = -5.5e-3
	VoltageScale      = 1.812e-3 // V
	CurrentScale      = 5.194e-3 // mA
	DTPrimeScale      = 1.507e-3 // mV/°C²
	DTScale           = 5.225e-2 // mV/°C
)

const (
	ErrorCodeUART ErrorCode = iota + 1
	ErrorCodeTimeout
	ErrorCodeSyntax
	ErrorCodeChecksum
	ErrorCodeCommand
	ErrorCodeParameter
	ErrorCodeParameterSize
)
