package c11204

import (
	"errors"
	"fmt"
)

var ErrUnknownErrorCode = errors.New("unknown error code")

var errorNames = [...]string{
	ErrorCodeUART - 1:          "UART communication error",
	ErrorCodeTimeout - 1:       "Timeout error",
	ErrorCodeSyntax - 1:        "Syntax error",
	ErrorCodeChecksum - 1:      "Checksum error",
	ErrorCodeCommand - 1:       "Command error",
	ErrorCodeParameter - 1:     "Parameter error",
	ErrorCodeParameterSize - 1: "Parameter size error",
}

var errorDescriptions = [...]string{
	ErrorCodeUART - 1:          "Parity error, overrun error or framing error.",
	ErrorCodeTimeout - 1:       "The CR has not been received within 1000ms of receiving the STX. The received packet is discarded.",
	ErrorCodeSyntax - 1:        "The beginning of the received command is other than STX, or the command length reached 256 bytes.",
	ErrorCodeChecksum - 1:      "The checksum does not match.",
	ErrorCodeCommand - 1:       "The command is undefined.",
	ErrorCodeParameter - 1:     "A code other than ASCII (0-F) is in the parameter.",
	ErrorCodeParameterSize - 1: "The data length of the parameter is outside the specified length.",
}

func (c ErrorCode) Valid() bool {
	return c >= ErrorCodeUART && c <= ErrorCodeParameterSize
}

// Name returns the short error name.
func (c ErrorCode) Name() string {
	if !c.Valid() {
		return fmt.Sprintf("unknown error code %d", c)
	}
	return errorNames[c-1]
}

func (c ErrorCode) Description() string {
	if !c.Valid() {
		return ""
	}
	return errorDescriptions[c-1]
}

// DeviceError is a decoded hxx frame.
type DeviceError struct {
	Code ErrorCode `json:"code"`
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device error %d: %s", e.Code, e.Code.Name())
}

func (e *DeviceError) Name() string {
	return e.Code.Name()
}

func (e *DeviceError) Description() string {
	return e.Code.Description()
}

// DecodeError inspects the command field of a response.
// When it is not the error mnemonic, the returned Reply only carries the echoed command.
// Codes outside 1..7 are reported as ErrUnknownErrorCode.
func DecodeError(frame string) (Reply, error) {
	if len(frame) < payloadOffset {
		return Reply{}, fmt.Errorf("error frame: %w: got %d bytes", ErrShortFrame, len(frame))
	}

	reply := Reply{Command: frame[commandOffset:payloadOffset]}
	if reply.Command != ErrorMnemonic {
		return reply, nil
	}

	if len(frame) <= errorCodeOffset {
		return reply, fmt.Errorf("error frame: %w: no error code", ErrShortFrame)
	}

	c := frame[errorCodeOffset]
	if c < '0' || c > '9' {
		return reply, fmt.Errorf("error frame: %q: %w", c, ErrUnknownErrorCode)
	}

	code := ErrorCode(c - '0')
	if !code.Valid() {
		return reply, fmt.Errorf("error frame: %d: %w", code, ErrUnknownErrorCode)
	}

	reply.Error = &DeviceError{Code: code}
	return reply, nil
}

// ErrorFrame builds the response the device sends when it rejects a frame.
func ErrorFrame(code ErrorCode) string {
	return Frame(ErrorMnemonic, f4x(uint16(code)))
}
