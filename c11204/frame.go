package c11204

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrShortFrame     = errors.New("frame too short")
	ErrMalformedFrame = errors.New("malformed frame")
)

// A RawFrame is a received frame split into its fields.
//
//	[STX][COMMAND(3)][PAYLOAD...][ETX][CHECKSUM(2)][CR]
type RawFrame struct {
	Command  string
	Payload  string
	Checksum string
}

// Frame builds a ready to send frame. The checksum is written in uppercase.
func Frame(command Command, param string) string {
	var b strings.Builder
	b.Grow(1 + len(command) + len(param) + trailerLength)

	b.WriteByte(STX)
	b.WriteString(string(command))
	b.WriteString(param)
	b.WriteByte(ETX)
	b.WriteString(strings.ToUpper(Checksum(command, param)))
	b.WriteByte(CR)

	return b.String()
}

// Split validates the framing bytes and returns the fields of a received frame.
// The checksum itself is not verified.
func Split(frame string) (RawFrame, error) {
	n := len(frame)
	if n < 1+CommandLength+trailerLength {
		return RawFrame{}, fmt.Errorf("%w: got %d bytes, minimum is %d", ErrShortFrame, n, 1+CommandLength+trailerLength)
	}

	if frame[0] != STX {
		return RawFrame{}, fmt.Errorf("%w: got 0x%02X at start, expected STX", ErrMalformedFrame, frame[0])
	}
	if frame[n-1] != CR {
		return RawFrame{}, fmt.Errorf("%w: got 0x%02X at end, expected CR", ErrMalformedFrame, frame[n-1])
	}
	if frame[n-4] != ETX {
		return RawFrame{}, fmt.Errorf("%w: got 0x%02X before checksum, expected ETX", ErrMalformedFrame, frame[n-4])
	}

	return RawFrame{
		Command:  frame[commandOffset:payloadOffset],
		Payload:  frame[payloadOffset : n-4],
		Checksum: frame[n-3 : n-1],
	}, nil
}

// ComputedChecksum is the checksum the frame should carry.
func (f RawFrame) ComputedChecksum() string {
	return Checksum(Command(f.Command), f.Payload)
}
