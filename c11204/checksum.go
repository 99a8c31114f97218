package c11204

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mdouchement/logger"
)

// Sum computes the additive checksum of a frame: STX, every byte of the
// command and the parameter, and ETX, truncated to the low byte.
func Sum(command Command, param string) byte {
	sum := byte(STX + ETX)
	for i := 0; i < len(command); i++ {
		sum += command[i]
	}
	for i := 0; i < len(param); i++ {
		sum += param[i]
	}

	return sum
}

// Checksum renders Sum as 2 lowercase hexadecimal digits.
func Checksum(command Command, param string) string {
	return fmt.Sprintf("%02x", Sum(command, param))
}

// VerifyChecksum recomputes the checksum of a received frame and compares it,
// case-insensitively, to the checksum field. A malformed frame never verifies.
func VerifyChecksum(frame string) bool {
	raw, err := Split(frame)
	if err != nil {
		return false
	}

	return strings.EqualFold(raw.ComputedChecksum(), raw.Checksum)
}

// Verify is VerifyChecksum with a diagnostic report on failure.
// The logger may be nil.
func Verify(log logger.Logger, frame string) bool {
	if VerifyChecksum(frame) {
		return true
	}

	if log != nil {
		raw, err := Split(frame)
		if err != nil {
			log.WithError(err).Errorf("Checksum not verified for %s", strconv.Quote(frame))
			return false
		}

		log.Warnf("Checksum mismatch for %s: given %s, computed %s", strconv.Quote(frame), raw.Checksum, strings.ToUpper(raw.ComputedChecksum()))
	}

	return false
}
