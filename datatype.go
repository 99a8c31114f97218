package mppcps

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mdouchement/mppcps/c11204"
)

var ErrUnknownCommand = errors.New("unknown command")

// A Field is one decoded value of a response, ready to be displayed.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Note  string `json:"note,omitempty"`
}

type Point struct {
	Temperature float64 `json:"temperature"`
	Voltage     float64 `json:"voltage"`
}

func ToPtr[T any](v T) *T {
	return &v
}

// UnescapeFrame turns a Go quoted frame (e.g. `\x02HPO\x03EC\r`, with or without
// the surrounding double quotes) into its raw bytes.
// A frame already holding control characters is returned as is.
func UnescapeFrame(s string) (string, error) {
	if strings.ContainsRune(s, c11204.STX) {
		return s, nil
	}

	if !strings.HasPrefix(s, `"`) {
		s = `"` + s + `"`
	}

	return strconv.Unquote(s)
}

// EscapeFrame is the inverse of UnescapeFrame.
func EscapeFrame(frame string) string {
	return strconv.Quote(frame)
}
