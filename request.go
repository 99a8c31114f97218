package mppcps

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mdouchement/mppcps/c11204"
)

var reRequest = regexp.MustCompile(`^([A-Za-z]{3})\s*([0-9A-Fa-f]*)$`)

// ParseRequest builds a command frame from a human input: either a mnemonic
// followed by its optional parameter (e.g. `HBV 563B`), or a Go quoted frame.
func ParseRequest(s string) (string, c11204.Command, error) {
	s = strings.TrimSpace(s)

	if match := reRequest.FindStringSubmatch(s); match != nil {
		command := c11204.Command(strings.ToUpper(match[1]))
		if !command.Known() {
			return "", "", fmt.Errorf("%s: %w", match[1], ErrUnknownCommand)
		}

		return c11204.Frame(command, strings.ToUpper(match[2])), command, nil
	}

	frame, err := UnescapeFrame(s)
	if err != nil {
		return "", "", fmt.Errorf("request: %w", err)
	}

	raw, err := c11204.Split(frame)
	if err != nil {
		return "", "", fmt.Errorf("request: %w", err)
	}

	return frame, c11204.Command(raw.Command), nil
}
