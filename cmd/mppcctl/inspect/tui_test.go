package inspect

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdouchement/mppcps"
)

func TestProcessResponse(t *testing.T) {
	fields, err := process(nil, `\x02hxx0004\x0321\r`, false)
	if err != nil {
		t.Fatal(err)
	}

	if last := fields[len(fields)-1]; last.Name != "Error" || last.Value != "Checksum error" {
		t.Errorf("last field = %+v", last)
	}
}

func TestProcessSimulate(t *testing.T) {
	device := mppcps.NewDummyDevice()

	fields, err := process(device, "HGN", false)
	if err != nil {
		t.Fatal(err)
	}

	values := map[string]string{}
	for _, f := range fields {
		values[f.Name] = f.Value
	}
	if values["Command"] != "hgn" || values["Checksum"] != "ok" || values["Serial number"] == "" {
		t.Errorf("fields = %+v", fields)
	}

	if _, err := process(device, "HZZ", false); err == nil {
		t.Error("unknown command accepted")
	}
}

func TestModelSubmit(t *testing.T) {
	m := newTUI(mppcps.NewDummyDevice(), true)
	m.input.SetValue("HRC")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(*model)

	if m.err != nil {
		t.Fatal(m.err)
	}
	if m.input.Value() != "" {
		t.Errorf("input not reset: %q", m.input.Value())
	}
	// Request, Response, Command, Checksum and 2 power supply lines with their notes.
	if n := len(m.table.Rows()); n != 8 {
		t.Errorf("got %d rows, want 8", n)
	}
}
