package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
)

// DefaultCount is the initial value of the rooms and bathrooms fields.
const DefaultCount CountInput = "1"

// CountInput is the raw text of a rooms/bathrooms field.
//
// The raw text is kept as typed; Value() is what pricing uses. Parsing follows
// the browser's parseInt: optional leading whitespace and sign, then the longest
// run of digits. Anything else yields 0, and so do negative numbers.
type CountInput string

func (c CountInput) Value() int {
	s := strings.TrimLeft(string(c), " \t\n\r\v\f")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < '0' || b > '9' {
			break
		}
		digits++
		if n > (math.MaxInt32-int(b-'0'))/10 {
			n = math.MaxInt32
			continue
		}
		n = n*10 + int(b-'0')
	}
	if digits == 0 || negative {
		return 0
	}
	return n
}

// UnmarshalJSON accepts a JSON string, a number or null. Other JSON values are
// kept as their raw text, which parses to 0.
func (c *CountInput) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*c = ""
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = CountInput(s)
	default:
		*c = CountInput(trimmed)
	}
	return nil
}

// Selection is the in-progress state of one estimate.
//
// Invariants:
//   - at most one Service (nil means none chosen);
//   - Options holds unique ids in the order they were first checked.
//
// Mutations return a new Selection and never modify the receiver.
type Selection struct {
	Service   *Service
	Options   []AdditionalOption
	Rooms     CountInput
	Bathrooms CountInput
}

// NewSelection returns the empty selection a page starts with.
func NewSelection() Selection {
	return Selection{Rooms: DefaultCount, Bathrooms: DefaultCount}
}

func (s Selection) HasService() bool {
	return s.Service != nil
}

// IsEmpty reports whether nothing priced is selected (no service, no option).
func (s Selection) IsEmpty() bool {
	return s.Service == nil && len(s.Options) == 0
}

// SelectService makes svc the chosen service. Selecting the already chosen
// service clears it.
func (s Selection) SelectService(svc Service) Selection {
	if s.Service != nil && s.Service.ID == svc.ID {
		s.Service = nil
		return s
	}
	chosen := svc
	s.Service = &chosen
	return s
}

// RemoveService clears the service when it matches id.
func (s Selection) RemoveService(id string) Selection {
	if s.Service != nil && s.Service.ID == id {
		s.Service = nil
	}
	return s
}

// ToggleOption adds or removes opt. Re-checking an option that is already
// selected refreshes it in place.
func (s Selection) ToggleOption(opt AdditionalOption, checked bool) Selection {
	idx := s.optionIndex(opt.ID)
	out := make([]AdditionalOption, 0, len(s.Options)+1)

	switch {
	case checked && idx >= 0:
		out = append(out, s.Options...)
		out[idx] = opt
	case checked:
		out = append(out, s.Options...)
		out = append(out, opt)
	case idx >= 0:
		out = append(out, s.Options[:idx]...)
		out = append(out, s.Options[idx+1:]...)
	default:
		return s
	}

	if len(out) == 0 {
		out = nil
	}
	s.Options = out
	return s
}

func (s Selection) SetRooms(raw CountInput) Selection {
	s.Rooms = raw
	return s
}

func (s Selection) SetBathrooms(raw CountInput) Selection {
	s.Bathrooms = raw
	return s
}

func (s Selection) HasOption(id string) bool {
	return s.optionIndex(id) >= 0
}

// OptionIDs lists the selected option ids in selection order.
func (s Selection) OptionIDs() []string {
	ids := make([]string, 0, len(s.Options))
	for _, o := range s.Options {
		ids = append(ids, o.ID)
	}
	return ids
}

func (s Selection) optionIndex(id string) int {
	for i, o := range s.Options {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// CommandType enumerates the user interactions a page controller dispatches.
type CommandType string

const (
	CommandSelectService CommandType = "select_service"
	CommandRemoveService CommandType = "remove_service"
	CommandToggleOption  CommandType = "toggle_option"
	CommandSetRooms      CommandType = "set_rooms"
	CommandSetBathrooms  CommandType = "set_bathrooms"
)

func (t CommandType) Valid() bool {
	switch t {
	case CommandSelectService, CommandRemoveService, CommandToggleOption, CommandSetRooms, CommandSetBathrooms:
		return true
	}
	return false
}

// Command is one selection mutation. ID is used by the service/option commands,
// Checked by toggle_option and Value by the count commands.
type Command struct {
	Type    CommandType `json:"type"`
	ID      string      `json:"id,omitempty"`
	Checked bool        `json:"checked,omitempty"`
	Value   CountInput  `json:"value,omitempty"`
}
