package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// HandoffKey is the store key (per session) the estimate page writes and the
// scheduling page reads.
const HandoffKey = "cleaningEstimateData"

// HandoffVersion is the schema version written by this build. Records without
// a version field predate versioning and are read as version 1.
const HandoffVersion = 1

var (
	ErrHandoffMalformed          = errors.New("handoff record is malformed")
	ErrHandoffUnsupportedVersion = errors.New("handoff record version is not supported")
)

type HandoffService struct {
	Name        string  `json:"name"`
	Base        float64 `json:"base"`
	PerRoom     float64 `json:"perRoom"`
	PerBathroom float64 `json:"perBathroom"`
}

type HandoffOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ServiceEntry struct {
	ID string
	HandoffService
}

type OptionEntry struct {
	ID string
	HandoffOption
}

// ServiceMap is the `selectedServices` object (id -> service). It encodes as a
// JSON object whose key order is the slice order.
type ServiceMap []ServiceEntry

// OptionMap is the `selectedAdditionalOptions` object (id -> option), insertion ordered.
type OptionMap []OptionEntry

// HandoffRecord is the snapshot carried from the estimate page to the
// scheduling page.
//
// Wire format (JSON text):
//
//	{"version":1,"totalPrice":230,"selectedServices":{"standard":{...}},
//	 "selectedAdditionalOptions":{"ecoFriendly":{...}},"numRooms":3,
//	 "numBathrooms":2,"itemizedBreakdown":["..."]}
type HandoffRecord struct {
	Version                   int        `json:"version"`
	TotalPrice                float64    `json:"totalPrice"`
	SelectedServices          ServiceMap `json:"selectedServices"`
	SelectedAdditionalOptions OptionMap  `json:"selectedAdditionalOptions"`
	NumRooms                  int        `json:"numRooms"`
	NumBathrooms              int        `json:"numBathrooms"`
	ItemizedBreakdown         []string   `json:"itemizedBreakdown"`
}

// NewHandoffRecord merges a selection with the estimate computed from it.
func NewHandoffRecord(sel Selection, est Estimate) HandoffRecord {
	rec := HandoffRecord{
		Version:                   HandoffVersion,
		TotalPrice:                est.Total.Round(2).InexactFloat64(),
		SelectedServices:          ServiceMap{},
		SelectedAdditionalOptions: OptionMap{},
		NumRooms:                  est.Rooms,
		NumBathrooms:              est.Bathrooms,
		ItemizedBreakdown:         append([]string{}, est.Breakdown...),
	}
	if svc := sel.Service; svc != nil {
		rec.SelectedServices = ServiceMap{serviceEntry(*svc)}
	}
	for _, o := range sel.Options {
		rec.SelectedAdditionalOptions = append(rec.SelectedAdditionalOptions, optionEntry(o))
	}
	return rec
}

// DefaultSelection is the fallback when no usable hand-off record exists.
func DefaultSelection() Selection {
	return NewSelection()
}

// DefaultHandoffRecord is what a cold-start scheduling page sees.
func DefaultHandoffRecord() HandoffRecord {
	return NewHandoffRecord(DefaultSelection(), Estimate{Total: decimal.Zero, Breakdown: []string{}, Rooms: 1, Bathrooms: 1})
}

// Selection rebuilds the selection the record was written from. Only the
// first entry of selectedServices is used.
func (r HandoffRecord) Selection() Selection {
	sel := Selection{
		Rooms:     CountInput(strconv.Itoa(r.NumRooms)),
		Bathrooms: CountInput(strconv.Itoa(r.NumBathrooms)),
	}
	if len(r.SelectedServices) > 0 {
		e := r.SelectedServices[0]
		sel.Service = &Service{
			ID:          e.ID,
			Name:        e.Name,
			Base:        decimal.NewFromFloat(e.Base),
			PerRoom:     decimal.NewFromFloat(e.PerRoom),
			PerBathroom: decimal.NewFromFloat(e.PerBathroom),
		}
	}
	for _, e := range r.SelectedAdditionalOptions {
		sel = sel.ToggleOption(AdditionalOption{ID: e.ID, Name: e.Name, Price: decimal.NewFromFloat(e.Price)}, true)
	}
	return sel
}

func EncodeHandoff(r HandoffRecord) ([]byte, error) {
	return json.Marshal(r)
}

// handoffWire mirrors HandoffRecord with pointers so missing fields can be
// told apart from zero values.
type handoffWire struct {
	Version                   *int       `json:"version"`
	TotalPrice                *float64   `json:"totalPrice"`
	SelectedServices          ServiceMap `json:"selectedServices"`
	SelectedAdditionalOptions OptionMap  `json:"selectedAdditionalOptions"`
	NumRooms                  *int       `json:"numRooms"`
	NumBathrooms              *int       `json:"numBathrooms"`
	ItemizedBreakdown         []string   `json:"itemizedBreakdown"`
}

// DecodeHandoff parses a stored record. Missing fields take their defaults
// (no service, no options, one room, one bathroom).
func DecodeHandoff(data []byte) (HandoffRecord, error) {
	var w handoffWire
	if err := json.Unmarshal(data, &w); err != nil {
		return HandoffRecord{}, fmt.Errorf("%w: %v", ErrHandoffMalformed, err)
	}

	rec := DefaultHandoffRecord()
	if w.Version != nil && *w.Version != HandoffVersion {
		return HandoffRecord{}, fmt.Errorf("%w: %d", ErrHandoffUnsupportedVersion, *w.Version)
	}
	if w.TotalPrice != nil {
		rec.TotalPrice = *w.TotalPrice
	}
	if w.SelectedServices != nil {
		rec.SelectedServices = w.SelectedServices
	}
	if w.SelectedAdditionalOptions != nil {
		rec.SelectedAdditionalOptions = w.SelectedAdditionalOptions
	}
	if w.NumRooms != nil && *w.NumRooms >= 0 {
		rec.NumRooms = *w.NumRooms
	}
	if w.NumBathrooms != nil && *w.NumBathrooms >= 0 {
		rec.NumBathrooms = *w.NumBathrooms
	}
	if w.ItemizedBreakdown != nil {
		rec.ItemizedBreakdown = w.ItemizedBreakdown
	}
	return rec, nil
}

func serviceEntry(s Service) ServiceEntry {
	return ServiceEntry{ID: s.ID, HandoffService: HandoffService{
		Name:        s.Name,
		Base:        s.Base.InexactFloat64(),
		PerRoom:     s.PerRoom.InexactFloat64(),
		PerBathroom: s.PerBathroom.InexactFloat64(),
	}}
}

func optionEntry(o AdditionalOption) OptionEntry {
	return OptionEntry{ID: o.ID, HandoffOption: HandoffOption{Name: o.Name, Price: o.Price.InexactFloat64()}}
}

func (m ServiceMap) MarshalJSON() ([]byte, error) {
	fields := make([]orderedField, 0, len(m))
	for _, e := range m {
		fields = append(fields, orderedField{key: e.ID, value: e.HandoffService})
	}
	return marshalOrdered(fields)
}

func (m *ServiceMap) UnmarshalJSON(b []byte) error {
	out := ServiceMap{}
	err := decodeOrdered(b, func(key string, raw json.RawMessage) error {
		var v HandoffService
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		out = append(out, ServiceEntry{ID: key, HandoffService: v})
		return nil
	})
	if err != nil {
		return err
	}
	*m = out
	return nil
}

func (m OptionMap) MarshalJSON() ([]byte, error) {
	fields := make([]orderedField, 0, len(m))
	for _, e := range m {
		fields = append(fields, orderedField{key: e.ID, value: e.HandoffOption})
	}
	return marshalOrdered(fields)
}

func (m *OptionMap) UnmarshalJSON(b []byte) error {
	out := OptionMap{}
	err := decodeOrdered(b, func(key string, raw json.RawMessage) error {
		var v HandoffOption
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		out = append(out, OptionEntry{ID: key, HandoffOption: v})
		return nil
	})
	if err != nil {
		return err
	}
	*m = out
	return nil
}

type orderedField struct {
	key   string
	value any
}

func marshalOrdered(fields []orderedField) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeOrdered walks a JSON object calling fn per member in document order.
// A JSON null is treated as an empty object.
func decodeOrdered(b []byte, fn func(key string, raw json.RawMessage) error) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}
