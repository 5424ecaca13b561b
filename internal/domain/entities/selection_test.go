package entities

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCountInput_Value(t *testing.T) {
	cases := map[CountInput]int{
		"3":           3,
		"  4":         4,
		"+5":          5,
		"-1":          0,
		"":            0,
		"abc":         0,
		"7 rooms":     7,
		"2.5":         2,
		"99999999999": math.MaxInt32,
	}
	for in, want := range cases {
		if got := in.Value(); got != want {
			t.Fatalf("%q: expected %d, got %d", in, want, got)
		}
	}
}

func TestCountInput_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A CountInput `json:"a"`
		B CountInput `json:"b"`
		C CountInput `json:"c"`
		D CountInput `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a":"3","b":4,"c":null,"d":true}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.A != "3" || payload.B != "4" || payload.C != "" || payload.D != "true" {
		t.Fatalf("unexpected values: %+v", payload)
	}
	if payload.D.Value() != 0 {
		t.Fatalf("expected non numeric to parse as 0")
	}
}

func TestSelection_SelectServiceEvictsPrevious(t *testing.T) {
	deep := Service{ID: "deep", Name: "Deep Cleaning", Base: decimal.NewFromInt(180)}

	sel := NewSelection().SelectService(standardService()).SelectService(deep)
	if sel.Service == nil || sel.Service.ID != "deep" {
		t.Fatalf("expected deep to replace standard, got %+v", sel.Service)
	}

	sel = sel.SelectService(deep)
	if sel.HasService() {
		t.Fatalf("selecting the chosen service again should clear it")
	}
}

func TestSelection_MutationsDoNotAlterReceiver(t *testing.T) {
	base := NewSelection().SelectService(standardService()).ToggleOption(petOption(), true)

	_ = base.RemoveService("standard")
	_ = base.ToggleOption(petOption(), false)
	_ = base.ToggleOption(ecoOption(), true)
	_ = base.SetRooms("9")

	if !base.HasService() || !reflect.DeepEqual(base.OptionIDs(), []string{"petFriendly"}) || base.Rooms != DefaultCount {
		t.Fatalf("receiver was modified: %+v", base)
	}
}

func TestSelection_RemoveService(t *testing.T) {
	sel := NewSelection().SelectService(standardService())
	if !sel.RemoveService("deep").HasService() {
		t.Fatalf("removing another id must be a no-op")
	}
	if sel.RemoveService("standard").HasService() {
		t.Fatalf("expected service cleared")
	}
}

func TestSelection_ToggleOptionPairRestoresState(t *testing.T) {
	start := NewSelection().SelectService(standardService()).ToggleOption(petOption(), true)

	after := start.ToggleOption(ecoOption(), true).ToggleOption(ecoOption(), false)
	if !reflect.DeepEqual(after, start) {
		t.Fatalf("expected %+v, got %+v", start, after)
	}

	empty := NewSelection()
	if got := empty.ToggleOption(ecoOption(), true).ToggleOption(ecoOption(), false); !reflect.DeepEqual(got, empty) {
		t.Fatalf("expected empty selection back, got %+v", got)
	}
}

func TestSelection_ToggleOptionKeepsFirstInsertPosition(t *testing.T) {
	sel := NewSelection().ToggleOption(petOption(), true).ToggleOption(ecoOption(), true).ToggleOption(petOption(), true)
	if !reflect.DeepEqual(sel.OptionIDs(), []string{"petFriendly", "ecoFriendly"}) {
		t.Fatalf("unexpected order: %v", sel.OptionIDs())
	}
	if !sel.HasOption("ecoFriendly") || sel.HasOption("missing") {
		t.Fatalf("unexpected HasOption result")
	}
	if !reflect.DeepEqual(sel.ToggleOption(AdditionalOption{ID: "missing"}, false), sel) {
		t.Fatalf("unchecking an absent option must be a no-op")
	}
}

func TestCommandType_Valid(t *testing.T) {
	for _, ct := range []CommandType{CommandSelectService, CommandRemoveService, CommandToggleOption, CommandSetRooms, CommandSetBathrooms} {
		if !ct.Valid() {
			t.Fatalf("expected %q to be valid", ct)
		}
	}
	if CommandType("click").Valid() {
		t.Fatalf("unexpected valid command")
	}
}
