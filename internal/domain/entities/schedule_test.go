package entities

import "testing"

func TestScheduleRequest_HasDateTime(t *testing.T) {
	cases := []struct {
		req  ScheduleRequest
		want bool
	}{
		{req: ScheduleRequest{Date: "2026-10-20", Time: "09:00 AM"}, want: true},
		{req: ScheduleRequest{Date: "2026-10-20"}, want: false},
		{req: ScheduleRequest{Time: "09:00 AM"}, want: false},
		{req: ScheduleRequest{Date: " ", Time: "09:00 AM"}, want: false},
	}
	for _, tc := range cases {
		if got := tc.req.HasDateTime(); got != tc.want {
			t.Fatalf("%+v: expected %v, got %v", tc.req, tc.want, got)
		}
	}
}

func TestNewSubmissionPayload(t *testing.T) {
	sel := NewSelection().SelectService(standardService()).SetRooms("3").SetBathrooms("2").ToggleOption(ecoOption(), true)
	req := ScheduleRequest{Selection: sel, Date: "2026-10-20", Time: "09:00 AM"}

	p, err := NewSubmissionPayload(req, ComputeEstimate(sel, BreakdownBaseLast))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Services != `{"standard":{"name":"Standard Cleaning","base":100,"perRoom":30,"perBathroom":20}}` {
		t.Fatalf("unexpected services: %s", p.Services)
	}
	if p.Options != `{"ecoFriendly":{"name":"Eco-Friendly Products","price":20}}` {
		t.Fatalf("unexpected options: %s", p.Options)
	}
	if p.TotalPrice != "250.00" || p.RoomCount != "3" || p.BathroomCount != "2" {
		t.Fatalf("unexpected payload: %+v", p)
	}

	fields := p.FormValues()
	if len(fields) != 7 {
		t.Fatalf("expected 7 fields, got %d", len(fields))
	}
	if fields["selected_date"] != "2026-10-20" || fields["selected_time"] != "09:00 AM" || fields["total_price"] != "250.00" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestNewSubmissionPayload_NoOptions(t *testing.T) {
	sel := NewSelection().SelectService(standardService())
	p, err := NewSubmissionPayload(ScheduleRequest{Selection: sel, Date: "2026-10-20", Time: "01:00 PM"}, ComputeEstimate(sel, BreakdownBaseLast))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Options != "{}" || p.TotalPrice != "150.00" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}
