package entities

import (
	"encoding/json"
	"strings"
)

const (
	// DateLayout is the calendar date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// TimeLayout is the display format of a candidate time, e.g. "09:00 AM".
	TimeLayout = "03:04 PM"
)

// ScheduleRequest is the scheduling page state at submit time.
type ScheduleRequest struct {
	Selection Selection
	Date      string
	Time      string
}

// HasDateTime reports whether both a date and a time were picked.
func (r ScheduleRequest) HasDateTime() bool {
	return strings.TrimSpace(r.Date) != "" && strings.TrimSpace(r.Time) != ""
}

// SubmissionPayload is the final booking package handed to the outer backend.
//
// Services and Options are JSON text of the id-keyed maps, RoomCount and
// BathroomCount are the raw field values and TotalPrice has two decimals.
type SubmissionPayload struct {
	Services      string `json:"services_data"`
	Options       string `json:"additional_options_data"`
	RoomCount     string `json:"num_rooms"`
	BathroomCount string `json:"num_bathrooms"`
	TotalPrice    string `json:"total_price"`
	Date          string `json:"selected_date"`
	Time          string `json:"selected_time"`
}

// NewSubmissionPayload builds the payload from a validated request and the
// estimate recomputed from its selection.
func NewSubmissionPayload(req ScheduleRequest, est Estimate) (SubmissionPayload, error) {
	services := ServiceMap{}
	if svc := req.Selection.Service; svc != nil {
		services = ServiceMap{serviceEntry(*svc)}
	}
	options := OptionMap{}
	for _, o := range req.Selection.Options {
		options = append(options, optionEntry(o))
	}

	servicesJSON, err := json.Marshal(services)
	if err != nil {
		return SubmissionPayload{}, err
	}
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return SubmissionPayload{}, err
	}

	return SubmissionPayload{
		Services:      string(servicesJSON),
		Options:       string(optionsJSON),
		RoomCount:     string(req.Selection.Rooms),
		BathroomCount: string(req.Selection.Bathrooms),
		TotalPrice:    est.Total.StringFixed(2),
		Date:          req.Date,
		Time:          req.Time,
	}, nil
}

// FormValues returns the hidden form fields keyed by field name.
func (p SubmissionPayload) FormValues() map[string]string {
	return map[string]string{
		"services_data":           p.Services,
		"additional_options_data": p.Options,
		"num_rooms":               p.RoomCount,
		"num_bathrooms":           p.BathroomCount,
		"total_price":             p.TotalPrice,
		"selected_date":           p.Date,
		"selected_time":           p.Time,
	}
}
