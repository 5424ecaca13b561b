package request

// ScheduleSubmitRequest is the scheduling page state at submit time. Date is
// YYYY-MM-DD and Time a display string such as "09:00 AM".
type ScheduleSubmitRequest struct {
	Selection SelectionRequest `json:"selection"`
	Date      string           `json:"date"`
	Time      string           `json:"time"`
}
