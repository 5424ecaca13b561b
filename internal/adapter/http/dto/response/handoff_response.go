package response

import "sqv_cleaning/internal/domain/entities"

// HandoffResponse is the hand-off record as the scheduling page reads it.
// Id maps keep the order they were selected in.
type HandoffResponse struct {
	Version                   int                 `json:"version"`
	TotalPrice                float64             `json:"totalPrice"`
	SelectedServices          entities.ServiceMap `json:"selectedServices"`
	SelectedAdditionalOptions entities.OptionMap  `json:"selectedAdditionalOptions"`
	NumRooms                  int                 `json:"numRooms"`
	NumBathrooms              int                 `json:"numBathrooms"`
	ItemizedBreakdown         []string            `json:"itemizedBreakdown"`
}

func FromHandoff(r entities.HandoffRecord) HandoffResponse {
	breakdown := r.ItemizedBreakdown
	if breakdown == nil {
		breakdown = []string{}
	}
	return HandoffResponse{
		Version:                   r.Version,
		TotalPrice:                r.TotalPrice,
		SelectedServices:          r.SelectedServices,
		SelectedAdditionalOptions: r.SelectedAdditionalOptions,
		NumRooms:                  r.NumRooms,
		NumBathrooms:              r.NumBathrooms,
		ItemizedBreakdown:         breakdown,
	}
}
