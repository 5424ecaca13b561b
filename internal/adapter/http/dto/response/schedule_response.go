package response

import (
	"sqv_cleaning/internal/domain/entities"
	"sqv_cleaning/internal/usecase"
)

// ScheduleStateResponse adds the service chooser to the page state. It is
// shown when ChooseService is true.
type ScheduleStateResponse struct {
	PageStateResponse
	ChooseService bool            `json:"choose_service"`
	Catalog       CatalogResponse `json:"catalog"`
}

type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type SubmissionResponse struct {
	Payload entities.SubmissionPayload `json:"payload"`
	Fields  map[string]string          `json:"fields"`
}

func FromScheduleState(s usecase.ScheduleState) ScheduleStateResponse {
	return ScheduleStateResponse{
		PageStateResponse: FromPageState(s.PageState),
		ChooseService:     !s.HasService(),
		Catalog:           FromCatalog(s.Catalog),
	}
}

func FromSubmission(p entities.SubmissionPayload) SubmissionResponse {
	return SubmissionResponse{Payload: p, Fields: p.FormValues()}
}
