package response

import (
	"sqv_cleaning/internal/domain/entities"
	"sqv_cleaning/internal/usecase"
)

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Base        float64 `json:"base"`
	PerRoom     float64 `json:"per_room"`
	PerBathroom float64 `json:"per_bathroom"`
}

type OptionResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	Options  []OptionResponse  `json:"options"`
}

// SelectionResponse echoes the selection in the shape SelectionRequest
// accepts, plus the resolved catalog entries for display.
type SelectionResponse struct {
	ServiceID string           `json:"service_id"`
	OptionIDs []string         `json:"option_ids"`
	Rooms     string           `json:"rooms"`
	Bathrooms string           `json:"bathrooms"`
	Service   *ServiceResponse `json:"service"`
	Options   []OptionResponse `json:"options"`
}

type EstimateResponse struct {
	Total        float64  `json:"total"`
	TotalDisplay string   `json:"total_display"`
	Breakdown    []string `json:"breakdown"`
	Rooms        int      `json:"rooms"`
	Bathrooms    int      `json:"bathrooms"`
}

// PageStateResponse is returned after every compute or command.
type PageStateResponse struct {
	Selection    SelectionResponse `json:"selection"`
	Estimate     EstimateResponse  `json:"estimate"`
	HasService   bool              `json:"has_service"`
	ShowEstimate bool              `json:"show_estimate"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Base:        s.Base.InexactFloat64(),
		PerRoom:     s.PerRoom.InexactFloat64(),
		PerBathroom: s.PerBathroom.InexactFloat64(),
	}
}

func FromOption(o entities.AdditionalOption) OptionResponse {
	return OptionResponse{ID: o.ID, Name: o.Name, Price: o.Price.InexactFloat64()}
}

func FromCatalog(c entities.Catalog) CatalogResponse {
	out := CatalogResponse{
		Services: make([]ServiceResponse, 0, len(c.Services)),
		Options:  make([]OptionResponse, 0, len(c.Options)),
	}
	for _, s := range c.Services {
		out.Services = append(out.Services, FromService(s))
	}
	for _, o := range c.Options {
		out.Options = append(out.Options, FromOption(o))
	}
	return out
}

func FromSelection(sel entities.Selection) SelectionResponse {
	out := SelectionResponse{
		OptionIDs: sel.OptionIDs(),
		Rooms:     string(sel.Rooms),
		Bathrooms: string(sel.Bathrooms),
		Options:   make([]OptionResponse, 0, len(sel.Options)),
	}
	if sel.Service != nil {
		svc := FromService(*sel.Service)
		out.ServiceID = svc.ID
		out.Service = &svc
	}
	for _, o := range sel.Options {
		out.Options = append(out.Options, FromOption(o))
	}
	return out
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		Total:        e.Total.Round(2).InexactFloat64(),
		TotalDisplay: entities.FormatMoney(e.Total),
		Breakdown:    e.Breakdown,
		Rooms:        e.Rooms,
		Bathrooms:    e.Bathrooms,
	}
}

func FromPageState(s usecase.PageState) PageStateResponse {
	return PageStateResponse{
		Selection:    FromSelection(s.Selection),
		Estimate:     FromEstimate(s.Estimate),
		HasService:   s.HasService(),
		ShowEstimate: s.ShowEstimate(),
	}
}
