package request

import (
	"sqv_cleaning/internal/domain/entities"
	"sqv_cleaning/internal/usecase"
)

// SelectionRequest is the selection a page holds and sends with every call.
// Missing rooms/bathrooms fall back to the page default of "1".
type SelectionRequest struct {
	ServiceID string               `json:"service_id"`
	OptionIDs []string             `json:"option_ids"`
	Rooms     *entities.CountInput `json:"rooms"`
	Bathrooms *entities.CountInput `json:"bathrooms"`
}

func (r SelectionRequest) ToInput() usecase.SelectionInput {
	return usecase.SelectionInput{
		ServiceID: r.ServiceID,
		OptionIDs: r.OptionIDs,
		Rooms:     countOrDefault(r.Rooms),
		Bathrooms: countOrDefault(r.Bathrooms),
	}
}

// EstimateRequest carries a selection for compute and hand-off calls.
type EstimateRequest struct {
	Selection SelectionRequest `json:"selection"`
}

type CommandPayload struct {
	Type    string              `json:"type" binding:"required"`
	ID      string              `json:"id"`
	Checked bool                `json:"checked"`
	Value   entities.CountInput `json:"value"`
}

func (p CommandPayload) ToCommand() entities.Command {
	return entities.Command{
		Type:    entities.CommandType(p.Type),
		ID:      p.ID,
		Checked: p.Checked,
		Value:   p.Value,
	}
}

// CommandRequest is one user interaction applied to the current selection.
type CommandRequest struct {
	Selection SelectionRequest `json:"selection"`
	Command   CommandPayload   `json:"command"`
}

func countOrDefault(c *entities.CountInput) entities.CountInput {
	if c == nil {
		return entities.DefaultCount
	}
	return *c
}
