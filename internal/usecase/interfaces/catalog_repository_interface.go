package interfaces

import (
	"context"
	"sqv_cleaning/internal/domain/entities"
)

// ICatalogRepository serves the static service and option definitions.
// Lookups of unknown ids return an empty entity and no error.

type ICatalogRepository interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	ListOptions(ctx context.Context) ([]entities.AdditionalOption, error)
	GetOption(ctx context.Context, id string) (entities.AdditionalOption, error)
}
