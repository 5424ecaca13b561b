package usecase

import (
	"context"
	"fmt"
	"sqv_cleaning/internal/domain/entities"
	"sqv_cleaning/internal/usecase/interfaces"
	"strings"
)

func loadCatalog(ctx context.Context, repo interfaces.ICatalogRepository) (entities.Catalog, error) {
	services, err := repo.ListServices(ctx)
	if err != nil {
		return entities.Catalog{}, err
	}
	options, err := repo.ListOptions(ctx)
	if err != nil {
		return entities.Catalog{}, err
	}
	return entities.Catalog{Services: services, Options: options}, nil
}

func lookupService(ctx context.Context, repo interfaces.ICatalogRepository, id string) (entities.Service, error) {
	svc, err := repo.GetService(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" {
		return entities.Service{}, fmt.Errorf("%w: %q", ErrUnknownService, id)
	}
	return svc, nil
}

func lookupOption(ctx context.Context, repo interfaces.ICatalogRepository, id string) (entities.AdditionalOption, error) {
	opt, err := repo.GetOption(ctx, id)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	if opt.ID == "" {
		return entities.AdditionalOption{}, fmt.Errorf("%w: %q", ErrUnknownOption, id)
	}
	return opt, nil
}

// resolveSelection turns wire ids into catalog entries. Repeated option ids
// collapse into one.
func resolveSelection(ctx context.Context, repo interfaces.ICatalogRepository, in SelectionInput) (entities.Selection, error) {
	sel := entities.NewSelection().SetRooms(in.Rooms).SetBathrooms(in.Bathrooms)

	if id := strings.TrimSpace(in.ServiceID); id != "" {
		svc, err := lookupService(ctx, repo, id)
		if err != nil {
			return entities.Selection{}, err
		}
		sel = sel.SelectService(svc)
	}

	for _, id := range in.OptionIDs {
		id = strings.TrimSpace(id)
		if sel.HasOption(id) {
			continue
		}
		opt, err := lookupOption(ctx, repo, id)
		if err != nil {
			return entities.Selection{}, err
		}
		sel = sel.ToggleOption(opt, true)
	}
	return sel, nil
}

// applyCommand dispatches one selection mutation.
func applyCommand(ctx context.Context, repo interfaces.ICatalogRepository, sel entities.Selection, cmd entities.Command) (entities.Selection, error) {
	switch cmd.Type {
	case entities.CommandSelectService:
		svc, err := lookupService(ctx, repo, strings.TrimSpace(cmd.ID))
		if err != nil {
			return entities.Selection{}, err
		}
		return sel.SelectService(svc), nil
	case entities.CommandRemoveService:
		return sel.RemoveService(strings.TrimSpace(cmd.ID)), nil
	case entities.CommandToggleOption:
		id := strings.TrimSpace(cmd.ID)
		if !cmd.Checked {
			return sel.ToggleOption(entities.AdditionalOption{ID: id}, false), nil
		}
		opt, err := lookupOption(ctx, repo, id)
		if err != nil {
			return entities.Selection{}, err
		}
		return sel.ToggleOption(opt, true), nil
	case entities.CommandSetRooms:
		return sel.SetRooms(cmd.Value), nil
	case entities.CommandSetBathrooms:
		return sel.SetBathrooms(cmd.Value), nil
	default:
		return entities.Selection{}, fmt.Errorf("%w: %q", ErrInvalidCommand, cmd.Type)
	}
}
