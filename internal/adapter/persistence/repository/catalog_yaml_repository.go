package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"sqv_cleaning/internal/domain/entities"
	"sqv_cleaning/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type catalogFile struct {
	Services []struct {
		ID          string  `yaml:"id"`
		Name        string  `yaml:"name"`
		Base        float64 `yaml:"base"`
		PerRoom     float64 `yaml:"per_room"`
		PerBathroom float64 `yaml:"per_bathroom"`
	} `yaml:"services"`
	Options []struct {
		ID    string  `yaml:"id"`
		Name  string  `yaml:"name"`
		Price float64 `yaml:"price"`
	} `yaml:"options"`
}

// CatalogYAMLRepository serves a catalog parsed once at startup. Order is
// file order.
type CatalogYAMLRepository struct {
	catalog  entities.Catalog
	services map[string]entities.Service
	options  map[string]entities.AdditionalOption
}

var _ interfaces.ICatalogRepository = (*CatalogYAMLRepository)(nil)

// NewCatalogRepository loads the catalog from path, or the built-in catalog
// when path is empty.
func NewCatalogRepository(path string) (*CatalogYAMLRepository, error) {
	data := defaultCatalogYAML
	if path = strings.TrimSpace(path); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = b
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*CatalogYAMLRepository, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	r := &CatalogYAMLRepository{
		catalog: entities.Catalog{
			Services: make([]entities.Service, 0, len(f.Services)),
			Options:  make([]entities.AdditionalOption, 0, len(f.Options)),
		},
		services: make(map[string]entities.Service, len(f.Services)),
		options:  make(map[string]entities.AdditionalOption, len(f.Options)),
	}

	for _, s := range f.Services {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("%w: service needs id and name", ErrInvalidCatalog)
		}
		if s.Base < 0 || s.PerRoom < 0 || s.PerBathroom < 0 {
			return nil, fmt.Errorf("%w: service %q has a negative price", ErrInvalidCatalog, s.ID)
		}
		if _, dup := r.services[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate service %q", ErrInvalidCatalog, s.ID)
		}
		svc := entities.Service{
			ID:          s.ID,
			Name:        s.Name,
			Base:        decimal.NewFromFloat(s.Base),
			PerRoom:     decimal.NewFromFloat(s.PerRoom),
			PerBathroom: decimal.NewFromFloat(s.PerBathroom),
		}
		r.services[svc.ID] = svc
		r.catalog.Services = append(r.catalog.Services, svc)
	}

	for _, o := range f.Options {
		if o.ID == "" || o.Name == "" {
			return nil, fmt.Errorf("%w: option needs id and name", ErrInvalidCatalog)
		}
		if o.Price < 0 {
			return nil, fmt.Errorf("%w: option %q has a negative price", ErrInvalidCatalog, o.ID)
		}
		if _, dup := r.options[o.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate option %q", ErrInvalidCatalog, o.ID)
		}
		opt := entities.AdditionalOption{ID: o.ID, Name: o.Name, Price: decimal.NewFromFloat(o.Price)}
		r.options[opt.ID] = opt
		r.catalog.Options = append(r.catalog.Options, opt)
	}

	return r, nil
}

func (r *CatalogYAMLRepository) ListServices(_ context.Context) ([]entities.Service, error) {
	return append([]entities.Service(nil), r.catalog.Services...), nil
}

func (r *CatalogYAMLRepository) GetService(_ context.Context, id string) (entities.Service, error) {
	return r.services[id], nil
}

func (r *CatalogYAMLRepository) ListOptions(_ context.Context) ([]entities.AdditionalOption, error) {
	return append([]entities.AdditionalOption(nil), r.catalog.Options...), nil
}

func (r *CatalogYAMLRepository) GetOption(_ context.Context, id string) (entities.AdditionalOption, error) {
	return r.options[id], nil
}
