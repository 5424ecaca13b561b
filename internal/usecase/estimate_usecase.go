package usecase

import (
	"context"
	"errors"
	"fmt"
	"sqv_cleaning/internal/domain/entities"
	"sqv_cleaning/internal/observability/metrics"
	"sqv_cleaning/internal/usecase/interfaces"
	"sqv_cleaning/pkg/logging"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownService   = errors.New("unknown service")
	ErrUnknownOption    = errors.New("unknown additional option")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrInvalidSessionID = errors.New("invalid session id")
)

const (
	PageEstimate = "estimate"
	PageSchedule = "schedule"
)

// SelectionInput is a selection as a page sends it: catalog ids plus the raw
// count fields.
type SelectionInput struct {
	ServiceID string
	OptionIDs []string
	Rooms     entities.CountInput
	Bathrooms entities.CountInput
}

// PageState is a selection and the estimate derived from it. The estimate is
// always recomputed, never carried over.
type PageState struct {
	Selection entities.Selection
	Estimate  entities.Estimate
}

func (s PageState) HasService() bool {
	return s.Selection.HasService()
}

// ShowEstimate drives the estimate panel visibility: a service or at least
// one option must be selected.
func (s PageState) ShowEstimate() bool {
	return !s.Selection.IsEmpty()
}

// IEstimateUseCase exposes the estimate page operations.
//
//   - selection mutation => Apply()
//   - live total and breakdown => Compute()
//   - "proceed to scheduling" => SaveHandoff()
//   - scheduling page cold start => LoadHandoff()
type IEstimateUseCase interface {
	Catalog(ctx context.Context) (entities.Catalog, error)
	ResolveSelection(ctx context.Context, in SelectionInput) (entities.Selection, error)
	Compute(ctx context.Context, sel entities.Selection) PageState
	Apply(ctx context.Context, sel entities.Selection, cmd entities.Command) (PageState, error)
	SaveHandoff(ctx context.Context, sessionID string, sel entities.Selection) (entities.HandoffRecord, error)
	LoadHandoff(ctx context.Context, sessionID string) entities.HandoffRecord
}

type EstimateUseCase struct {
	catalog interfaces.ICatalogRepository
	store   interfaces.IHandoffStore
	ttl     time.Duration
	order   entities.BreakdownOrder
	metrics *metrics.EstimateMetrics
	logger  *logging.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	catalog interfaces.ICatalogRepository,
	store interfaces.IHandoffStore,
	ttl time.Duration,
	order entities.BreakdownOrder,
	m *metrics.EstimateMetrics,
	logger *logging.Logger,
) *EstimateUseCase {
	if logger == nil {
		logger = logging.Default()
	}
	return &EstimateUseCase{catalog: catalog, store: store, ttl: ttl, order: order, metrics: m, logger: logger}
}

func (u *EstimateUseCase) Catalog(ctx context.Context) (entities.Catalog, error) {
	return loadCatalog(ctx, u.catalog)
}

func (u *EstimateUseCase) ResolveSelection(ctx context.Context, in SelectionInput) (entities.Selection, error) {
	return resolveSelection(ctx, u.catalog, in)
}

func (u *EstimateUseCase) Compute(_ context.Context, sel entities.Selection) PageState {
	u.metrics.ObserveComputed(PageEstimate)
	return PageState{Selection: sel, Estimate: entities.ComputeEstimate(sel, u.order)}
}

func (u *EstimateUseCase) Apply(ctx context.Context, sel entities.Selection, cmd entities.Command) (PageState, error) {
	next, err := applyCommand(ctx, u.catalog, sel, cmd)
	if err != nil {
		return PageState{}, err
	}
	return u.Compute(ctx, next), nil
}

// SaveHandoff computes the estimate, merges it with the selection and
// overwrites the session's hand-off record.
func (u *EstimateUseCase) SaveHandoff(ctx context.Context, sessionID string, sel entities.Selection) (entities.HandoffRecord, error) {
	key, err := handoffKey(sessionID)
	if err != nil {
		return entities.HandoffRecord{}, err
	}

	rec := entities.NewHandoffRecord(sel, u.Compute(ctx, sel).Estimate)
	data, err := entities.EncodeHandoff(rec)
	if err != nil {
		return entities.HandoffRecord{}, fmt.Errorf("encode handoff: %w", err)
	}
	if err := u.store.Put(ctx, key, data, u.ttl); err != nil {
		u.metrics.ObserveHandoff("save", "error")
		return entities.HandoffRecord{}, err
	}

	u.metrics.ObserveHandoff("save", "ok")
	u.logger.Debug("handoff saved", "session_id", sessionID, "total", rec.TotalPrice)
	return rec, nil
}

// LoadHandoff never fails. A missing, unreadable or unsupported record yields
// the default record.
func (u *EstimateUseCase) LoadHandoff(ctx context.Context, sessionID string) entities.HandoffRecord {
	key, err := handoffKey(sessionID)
	if err != nil {
		u.metrics.ObserveHandoff("load", "miss")
		return entities.DefaultHandoffRecord()
	}

	data, err := u.store.Get(ctx, key)
	if err != nil {
		u.metrics.ObserveHandoff("load", "error")
		u.logger.Warn("handoff load failed, using default", "session_id", sessionID, "error", err)
		return entities.DefaultHandoffRecord()
	}
	if data == nil {
		u.metrics.ObserveHandoff("load", "miss")
		return entities.DefaultHandoffRecord()
	}

	rec, err := entities.DecodeHandoff(data)
	if err != nil {
		u.metrics.ObserveHandoff("load", "fallback")
		u.logger.Warn("handoff record unusable, using default", "session_id", sessionID, "error", err)
		return entities.DefaultHandoffRecord()
	}

	u.metrics.ObserveHandoff("load", "ok")
	return rec
}

func handoffKey(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if _, err := uuid.Parse(sessionID); err != nil {
		return "", ErrInvalidSessionID
	}
	return entities.HandoffKey + ":" + sessionID, nil
}
