package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sqv_cleaning/internal/domain/entities"
	"sqv_cleaning/internal/observability/metrics"
	"sqv_cleaning/internal/usecase/interfaces"
	"sqv_cleaning/pkg/logging"
	"strings"
	"time"
)

var (
	ErrScheduleDateTimeRequired = errors.New("preferred date and time are required")
	ErrScheduleServiceRequired  = errors.New("a main cleaning service is required")
	ErrInvalidScheduleDate      = errors.New("invalid schedule date")
	ErrInvalidScheduleTime      = errors.New("invalid schedule time")
	ErrScheduleSlotUnavailable  = errors.New("selected time is not available")
)

// ScheduleState is what the scheduling page renders on open: the hand-off
// selection recomputed with the scheduling breakdown, plus the catalog for the
// service chooser shown when nothing is selected.
type ScheduleState struct {
	PageState
	Catalog entities.Catalog
}

// IScheduleUseCase exposes the scheduling page operations.
type IScheduleUseCase interface {
	Open(ctx context.Context, sessionID string) (ScheduleState, error)
	ResolveSelection(ctx context.Context, in SelectionInput) (entities.Selection, error)
	Compute(ctx context.Context, sel entities.Selection) PageState
	Apply(ctx context.Context, sel entities.Selection, cmd entities.Command) (PageState, error)
	Slots(ctx context.Context, date string) ([]string, error)
	Submit(ctx context.Context, req entities.ScheduleRequest) (entities.SubmissionPayload, error)
}

type ScheduleUseCase struct {
	estimates IEstimateUseCase
	catalog   interfaces.ICatalogRepository
	slots     interfaces.ISlotProvider
	order     entities.BreakdownOrder
	metrics   *metrics.EstimateMetrics
	logger    *logging.Logger
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(
	estimates IEstimateUseCase,
	catalog interfaces.ICatalogRepository,
	slots interfaces.ISlotProvider,
	order entities.BreakdownOrder,
	m *metrics.EstimateMetrics,
	logger *logging.Logger,
) *ScheduleUseCase {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleUseCase{estimates: estimates, catalog: catalog, slots: slots, order: order, metrics: m, logger: logger}
}

// Open seeds the page from the session's hand-off record. A missing record is
// a normal cold start and yields the default selection.
func (u *ScheduleUseCase) Open(ctx context.Context, sessionID string) (ScheduleState, error) {
	rec := u.estimates.LoadHandoff(ctx, sessionID)

	cat, err := loadCatalog(ctx, u.catalog)
	if err != nil {
		return ScheduleState{}, err
	}
	return ScheduleState{PageState: u.Compute(ctx, rec.Selection()), Catalog: cat}, nil
}

func (u *ScheduleUseCase) ResolveSelection(ctx context.Context, in SelectionInput) (entities.Selection, error) {
	return resolveSelection(ctx, u.catalog, in)
}

func (u *ScheduleUseCase) Compute(_ context.Context, sel entities.Selection) PageState {
	u.metrics.ObserveComputed(PageSchedule)
	return PageState{Selection: sel, Estimate: entities.ComputeEstimate(sel, u.order)}
}

func (u *ScheduleUseCase) Apply(ctx context.Context, sel entities.Selection, cmd entities.Command) (PageState, error) {
	next, err := applyCommand(ctx, u.catalog, sel, cmd)
	if err != nil {
		return PageState{}, err
	}
	return u.Compute(ctx, next), nil
}

// Slots returns the candidate times for a YYYY-MM-DD date. The result may be
// empty but is never nil.
func (u *ScheduleUseCase) Slots(ctx context.Context, date string) ([]string, error) {
	day, err := parseScheduleDate(date)
	if err != nil {
		return nil, err
	}

	slots, err := u.slots.CandidateSlots(ctx, day)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}

// Submit validates locally and builds the final package. Date and time are
// checked before the service, then their format, then that the time is one of
// the day's candidate slots. A blocked submit produces no payload.
func (u *ScheduleUseCase) Submit(ctx context.Context, req entities.ScheduleRequest) (entities.SubmissionPayload, error) {
	if !req.HasDateTime() {
		u.metrics.ObserveSubmission("blocked")
		return entities.SubmissionPayload{}, ErrScheduleDateTimeRequired
	}
	if !req.Selection.HasService() {
		u.metrics.ObserveSubmission("blocked")
		return entities.SubmissionPayload{}, ErrScheduleServiceRequired
	}

	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	day, err := parseScheduleDate(req.Date)
	if err != nil {
		u.metrics.ObserveSubmission("invalid")
		return entities.SubmissionPayload{}, err
	}
	at, err := time.Parse(entities.TimeLayout, req.Time)
	if err != nil {
		u.metrics.ObserveSubmission("invalid")
		return entities.SubmissionPayload{}, fmt.Errorf("%w: %q", ErrInvalidScheduleTime, req.Time)
	}
	req.Time = at.Format(entities.TimeLayout)

	// Only times offered for that day are accepted; past days offer none.
	slots, err := u.slots.CandidateSlots(ctx, day)
	if err != nil {
		return entities.SubmissionPayload{}, err
	}
	if !slices.Contains(slots, req.Time) {
		u.metrics.ObserveSubmission("blocked")
		return entities.SubmissionPayload{}, fmt.Errorf("%w: %s %s", ErrScheduleSlotUnavailable, req.Date, req.Time)
	}

	payload, err := entities.NewSubmissionPayload(req, u.Compute(ctx, req.Selection).Estimate)
	if err != nil {
		return entities.SubmissionPayload{}, fmt.Errorf("build submission: %w", err)
	}

	u.metrics.ObserveSubmission("accepted")
	u.logger.Info("schedule submitted", "service", req.Selection.Service.ID, "date", req.Date, "time", req.Time, "total", payload.TotalPrice)
	return payload, nil
}

func parseScheduleDate(date string) (time.Time, error) {
	day, err := time.Parse(entities.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidScheduleDate, date)
	}
	return day, nil
}
