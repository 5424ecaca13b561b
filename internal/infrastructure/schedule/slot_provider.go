package schedule

import (
	"context"
	"errors"
	"time"
	_ "time/tzdata"

	"sqv_cleaning/internal/config"
	"sqv_cleaning/internal/domain/entities"
	"sqv_cleaning/internal/usecase/interfaces"
)

var ErrInvalidSlotWindow = errors.New("invalid slot window")

// HourlySlotProvider offers fixed candidate times for every day, within
// business hours in the business time zone.
//
// Business rules:
//   - no slots for days before today
//   - same-day slots need LeadTime advance notice
type HourlySlotProvider struct {
	loc       *time.Location
	openHour  int
	closeHour int
	interval  time.Duration
	leadTime  time.Duration
	now       func() time.Time
}

var _ interfaces.ISlotProvider = (*HourlySlotProvider)(nil)

func NewHourlySlotProvider(cfg *config.Config) (*HourlySlotProvider, error) {
	loc, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		return nil, err
	}
	if cfg.SlotOpenHour < 0 || cfg.SlotCloseHour > 23 || cfg.SlotOpenHour > cfg.SlotCloseHour || cfg.SlotInterval <= 0 {
		return nil, ErrInvalidSlotWindow
	}
	return &HourlySlotProvider{
		loc:       loc,
		openHour:  cfg.SlotOpenHour,
		closeHour: cfg.SlotCloseHour,
		interval:  cfg.SlotInterval,
		leadTime:  cfg.SlotLeadTime,
		now:       time.Now,
	}, nil
}

// CandidateSlots returns the slots of date's calendar day, from the opening
// hour to the closing hour inclusive, formatted like "09:00 AM".
func (p *HourlySlotProvider) CandidateSlots(_ context.Context, date time.Time) ([]string, error) {
	now := p.now().In(p.loc)
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, p.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.loc)

	slots := []string{}
	if day.Before(today) {
		return slots, nil
	}

	// Slots are wall-clock times, so DST transition days keep the same window.
	step := int(p.interval / time.Minute)
	if step < 1 {
		step = 1
	}
	earliest := now.Add(p.leadTime)
	for minute := p.openHour * 60; minute <= p.closeHour*60; minute += step {
		t := time.Date(y, m, d, minute/60, minute%60, 0, 0, p.loc)
		if day.Equal(today) && t.Before(earliest) {
			continue
		}
		slots = append(slots, t.Format(entities.TimeLayout))
	}
	return slots, nil
}
