package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"sqv_cleaning/internal/domain/entities"
	mock_interfaces "sqv_cleaning/internal/usecase/interfaces/mocks"
	"sqv_cleaning/pkg/logging"

	"go.uber.org/mock/gomock"
)

type scheduleFixture struct {
	uc    *ScheduleUseCase
	store *mock_interfaces.MockIHandoffStore
	slots *mock_interfaces.MockISlotProvider
}

func newScheduleFixture(ctrl *gomock.Controller) scheduleFixture {
	catalog := catalogMock(ctrl)
	store := mock_interfaces.NewMockIHandoffStore(ctrl)
	slots := mock_interfaces.NewMockISlotProvider(ctrl)
	estimates := NewEstimateUseCase(catalog, store, time.Hour, entities.BreakdownBaseFirst, nil, logging.Discard())
	uc := NewScheduleUseCase(estimates, catalog, slots, entities.BreakdownBaseLast, nil, logging.Discard())
	return scheduleFixture{uc: uc, store: store, slots: slots}
}

func TestScheduleUseCase_Open(t *testing.T) {
	t.Run("cold start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newScheduleFixture(ctrl)
		f.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)

		state, err := f.uc.Open(context.Background(), testSessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.HasService() || state.Selection.Rooms != "1" || state.Selection.Bathrooms != "1" {
			t.Fatalf("expected default selection, got %+v", state.Selection)
		}
		if !state.Estimate.Total.IsZero() {
			t.Fatalf("expected zero total, got %s", state.Estimate.Total)
		}
		if len(state.Catalog.Services) != 2 {
			t.Fatalf("expected service chooser entries, got %+v", state.Catalog)
		}
	})

	t.Run("seeded from handoff with scheduling breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newScheduleFixture(ctrl)

		sel := entities.NewSelection().SelectService(standardSvc).SetRooms("3").SetBathrooms("2").ToggleOption(ecoOpt, true)
		data, err := entities.EncodeHandoff(entities.NewHandoffRecord(sel, entities.ComputeEstimate(sel, entities.BreakdownBaseFirst)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.store.EXPECT().Get(gomock.Any(), "cleaningEstimateData:"+testSessionID).Return(data, nil)

		state, err := f.uc.Open(context.Background(), testSessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{
			"Standard Cleaning (Rooms: 3): $90.00",
			"Standard Cleaning (Bathrooms: 2): $40.00",
			"Standard Cleaning (Base): $100.00",
			"Eco-Friendly Products: $20.00",
		}
		if !reflect.DeepEqual(state.Estimate.Breakdown, want) {
			t.Fatalf("unexpected breakdown: %v", state.Estimate.Breakdown)
		}
		if state.Estimate.Total.StringFixed(2) != "250.00" {
			t.Fatalf("expected 250.00, got %s", state.Estimate.Total.StringFixed(2))
		}
	})
}

func TestScheduleUseCase_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newScheduleFixture(ctrl)

	state, err := f.uc.Apply(context.Background(), entities.NewSelection(), entities.Command{Type: entities.CommandSelectService, ID: "standard"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.HasService() || state.Estimate.Breakdown[len(state.Estimate.Breakdown)-1] != "Standard Cleaning (Base): $100.00" {
		t.Fatalf("unexpected state: %+v", state)
	}

	if _, err := f.uc.Apply(context.Background(), entities.NewSelection(), entities.Command{Type: "drag"}); !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
}

func TestScheduleUseCase_Slots(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newScheduleFixture(ctrl)

		for _, d := range []string{"", "10/20/2026", "2026-13-01"} {
			if _, err := f.uc.Slots(context.Background(), d); !errors.Is(err, ErrInvalidScheduleDate) {
				t.Fatalf("%q: expected ErrInvalidScheduleDate, got %v", d, err)
			}
		}
	})

	t.Run("provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newScheduleFixture(ctrl)
		f.slots.EXPECT().CandidateSlots(gomock.Any(), gomock.Any()).Return(nil, errors.New("calendar"))

		if _, err := f.uc.Slots(context.Background(), "2026-10-20"); err == nil || err.Error() != "calendar" {
			t.Fatalf("expected calendar error, got %v", err)
		}
	})

	t.Run("none available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newScheduleFixture(ctrl)
		f.slots.EXPECT().CandidateSlots(gomock.Any(), gomock.Any()).Return(nil, nil)

		slots, err := f.uc.Slots(context.Background(), "2026-10-20")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slots == nil || len(slots) != 0 {
			t.Fatalf("expected empty non-nil slots, got %#v", slots)
		}
	})

	t.Run("delegates parsed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newScheduleFixture(ctrl)
		f.slots.EXPECT().CandidateSlots(gomock.Any(), time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)).Return([]string{"09:00 AM", "10:00 AM"}, nil)

		slots, err := f.uc.Slots(context.Background(), " 2026-10-20 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(slots, []string{"09:00 AM", "10:00 AM"}) {
			t.Fatalf("unexpected slots: %v", slots)
		}
	})
}

func TestScheduleUseCase_Submit(t *testing.T) {
	withService := entities.NewSelection().SelectService(standardSvc).SetRooms("3").SetBathrooms("2")

	cases := []struct {
		name string
		req  entities.ScheduleRequest
		want error
	}{
		{name: "service but no time", req: entities.ScheduleRequest{Selection: withService, Date: "2026-10-20"}, want: ErrScheduleDateTimeRequired},
		{name: "nothing chosen reports date first", req: entities.ScheduleRequest{Selection: entities.NewSelection()}, want: ErrScheduleDateTimeRequired},
		{name: "no service", req: entities.ScheduleRequest{Selection: entities.NewSelection().ToggleOption(ecoOpt, true), Date: "2026-10-20", Time: "09:00 AM"}, want: ErrScheduleServiceRequired},
		{name: "malformed date", req: entities.ScheduleRequest{Selection: withService, Date: "tomorrow", Time: "09:00 AM"}, want: ErrInvalidScheduleDate},
		{name: "malformed time", req: entities.ScheduleRequest{Selection: withService, Date: "2026-10-20", Time: "banana"}, want: ErrInvalidScheduleTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newScheduleFixture(ctrl)

			payload, err := f.uc.Submit(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if payload != (entities.SubmissionPayload{}) {
				t.Fatalf("blocked submit must not produce a payload: %+v", payload)
			}
		})
	}

	t.Run("time not offered for the day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newScheduleFixture(ctrl)
		f.slots.EXPECT().CandidateSlots(gomock.Any(), time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)).Return([]string{}, nil)

		payload, err := f.uc.Submit(context.Background(), entities.ScheduleRequest{Selection: withService, Date: "2026-10-18", Time: "09:00 AM"})
		if !errors.Is(err, ErrScheduleSlotUnavailable) {
			t.Fatalf("expected ErrScheduleSlotUnavailable, got %v", err)
		}
		if payload != (entities.SubmissionPayload{}) {
			t.Fatalf("blocked submit must not produce a payload: %+v", payload)
		}
	})

	t.Run("slot provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newScheduleFixture(ctrl)
		f.slots.EXPECT().CandidateSlots(gomock.Any(), gomock.Any()).Return(nil, errors.New("calendar"))

		if _, err := f.uc.Submit(context.Background(), entities.ScheduleRequest{Selection: withService, Date: "2026-10-20", Time: "09:00 AM"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newScheduleFixture(ctrl)
		f.slots.EXPECT().CandidateSlots(gomock.Any(), time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)).Return([]string{"09:00 AM", "10:00 AM"}, nil)

		payload, err := f.uc.Submit(context.Background(), entities.ScheduleRequest{
			Selection: withService.ToggleOption(petOpt, true),
			Date:      "2026-10-20",
			Time:      " 09:00 AM ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.TotalPrice != "280.00" || payload.Date != "2026-10-20" || payload.Time != "09:00 AM" {
			t.Fatalf("unexpected payload: %+v", payload)
		}
		if payload.RoomCount != "3" || payload.BathroomCount != "2" {
			t.Fatalf("unexpected counts: %+v", payload)
		}
		if payload.Options != `{"petFriendly":{"name":"Pet-Friendly Cleaning","price":50}}` {
			t.Fatalf("unexpected options: %s", payload.Options)
		}
	})
}
