package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/studiobarber49/agendamento-api/internal/domain/booking"
	"github.com/studiobarber49/agendamento-api/internal/models"
	"github.com/studiobarber49/agendamento-api/internal/store"
)

// 2026-09-07 = segunda (13–20), 2026-09-09 = quarta (sem atendimento)

func TestResolve_SubtractsBookedTimes(t *testing.T) {
	fake := newFakeStore()
	fake.appointments = []models.Appointment{
		{ID: "1", Date: "2026-09-07", Time: "13:00"},
	}
	r := NewResolver(domain.DefaultHours(), fake)

	slots, err := r.Resolve(context.Background(), "2026-09-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 14 {
		t.Fatalf("expected 14 slots (15 - 1 booked), got %d", len(slots))
	}
	if slots[0] != "13:30" {
		t.Errorf("first available slot = %q, want 13:30", slots[0])
	}
	for _, s := range slots {
		if s == "13:00" {
			t.Error("booked slot 13:00 should not be available")
		}
	}
}

func TestResolve_NonBookableDayIsEmptyWithoutStoreCall(t *testing.T) {
	fake := newFakeStore()
	r := NewResolver(domain.DefaultHours(), fake)

	slots, err := r.Resolve(context.Background(), "2026-09-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
	if fake.fetchCalls != 0 {
		t.Errorf("store should not be queried for a non-bookable day, got %d calls", fake.fetchCalls)
	}
}

func TestResolve_MalformedDateIsEmpty(t *testing.T) {
	r := NewResolver(domain.DefaultHours(), newFakeStore())

	slots, err := r.Resolve(context.Background(), "07/09/2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestResolve_StoreFailureIsNotFullyBooked(t *testing.T) {
	fake := newFakeStore()
	fake.failFetch = true
	r := NewResolver(domain.DefaultHours(), fake)

	slots, err := r.Resolve(context.Background(), "2026-09-07")
	if err == nil {
		t.Fatal("expected error when store is down")
	}
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("error should wrap store.ErrUnavailable, got %v", err)
	}
	if slots != nil {
		t.Errorf("no slots should be reported on failure, got %v", slots)
	}
}

func TestResolve_CachesUntilInvalidated(t *testing.T) {
	fake := newFakeStore()
	r := NewResolver(domain.DefaultHours(), fake)
	ctx := context.Background()

	if _, err := r.Resolve(ctx, "2026-09-07"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Resolve(ctx, "2026-09-07"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.fetchCalls != 1 {
		t.Fatalf("expected 1 store call (second resolve cached), got %d", fake.fetchCalls)
	}

	r.Invalidate("2026-09-07")
	if _, err := r.Resolve(ctx, "2026-09-07"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.fetchCalls != 2 {
		t.Fatalf("expected refetch after invalidate, got %d calls", fake.fetchCalls)
	}

	if _, err := r.Refresh(ctx, "2026-09-07"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.fetchCalls != 3 {
		t.Fatalf("Refresh must bypass the cache, got %d calls", fake.fetchCalls)
	}
}

func TestResolve_SubsetOfGeneratedSlots(t *testing.T) {
	fake := newFakeStore()
	fake.appointments = []models.Appointment{
		{ID: "1", Date: "2026-09-08", Time: "08:00"},
		{ID: "2", Date: "2026-09-08", Time: "13:30"},
	}
	r := NewResolver(domain.DefaultHours(), fake)

	slots, err := r.Resolve(context.Background(), "2026-09-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := domain.SlotsFor(domain.DefaultHours(), time.Tuesday)
	allSet := make(map[string]bool, len(all))
	for _, s := range all {
		allSet[s] = true
	}

	for _, s := range slots {
		if !allSet[s] {
			t.Errorf("slot %q not in the generated grid", s)
		}
		if s == "08:00" || s == "13:30" {
			t.Errorf("booked slot %q leaked into availability", s)
		}
	}
	if len(slots) != len(all)-2 {
		t.Errorf("len = %d, want %d", len(slots), len(all)-2)
	}
}
