package booking

import (
	"testing"
	"time"
)

func TestWeekday_NoTimezoneDrift(t *testing.T) {
	// 2026-09-07 é segunda-feira; o parse só de data não pode escorregar
	// para domingo por causa de fuso local
	weekday, err := Weekday("2026-09-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weekday != time.Monday {
		t.Fatalf("weekday = %v, want Monday", weekday)
	}
}

func TestWeekday_InvalidDate(t *testing.T) {
	if _, err := Weekday("07/09/2026"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestDefaultHours_BookableDays(t *testing.T) {
	hours := DefaultHours()

	if !hours.Bookable(time.Monday) {
		t.Error("Monday should be bookable")
	}
	if !hours.Bookable(time.Tuesday) {
		t.Error("Tuesday should be bookable")
	}

	for _, d := range []time.Weekday{
		time.Sunday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
	} {
		if hours.Bookable(d) {
			t.Errorf("%v should not be bookable", d)
		}
	}
}

func TestDefaultHours_TuesdayHasTwoWindows(t *testing.T) {
	windows := DefaultHours().WindowsFor(time.Tuesday)
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if windows[0].Start != 8 || windows[0].End != 11.5 {
		t.Errorf("morning window = %+v, want {8 11.5}", windows[0])
	}
	if windows[1].Start != 13 || windows[1].End != 20 {
		t.Errorf("afternoon window = %+v, want {13 20}", windows[1])
	}
}
