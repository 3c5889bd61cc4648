package booking

import (
	"testing"
	"time"
)

func TestGenerateSlots_SingleWindow(t *testing.T) {
	slots := GenerateSlots([]Window{{Start: 13, End: 20}}, 30*time.Minute)

	if len(slots) != 15 {
		t.Fatalf("expected 15 slots, got %d", len(slots))
	}
	if slots[0] != "13:00" {
		t.Errorf("first slot = %q, want 13:00", slots[0])
	}
	if slots[1] != "13:30" {
		t.Errorf("second slot = %q, want 13:30", slots[1])
	}
	if slots[len(slots)-1] != "20:00" {
		t.Errorf("last slot = %q, want 20:00", slots[len(slots)-1])
	}
}

func TestGenerateSlots_MultipleWindowsConcatenateInOrder(t *testing.T) {
	slots := GenerateSlots([]Window{
		{Start: 8, End: 11.5},
		{Start: 13, End: 20},
	}, 30*time.Minute)

	if len(slots) != 23 {
		t.Fatalf("expected 23 slots (8 morning + 15 afternoon), got %d", len(slots))
	}
	if slots[0] != "08:00" {
		t.Errorf("first slot = %q, want 08:00", slots[0])
	}
	if slots[7] != "11:30" {
		t.Errorf("last morning slot = %q, want 11:30", slots[7])
	}
	if slots[8] != "13:00" {
		t.Errorf("first afternoon slot = %q, want 13:00", slots[8])
	}
}

func TestGenerateSlots_UnalignedEndStopsAtLastReachable(t *testing.T) {
	// 10.25 = 10:15 não cai no passo de 30min; a janela termina em 10:00
	slots := GenerateSlots([]Window{{Start: 9, End: 10.25}}, 30*time.Minute)

	want := []string{"09:00", "09:30", "10:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d (%v)", len(want), len(slots), slots)
	}
	for i, w := range want {
		if slots[i] != w {
			t.Errorf("slot[%d] = %q, want %q", i, slots[i], w)
		}
	}
}

func TestGenerateSlots_StrictlyIncreasingWithinWindow(t *testing.T) {
	for weekday, windows := range DefaultHours() {
		for _, w := range windows {
			slots := GenerateSlots([]Window{w}, SlotInterval)
			for i := 1; i < len(slots); i++ {
				if slots[i] <= slots[i-1] {
					t.Errorf("%v window %+v: slot %q not after %q", weekday, w, slots[i], slots[i-1])
				}
			}
		}
	}
}

func TestGenerateSlots_EmptyWindows(t *testing.T) {
	if slots := GenerateSlots(nil, 30*time.Minute); len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}
