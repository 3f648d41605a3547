package core

import (
	"testing"
	"time"
)

func TestDayKeyFormat(t *testing.T) {
	got := DayKey(time.Date(2024, 1, 2, 15, 4, 5, 0, time.Local))
	if got != "2024-01-02" {
		t.Errorf("expected 2024-01-02, got %s", got)
	}
}

func TestDayKeyUsesLocalMidnightBoundary(t *testing.T) {
	justBefore := time.Date(2024, 6, 10, 23, 59, 59, 0, time.Local)
	justAfter := time.Date(2024, 6, 11, 0, 0, 1, 0, time.Local)

	if DayKey(justBefore) == DayKey(justAfter) {
		t.Error("local midnight must be a day boundary")
	}
	if DayKey(justBefore) != "2024-06-10" || DayKey(justAfter) != "2024-06-11" {
		t.Errorf("got %s and %s", DayKey(justBefore), DayKey(justAfter))
	}
}

func TestDayKeyStableWithinDay(t *testing.T) {
	morning := time.Date(2024, 6, 10, 6, 0, 0, 0, time.Local)
	evening := time.Date(2024, 6, 10, 22, 30, 0, 0, time.Local)

	if DayKey(morning) != DayKey(evening) {
		t.Errorf("same calendar day must share a key, got %s and %s", DayKey(morning), DayKey(evening))
	}
}
