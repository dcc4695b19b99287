package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestFromWallClock_SignConvention(t *testing.T) {
	// offset 240 = UTC-4 (convención getTimezoneOffset): las 08:00
	// locales son las 12:00 UTC.
	local := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	got := FromWallClock(local, 240)

	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	// Offset negativo = local adelantada respecto de UTC.
	got = FromWallClock(local, -120)
	want = time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestWallClock_RoundTrip(t *testing.T) {
	local := time.Date(2025, 11, 15, 22, 45, 30, 0, time.UTC)

	for _, offset := range []int{0, 240, -330, 720} {
		instant := FromWallClock(local, offset)
		back := ToWallClock(instant, offset)

		if back.Hour() != local.Hour() || back.Minute() != local.Minute() ||
			back.Day() != local.Day() || back.Month() != local.Month() {
			t.Fatalf("offset %d: round trip lost the wall clock: %v -> %v", offset, local, back)
		}
	}
}

func TestStartTime_Resolve_Instant(t *testing.T) {
	instant := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	got, utcAssumed, err := StartTime{Instant: &instant}.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if utcAssumed {
		t.Fatal("instant variant must not report UTC assumption")
	}
	if !got.Equal(instant) {
		t.Fatalf("want %v, got %v", instant, got)
	}
}

func TestStartTime_Resolve_LocalWithOffset(t *testing.T) {
	offset := 240
	got, utcAssumed, err := StartTime{
		LocalWallClock: "2025-06-01T08:00",
		OffsetMinutes:  &offset,
	}.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if utcAssumed {
		t.Fatal("offset was supplied, must not assume UTC")
	}
	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestStartTime_Resolve_LocalNoOffsetAssumesUTC(t *testing.T) {
	got, utcAssumed, err := StartTime{LocalWallClock: "2025-06-01T08:00"}.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utcAssumed {
		t.Fatal("missing offset must be flagged, not silent")
	}
	want := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestStartTime_Resolve_Missing(t *testing.T) {
	_, _, err := StartTime{}.Resolve()

	var mf *MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if mf.Field != "start_date" {
		t.Fatalf("expected start_date field, got %q", mf.Field)
	}
}

func TestStartTime_Resolve_AcceptsSeconds(t *testing.T) {
	offset := 0
	got, _, err := StartTime{
		LocalWallClock: "2025-06-01T08:00:30",
		OffsetMinutes:  &offset,
	}.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Second() != 30 {
		t.Fatalf("seconds lost: %v", got)
	}
}
