package schedule

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandOccurrences_EveryEightHours(t *testing.T) {
	start := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	got, err := ExpandOccurrences(start, 8, date(2025, 1, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []time.Time{
		time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 16, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
		// La de las 16:00 del día final entra porque el fin efectivo
		// es 23:59:59.999... de ese día.
		time.Date(2025, 1, 2, 16, 0, 0, 0, time.UTC),
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d occurrences, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d: want %v, got %v", i, want[i], got[i])
		}
	}
}

func TestExpandOccurrences_Deterministic(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	a, err := ExpandOccurrences(start, 6, date(2025, 3, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ExpandOccurrences(start, 6, date(2025, 3, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("sequence differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestExpandOccurrences_CountLawAndSpacing(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		hours int
		end   time.Time
	}{
		{"hourly one day", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 1, date(2025, 1, 1)},
		{"every 12h one week", time.Date(2025, 5, 1, 7, 15, 0, 0, time.UTC), 12, date(2025, 5, 7)},
		{"every 48h, skips days", time.Date(2025, 2, 1, 22, 0, 0, 0, time.UTC), 48, date(2025, 2, 10)},
		{"single occurrence", time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC), 24, date(2025, 1, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExpandOccurrences(tc.start, tc.hours, tc.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// Ley de conteo: floor((finEfectivo - S) / h) + 1
			effEnd := EffectiveEnd(tc.end, tc.start.Location())
			step := time.Duration(tc.hours) * time.Hour
			wantN := int(effEnd.Sub(tc.start)/step) + 1
			if len(got) != wantN {
				t.Fatalf("count law: want %d, got %d", wantN, len(got))
			}
			if len(got) != PlannedCount(tc.start, tc.hours, tc.end) {
				t.Fatalf("PlannedCount disagrees with expansion")
			}

			// Estrictamente creciente con espaciado constante.
			for i := 1; i < len(got); i++ {
				if d := got[i].Sub(got[i-1]); d != step {
					t.Fatalf("spacing at %d: want %v, got %v", i, step, d)
				}
			}
			if last := got[len(got)-1]; last.After(effEnd) {
				t.Fatalf("last occurrence %v past effective end %v", last, effEnd)
			}
		})
	}
}

func TestExpandOccurrences_BoundaryInclusion(t *testing.T) {
	// 23:59 del día final entra.
	start := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	got, err := ExpandOccurrences(start, 24, date(2025, 1, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(got))
	}
	if !got[1].Equal(time.Date(2025, 1, 2, 23, 59, 0, 0, time.UTC)) {
		t.Fatalf("expected last at 23:59 of end date, got %v", got[1])
	}

	// 00:01 del día siguiente al final queda fuera.
	start = time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC)
	got, err = ExpandOccurrences(start, 24, date(2025, 1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(got))
	}
}

func TestExpandOccurrences_InvalidFrequency(t *testing.T) {
	start := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	for _, h := range []int{0, -3} {
		if _, err := ExpandOccurrences(start, h, date(2025, 1, 2)); !errors.Is(err, ErrInvalidFrequency) {
			t.Fatalf("h=%d: expected ErrInvalidFrequency, got %v", h, err)
		}
	}
}

func TestExpandOccurrences_StartAfterEnd(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	if _, err := ExpandOccurrences(start, 8, date(2025, 3, 9)); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestExpandOccurrences_RejectsOverCap(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	// Cada hora por un año ≈ 8760 tomas > MaxOccurrences.
	_, err := ExpandOccurrences(start, 1, date(2025, 12, 31))
	if !errors.Is(err, ErrTooManyOccurrences) {
		t.Fatalf("expected ErrTooManyOccurrences, got %v", err)
	}
}

func TestExpandOccurrences_RejectsHugeFrequency(t *testing.T) {
	start := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

	// Por encima del límite, time.Duration(h)*time.Hour desbordaría int64
	// y el paso quedaría negativo; el rechazo tiene que llegar antes de
	// construir la duración.
	// 2562048 es la primera h cuya duración en nanosegundos ya no cabe
	// en int64.
	for _, h := range []int{MaxFrequencyHours + 1, 2562048, 3000000} {
		if _, err := ExpandOccurrences(start, h, date(2025, 1, 2)); !errors.Is(err, ErrInvalidFrequency) {
			t.Fatalf("h=%d: expected ErrInvalidFrequency, got %v", h, err)
		}
		if n := PlannedCount(start, h, date(2025, 1, 2)); n != 0 {
			t.Fatalf("h=%d: PlannedCount = %d, want 0", h, n)
		}
	}

	// El límite mismo sigue siendo válido.
	got, err := ExpandOccurrences(start, MaxFrequencyHours, date(2026, 1, 1))
	if err != nil {
		t.Fatalf("h=MaxFrequencyHours: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("h=MaxFrequencyHours: expected 2 occurrences, got %d", len(got))
	}
}
