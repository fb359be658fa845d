package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ovenpanel/internal/models"
)

// fakeEventRepo is a minimal stub that satisfies the repository.EventRepo interface.
type fakeEventRepo struct {
	// captured inputs
	gotFrom time.Time
	gotTo   time.Time
	gotType string

	// configured outputs
	events []models.PanelEvent
	err    error

	calls int
}

func (f *fakeEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.PanelEvent, error) {
	f.calls++
	f.gotFrom = from
	f.gotTo = to
	f.gotType = typ
	return f.events, f.err
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.PanelEvent) error {
	return nil
}

func fixedZone(name string, offsetSec int) *time.Location {
	return time.FixedZone(name, offsetSec)
}

func mustTimeIn(loc *time.Location, y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func Test_normalizeToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want func(time.Time) bool
	}{
		{
			name: "zero time remains zero",
			in:   time.Time{},
			want: func(out time.Time) bool { return out.IsZero() },
		},
		{
			name: "non-UTC converted to UTC preserving instant",
			in:   mustTimeIn(fixedZone("UTC+3", 3*3600), 2026, time.August, 1, 12, 34, 56),
			want: func(out time.Time) bool {
				exp := time.Date(2026, time.August, 1, 9, 34, 56, 0, time.UTC) // 12:34:56+03 == 09:34:56Z
				return out.Location() == time.UTC && out.Equal(exp)
			},
		},
		{
			name: "already UTC stays UTC and same instant",
			in:   time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC),
			want: func(out time.Time) bool {
				exp := time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)
				return out.Location() == time.UTC && out.Equal(exp)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := normalizeToUTC(tc.in)
			if !tc.want(got) {
				t.Fatalf("unexpected normalizeToUTC result: %v (loc=%v)", got, got.Location())
			}
		})
	}
}

func Test_normalizeEventType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		exp  string
	}{
		{name: "empty stays empty", in: "", exp: ""},
		{name: "trim spaces", in: "  SWEEP ", exp: "SWEEP"},
		{name: "uppercase", in: "calibrate", exp: "CALIBRATE"},
		{name: "spaces preserved except ends", in: " temp_change ", exp: "TEMP_CHANGE"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := normalizeEventType(c.in)
			if got != c.exp {
				t.Fatalf("normalizeEventType(%q) = %q; want %q", c.in, got, c.exp)
			}
		})
	}
}

func TestEventLogService_List(t *testing.T) {
	t.Parallel()

	fromLocal := mustTimeIn(fixedZone("UTC+2", 2*3600), 2026, time.August, 10, 10, 0, 0)
	toUTC := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)

	t.Run("normalizes filter before hitting the repo", func(t *testing.T) {
		t.Parallel()
		repo := &fakeEventRepo{events: []models.PanelEvent{{EventID: "e1"}}}
		svc := NewEventLogService(repo)

		got, err := svc.List(context.Background(), LogFilter{
			From: fromLocal,
			To:   toUTC,
			Type: " temp_change ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].EventID != "e1" {
			t.Fatalf("unexpected events: %+v", got)
		}
		if repo.calls != 1 {
			t.Fatalf("repo called %d times, want 1", repo.calls)
		}
		if repo.gotFrom.Location() != time.UTC || !repo.gotFrom.Equal(fromLocal) {
			t.Fatalf("from not normalized: %v", repo.gotFrom)
		}
		if repo.gotType != "TEMP_CHANGE" {
			t.Fatalf("type not normalized: %q", repo.gotType)
		}
	})

	t.Run("rejects inverted range without touching the repo", func(t *testing.T) {
		t.Parallel()
		repo := &fakeEventRepo{}
		svc := NewEventLogService(repo)

		_, err := svc.List(context.Background(), LogFilter{
			From: toUTC,
			To:   toUTC.Add(-time.Hour),
		})
		if !errors.Is(err, errInvalidTimeRange) {
			t.Fatalf("expected errInvalidTimeRange, got %v", err)
		}
		if repo.calls != 0 {
			t.Fatalf("repo must not be called on invalid filter")
		}
	})

	t.Run("propagates repo error", func(t *testing.T) {
		t.Parallel()
		repo := &fakeEventRepo{err: errors.New("db down")}
		svc := NewEventLogService(repo)

		if _, err := svc.List(context.Background(), LogFilter{}); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}
