package calendar

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"
)

func testResolver(eng *fakeEngine) *Resolver {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))
	return NewResolver(NewCache(eng), logger)
}

func TestResolver_Christmas(t *testing.T) {
	r := testResolver(&fakeEngine{})

	got, err := r.ResolveDate(context.Background(), "2026-12-25", "united-states")
	if err != nil {
		t.Fatalf("ResolveDate failed: %v", err)
	}

	if got.Date != "2026-12-25" {
		t.Errorf("Date = %q, want 2026-12-25", got.Date)
	}
	if !got.IsSolemnity {
		t.Error("IsSolemnity = false, want true")
	}
	if got.IsFeast || got.IsOptional {
		t.Error("IsFeast/IsOptional should be false for a solemnity")
	}
	if !reflect.DeepEqual(got.Color, []string{"white"}) {
		t.Errorf("Color = %v, want [white]", got.Color)
	}
}

func TestResolver_Idempotent(t *testing.T) {
	eng := &fakeEngine{}
	r := testResolver(eng)
	ctx := context.Background()

	first, err := r.ResolveDate(ctx, "2026-12-26", "england")
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.ResolveDate(ctx, "2026-12-26", "england")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("responses differ: %+v vs %+v", first, second)
	}
	if eng.callCount() != 1 {
		t.Errorf("engine calls = %d, want 1 (second resolve must hit the cache)", eng.callCount())
	}
}

func TestResolver_SameDateAcrossDioceses(t *testing.T) {
	r := testResolver(&fakeEngine{})
	ctx := context.Background()

	us, err := r.ResolveDate(ctx, "2026-06-10", "united-states")
	if err != nil {
		t.Fatal(err)
	}
	de, err := r.ResolveDate(ctx, "2026-06-10", "germany")
	if err != nil {
		t.Fatal(err)
	}

	if us.Date != de.Date {
		t.Errorf("date mismatch across dioceses: %q vs %q", us.Date, de.Date)
	}
	// The fake engine embeds the country in the record, so the two
	// calendars genuinely differ.
	if us.ID == de.ID {
		t.Errorf("expected diocese-specific records, both got %q", us.ID)
	}
}

func TestResolver_UnsupportedDiocese(t *testing.T) {
	eng := &fakeEngine{}
	r := testResolver(eng)

	_, err := r.ResolveDate(context.Background(), "2026-12-25", "mexico")
	if err == nil {
		t.Fatal("ResolveDate succeeded, want error")
	}
	if code := CodeOf(err); code != CodeUnsupportedDiocese {
		t.Errorf("code = %q, want %q", code, CodeUnsupportedDiocese)
	}

	// The message enumerates exactly the supported codes.
	for _, want := range Dioceses() {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}

	// Validation precedes any cache or engine interaction.
	if eng.callCount() != 0 {
		t.Errorf("engine calls = %d, want 0", eng.callCount())
	}
}

func TestResolver_InvalidDate(t *testing.T) {
	eng := &fakeEngine{}
	r := testResolver(eng)

	for _, input := range []string{"2026-02-30", "2026-13-01", "25-12-2026", "today"} {
		_, err := r.ResolveDate(context.Background(), input, "united-states")
		if err == nil {
			t.Errorf("ResolveDate(%q) succeeded, want error", input)
			continue
		}
		if code := CodeOf(err); code != CodeInvalidDateFormat {
			t.Errorf("ResolveDate(%q) code = %q, want %q", input, code, CodeInvalidDateFormat)
		}
	}

	if eng.callCount() != 0 {
		t.Errorf("engine calls = %d, want 0 (fail fast)", eng.callCount())
	}
}

func TestResolver_NoDataForDate(t *testing.T) {
	// The fake engine only produces three days, so any other valid
	// date is a legitimate empty result.
	r := testResolver(&fakeEngine{})

	_, err := r.ResolveDate(context.Background(), "2026-03-03", "france")
	if err == nil {
		t.Fatal("ResolveDate succeeded, want error")
	}
	if code := CodeOf(err); code != CodeNoDataForDate {
		t.Errorf("code = %q, want %q", code, CodeNoDataForDate)
	}
}

func TestResolver_EngineFailure(t *testing.T) {
	cause := errors.New("celebration store offline")
	r := testResolver(&fakeEngine{fail: cause})

	_, err := r.ResolveDate(context.Background(), "2026-12-25", "spain")
	if err == nil {
		t.Fatal("ResolveDate succeeded, want error")
	}
	if code := CodeOf(err); code != CodeEngineFailure {
		t.Errorf("code = %q, want %q", code, CodeEngineFailure)
	}
	// The underlying fault stays reachable for operators.
	if !errors.Is(err, cause) {
		t.Error("engine failure does not wrap the underlying cause")
	}
}

func TestResolver_Today(t *testing.T) {
	eng := &fakeEngine{}
	r := testResolver(eng)
	r.now = func() time.Time {
		return time.Date(2026, time.December, 25, 15, 4, 5, 0, time.UTC)
	}

	got, err := r.ResolveToday(context.Background(), "italy")
	if err != nil {
		t.Fatalf("ResolveToday failed: %v", err)
	}
	if got.Date != "2026-12-25" {
		t.Errorf("Date = %q, want 2026-12-25", got.Date)
	}

	if _, err := r.ResolveToday(context.Background(), "mexico"); CodeOf(err) != CodeUnsupportedDiocese {
		t.Errorf("ResolveToday with unknown diocese: code = %q, want %q", CodeOf(err), CodeUnsupportedDiocese)
	}
}
