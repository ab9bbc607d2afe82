package timezone_test

import (
	"testing"
	"time"

	"github.com/gakiokevin/myhotel/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if now.Location() != timezone.GetLocation() {
		t.Error("expected Now() to carry the application location")
	}
}

func TestGetLocation(t *testing.T) {
	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Error("expected conversion to preserve the instant")
	}

	if appTime.Location() != timezone.GetLocation() {
		t.Error("expected converted time to use the application location")
	}
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-03-01")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.IsZero() {
		t.Error("Parse() returned a zero time")
	}

	if formatted := timezone.Format(parsed, "20060102"); formatted != "20250301" {
		t.Errorf("expected 20250301, got %s", formatted)
	}
}
