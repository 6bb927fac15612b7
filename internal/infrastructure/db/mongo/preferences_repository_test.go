package mongo

import (
	"testing"
	"time"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

func TestInsertFields(t *testing.T) {
	prefs := domain.NewUserPreferences("64b7f0c2a1b2c3d4e5f60718", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	prefs.Tier = "GOLD"

	fields, err := insertFields(prefs)
	if err != nil {
		t.Fatalf("insertFields failed: %v", err)
	}
	if _, ok := fields["_id"]; ok {
		t.Fatalf("_id must come from the upsert filter, got %v", fields["_id"])
	}
	if fields["tier"] != "GOLD" {
		t.Fatalf("game profile fields must be inlined, got %v", fields)
	}
	if fields["language"] != domain.DefaultLanguage || fields["dark_mode"] != true {
		t.Fatalf("defaults missing from insert document: %v", fields)
	}
	if _, ok := fields["division"]; ok {
		t.Fatalf("empty optional fields must be omitted, got %v", fields)
	}
}
