package validation

import (
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/transcriptkit/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("clip_id", "abc")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("clip_id", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("clip_id", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRequiredUUID(t *testing.T) {
	v := New()
	v.RequiredUUID("id", uuid.New().String())
	if v.HasErrors() {
		t.Errorf("expected no errors for valid UUID, got %v", v.Errors())
	}

	v2 := New()
	v2.RequiredUUID("id", "not-a-uuid")
	if !v2.HasErrors() {
		t.Error("expected error for invalid UUID")
	}

	v3 := New()
	v3.RequiredUUID("id", uuid.Nil.String())
	if !v3.HasErrors() {
		t.Error("expected error for nil UUID")
	}
}

func TestValidatorIndex(t *testing.T) {
	v := New()
	v.Index("word_index", 0, 5)
	v.Index("word_index", 4, 5)
	if v.HasErrors() {
		t.Errorf("expected no errors for in-range indices, got %v", v.Errors())
	}

	v2 := New()
	v2.Index("word_index", 5, 5)
	if !v2.HasErrors() {
		t.Error("expected error for index == length")
	}

	v3 := New()
	v3.Index("word_index", -1, 5)
	if !v3.HasErrors() {
		t.Error("expected error for negative index")
	}
}

func TestValidatorInteriorIndex(t *testing.T) {
	v := New()
	v.InteriorIndex("split_index", 2, 5)
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}

	v2 := New()
	v2.InteriorIndex("split_index", 0, 5)
	if !v2.HasErrors() {
		t.Error("expected error for split at 0")
	}

	v3 := New()
	v3.InteriorIndex("split_index", 5, 5)
	if !v3.HasErrors() {
		t.Error("expected error for split at length")
	}
}

func TestValidatorNonNegative(t *testing.T) {
	v := New()
	v.NonNegative("audio_duration", 0)
	v.NonNegative("audio_duration", 12.5)
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}

	v2 := New()
	v2.NonNegative("audio_duration", -0.1)
	if !v2.HasErrors() {
		t.Error("expected error for negative value")
	}
}

func TestValidatorTimeRange(t *testing.T) {
	v := New()
	v.TimeRange("segment", 1.0, 2.0)
	v.TimeRange("segment", 1.0, 1.0)
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}

	v2 := New()
	v2.TimeRange("segment", 2.0, 1.0)
	if !v2.HasErrors() {
		t.Error("expected error for end before start")
	}
}

func TestValidatorValidate_ReturnsEngineError(t *testing.T) {
	v := New()
	v.Required("clip_id", "")
	err := v.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsValidation(err) {
		t.Error("expected a validation EngineError")
	}
}

func TestStructValidate(t *testing.T) {
	type params struct {
		PauseThreshold float64 `json:"pause_threshold" validate:"gt=0"`
		MaxWords       int     `json:"max_words" validate:"gte=1"`
	}

	if err := Validate(params{PauseThreshold: 1.2, MaxWords: 120}); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}

	err := Validate(params{PauseThreshold: 0, MaxWords: 0})
	if err == nil {
		t.Fatal("expected error for invalid struct")
	}
	if !errors.IsValidation(err) {
		t.Error("expected a validation EngineError")
	}
}
