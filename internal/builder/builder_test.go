package builder_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/caseflow/go-intake/internal/builder"
	"github.com/caseflow/go-intake/internal/model"
)

func fixedBuilder() *builder.Builder {
	sequence := 0
	return builder.New(
		builder.WithClock(func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}),
		builder.WithIDGenerator(func() string {
			sequence++
			return fmt.Sprintf("form-%04d", sequence)
		}),
	)
}

func TestBuild_InvalidPairFailsWithTaxonomyError(t *testing.T) {
	b := builder.New()

	cases := []struct {
		category    string
		subcategory string
	}{
		{"NotARealCategory", "x"},
		{"Family Law", "NotARealSubcategory"},
		{"", ""},
	}
	for _, tc := range cases {
		form, err := b.Build(tc.category, tc.subcategory)
		if form != nil {
			t.Fatalf("expected no form for %q/%q", tc.category, tc.subcategory)
		}
		var taxErr *builder.TaxonomyError
		if !errors.As(err, &taxErr) {
			t.Fatalf("expected TaxonomyError, got %v", err)
		}
		wantMsg := fmt.Sprintf("Invalid category or subcategory: %s - %s", tc.category, tc.subcategory)
		if err.Error() != wantMsg {
			t.Fatalf("expected message %q, got %q", wantMsg, err.Error())
		}
	}
}

// Every valid pair produces a form carrying the base contact and narrative
// surface from the default routine.
func TestBuild_DefaultSectionsPresentForEveryPair(t *testing.T) {
	b := fixedBuilder()
	tax := b.Taxonomy()

	for _, category := range tax.Categories() {
		for _, subcategory := range tax.Subcategories(category) {
			form, err := b.Build(category, subcategory)
			if err != nil {
				t.Fatalf("%s/%s: %v", category, subcategory, err)
			}

			if form.Type != model.FormTypeIntake {
				t.Fatalf("%s/%s: expected intake form, got %s", category, subcategory, form.Type)
			}
			if form.Status != model.FormStatusDraft {
				t.Fatalf("%s/%s: expected draft status, got %s", category, subcategory, form.Status)
			}
			if form.Category != category || form.Subcategory != subcategory {
				t.Fatalf("%s/%s: form carries %s/%s", category, subcategory, form.Category, form.Subcategory)
			}

			for _, name := range []string{"full_name", "email", "phone"} {
				field, ok := form.FieldByName(name)
				if !ok {
					t.Fatalf("%s/%s: missing field %q", category, subcategory, name)
				}
				if !field.Required {
					t.Fatalf("%s/%s: field %q must be required", category, subcategory, name)
				}
			}

			description, ok := form.FieldByName("description")
			if !ok {
				t.Fatalf("%s/%s: missing description field", category, subcategory)
			}
			if description.Type != model.FieldTypeTextarea || !description.Required {
				t.Fatalf("%s/%s: description must be a required textarea", category, subcategory)
			}
			if description.ValidationRules[model.RuleMinLength] != 50 ||
				description.ValidationRules[model.RuleMaxLength] != 5000 {
				t.Fatalf("%s/%s: description rules %v", category, subcategory, description.ValidationRules)
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	clock := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	id := func() string { return "fixed-id" }

	first := builder.New(builder.WithClock(clock), builder.WithIDGenerator(id))
	second := builder.New(builder.WithClock(clock), builder.WithIDGenerator(id))

	a, err := first.Build("Criminal Law", "Drug Crimes")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := second.Build("Criminal Law", "Drug Crimes")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if diff := cmp.Diff(a.Record(), b.Record()); diff != "" {
		t.Fatalf("builds differ (-first +second):\n%s", diff)
	}
}

func TestBuild_FreshIdentifiersPerCall(t *testing.T) {
	b := fixedBuilder()

	first, err := b.Build("Immigration Law", "Citizenship")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := b.Build("Immigration Law", "Citizenship")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct form ids, both %q", first.ID)
	}
}

func TestBuild_TitleAndDescription(t *testing.T) {
	b := fixedBuilder()
	form, err := b.Build("Employment Law", "Wrongful Termination")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if form.Title != "Employment Law Intake Form" {
		t.Fatalf("unexpected title %q", form.Title)
	}
	if form.Description != "Intake form for Employment Law - Wrongful Termination" {
		t.Fatalf("unexpected description %q", form.Description)
	}
}
