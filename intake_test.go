package intake_test

import (
	"testing"
	"time"

	intake "github.com/caseflow/go-intake"
	"github.com/caseflow/go-intake/pkg/builder"
	"github.com/caseflow/go-intake/pkg/testsupport"
)

func TestGenerateForm_LandlordTenantEndToEnd(t *testing.T) {
	result := intake.GenerateForm("Landlord/Tenant Law", "General Landlord and Tenant Issues")
	if result.Status != intake.StatusSuccess {
		t.Fatalf("expected success, got %s (%s)", result.Status, result.Message)
	}
	if result.Form == nil {
		t.Fatal("success result must carry a form")
	}

	form := result.Form
	if form.Type != "intake" || form.Status != "draft" {
		t.Fatalf("unexpected type/status: %s/%s", form.Type, form.Status)
	}
	if len(form.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(form.Sections))
	}
	wantTitles := []string{
		"Personal Information",
		"Case Information",
		"Rental Property Information",
		"Issue Information",
	}
	for i, want := range wantTitles {
		if form.Sections[i].Title != want {
			t.Fatalf("section %d: expected %q, got %q", i, want, form.Sections[i].Title)
		}
	}
	if form.ID == "" || form.CreatedAt == "" || form.UpdatedAt == "" {
		t.Fatal("form must carry id and timestamps")
	}
}

func TestGenerateForm_InvalidPair(t *testing.T) {
	result := intake.GenerateForm("NotARealCategory", "x")
	if result.Status != intake.StatusError {
		t.Fatalf("expected error status, got %s", result.Status)
	}
	if result.Form != nil {
		t.Fatal("error result must not carry a form")
	}
	want := "Invalid category or subcategory: NotARealCategory - x"
	if result.Message != want {
		t.Fatalf("expected message %q, got %q", want, result.Message)
	}
}

func TestGenerateForm_DeterministicContent(t *testing.T) {
	clock := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	id := func() string { return "fixed" }

	first := intake.NewGenerator(builder.WithClock(clock), builder.WithIDGenerator(id))
	second := intake.NewGenerator(builder.WithClock(clock), builder.WithIDGenerator(id))

	a := first.GenerateForm("Wills, Trusts, & Estates Law", "Estate Planning")
	b := second.GenerateForm("Wills, Trusts, & Estates Law", "Estate Planning")
	if a.Status != intake.StatusSuccess || b.Status != intake.StatusSuccess {
		t.Fatalf("expected success, got %s / %s", a.Status, b.Status)
	}
	if diff := testsupport.CompareGolden(a.Form, b.Form); diff != "" {
		t.Fatalf("generation not deterministic (-first +second):\n%s", diff)
	}
}

func TestDefaultTaxonomy_Exposed(t *testing.T) {
	tax := intake.DefaultTaxonomy()
	if got := len(tax.Categories()); got != 13 {
		t.Fatalf("expected 13 categories, got %d", got)
	}
}
