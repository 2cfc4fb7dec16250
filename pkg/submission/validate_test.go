package submission_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/caseflow/go-intake/pkg/builder"
	"github.com/caseflow/go-intake/pkg/model"
	"github.com/caseflow/go-intake/pkg/submission"
)

func landlordForm(t *testing.T) *model.Form {
	t.Helper()
	form, err := builder.New().Build("Landlord/Tenant Law", "Evictions")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return form
}

func validAnswers() map[string]any {
	return map[string]any{
		"full_name":         "Jordan Matthews",
		"email":             "jordan@example.com",
		"phone":             "+1 (555) 010-2000",
		"description":       "My landlord served an eviction notice even though rent was paid on time every month this year and I have receipts for each payment.",
		"property_address":  "12 Elm Street, Springfield",
		"lease_type":        "Fixed Term",
		"lease_start":       "2023-09-01",
		"monthly_rent":      "1850",
		"security_deposit":  1850,
		"party_type":        "Tenant",
		"issue_type":        "Eviction",
		"issue_date":        "2025-05-12",
		"issue_description": "I received a three day notice to vacate despite having paid rent in full and on schedule for the entire lease period.",
		"prior_notice":      "Yes",
	}
}

func TestValidate_AcceptsValidSubmission(t *testing.T) {
	form := landlordForm(t)

	result := submission.Validate(form, validAnswers())
	if !result.IsValid {
		t.Fatalf("expected valid submission, errors: %v", result.Errors)
	}

	if got := result.Validated["phone"]; got != "15550102000" {
		t.Fatalf("expected cleaned phone digits, got %v", got)
	}
	if got := result.Validated["monthly_rent"]; got != float64(1850) {
		t.Fatalf("expected coerced number, got %v (%T)", got, got)
	}
	start, ok := result.Validated["lease_start"].(time.Time)
	if !ok || start.Format("2006-01-02") != "2023-09-01" {
		t.Fatalf("expected parsed date, got %v", result.Validated["lease_start"])
	}
	// notice_date is optional and absent.
	if _, ok := result.Validated["notice_date"]; ok {
		t.Fatal("absent optional field must not appear in validated data")
	}
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	form := landlordForm(t)

	answers := validAnswers()
	answers["email"] = "not-an-email"
	answers["phone"] = "123"
	answers["issue_type"] = "Parking Dispute"
	answers["issue_description"] = "too short"
	delete(answers, "full_name")

	result := submission.Validate(form, answers)
	if result.IsValid {
		t.Fatal("expected invalid submission")
	}

	wantErrors := map[string]string{
		"full_name":         "This field is required",
		"email":             "Invalid email format",
		"phone":             "Invalid phone number length",
		"issue_description": "Minimum length is 50 characters",
	}
	for field, message := range wantErrors {
		if got := result.Errors[field]; got != message {
			t.Fatalf("field %q: expected %q, got %q", field, message, got)
		}
	}
	if _, ok := result.Errors["issue_type"]; !ok {
		t.Fatal("expected issue_type rejection for non-member selection")
	}
	// Valid fields still validate in the same pass.
	if _, ok := result.Validated["property_address"]; !ok {
		t.Fatal("expected property_address in validated data")
	}
}

func TestValidate_SanitizesMarkup(t *testing.T) {
	form := landlordForm(t)

	answers := validAnswers()
	answers["property_address"] = "<script>alert('x')</script>12 Elm Street"

	result := submission.Validate(form, answers)
	got, _ := result.Validated["property_address"].(string)
	if got != "12 Elm Street" {
		t.Fatalf("expected markup stripped, got %q", got)
	}
}

func TestValidateField_Checkbox(t *testing.T) {
	field := model.MustField("agree", "Agreement", model.FieldTypeCheckbox)

	got, err := submission.ValidateField(field, "true")
	if err != nil || got != true {
		t.Fatalf("expected true, got %v (%v)", got, err)
	}
	if _, err := submission.ValidateField(field, "maybe"); err == nil {
		t.Fatal("expected error for non-boolean value")
	}
}

func TestValidateField_Multiselect(t *testing.T) {
	field := model.MustField("claims", "Claims", model.FieldTypeMultiselect,
		model.WithOptions("Negligence", "Breach of Warranty", "Fraud"))

	got, err := submission.ValidateField(field, []any{"Fraud", "Negligence"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if diff := cmp.Diff([]string{"Fraud", "Negligence"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := submission.ValidateField(field, []any{"Fraud", "Arson"}); err == nil {
		t.Fatal("expected rejection of non-member selection")
	}
}

func TestFilterPrefill(t *testing.T) {
	form := landlordForm(t)

	prefilled := map[string]any{
		"full_name":    "Jordan Matthews",
		"monthly_rent": "1850",
		"lease_type":   "Ground Lease",  // not an option: dropped
		"spouse_name":  "Alex Matthews", // unknown field: dropped
		"phone":        "call me",       // invalid: dropped
	}

	got := submission.FilterPrefill(form, prefilled)
	want := map[string]any{
		"full_name":    "Jordan Matthews",
		"monthly_rent": float64(1850),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
