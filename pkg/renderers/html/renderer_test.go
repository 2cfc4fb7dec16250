package html_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/caseflow/go-intake/pkg/builder"
	"github.com/caseflow/go-intake/pkg/model"
	"github.com/caseflow/go-intake/pkg/renderers/html"
)

func newRenderer(t *testing.T) *html.Renderer {
	t.Helper()

	renderer, err := html.New()
	if err != nil {
		t.Fatalf("construct renderer: %v", err)
	}
	return renderer
}

func TestRenderBuilderForm(t *testing.T) {
	form, err := builder.New().Build("Criminal Law", "Drunk Driving/DUI/DWI")
	if err != nil {
		t.Fatalf("build form: %v", err)
	}

	out, err := newRenderer(t).Render(context.Background(), form)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		"<h1>Criminal Law Intake Form</h1>",
		"<legend>Personal Information</legend>",
		"<legend>Case Information</legend>",
		`data-category="Criminal Law"`,
		`name="full_name"`,
		`<textarea id="description" name="description" required`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("rendered document missing %q", want)
		}
	}
}

func TestRenderSelectOptions(t *testing.T) {
	form, err := builder.New().Build("Bankruptcy, Finances, & Tax Law", "Consumer Bankruptcy")
	if err != nil {
		t.Fatalf("build form: %v", err)
	}

	out, err := newRenderer(t).Render(context.Background(), form)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := string(out)

	if !strings.Contains(doc, `<option value="Chapter 7">Chapter 7</option>`) {
		t.Error("select options should be rendered as option elements")
	}
}

func TestRenderSanitizesHelpText(t *testing.T) {
	form := model.NewForm("form-1", "Intake Form", "Family Law", "Divorce", "",
		time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC))
	section := model.NewSection("Details", "")
	section.AddField(model.MustField("notes", "Notes", model.FieldTypeText,
		model.WithHelpText(`<script>alert(1)</script>Call the office for help`)))
	form.AddSection(section)

	out, err := newRenderer(t).Render(context.Background(), form)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := string(out)

	if strings.Contains(doc, "<script>") || strings.Contains(doc, "alert(1)") {
		t.Fatal("help text markup must be stripped")
	}
	if !strings.Contains(doc, "Call the office for help") {
		t.Fatal("help text content should survive sanitization")
	}
}

func TestRenderNilForm(t *testing.T) {
	if _, err := newRenderer(t).Render(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil form")
	}
}

func TestRenderCancelledContext(t *testing.T) {
	form, err := builder.New().Build("Family Law", "Adoptions")
	if err != nil {
		t.Fatalf("build form: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newRenderer(t).Render(ctx, form); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
