package ops_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/valpere/notedoc/internal/ops"
)

// The Docs API consumer depends on these exact shapes; the assertions compare
// full serialized strings rather than individual fields.

func TestInsertText_WireShape(t *testing.T) {
	req := ops.NewInsertText(1, "Title\n")

	got, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"insertText":{"location":{"index":1},"text":"Title\n"}}`
	if string(got) != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestUpdateParagraphStyle_WireShape(t *testing.T) {
	req := ops.NewUpdateParagraphStyle(1, 6, ops.NamedStyleHeading(1))

	got, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"updateParagraphStyle":{"range":{"startIndex":1,"endIndex":6},` +
		`"paragraphStyle":{"namedStyleType":"HEADING_1"},"fields":"namedStyleType"}}`
	if string(got) != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestBoldTextStyle_WireShape(t *testing.T) {
	req := ops.NewBoldTextStyle(7, 14)

	got, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"updateTextStyle":{"range":{"startIndex":7,"endIndex":14},` +
		`"textStyle":{"bold":true},"fields":"bold"}}`
	if string(got) != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestCreateParagraphBullets_WireShape(t *testing.T) {
	req := ops.NewCreateParagraphBullets(1, 5, ops.BulletCheckbox)

	got, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"createParagraphBullets":{"range":{"startIndex":1,"endIndex":5},` +
		`"bulletPreset":"BULLET_CHECKBOX"}}`
	if string(got) != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRequest_OnlyVariantKeyPresent(t *testing.T) {
	got, err := json.Marshal(ops.NewInsertText(3, "x"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, key := range []string{"updateParagraphStyle", "updateTextStyle", "createParagraphBullets"} {
		if strings.Contains(string(got), key) {
			t.Errorf("unset variant %q leaked into output: %s", key, got)
		}
	}
}

func TestNamedStyleHeading(t *testing.T) {
	if got := ops.NamedStyleHeading(3); got != "HEADING_3" {
		t.Errorf("expected HEADING_3, got %q", got)
	}
}
