package ai

import (
	"errors"
	"testing"
)

// --- array replies ---

func TestExtract_FencedArray(t *testing.T) {
	content := "Here are your reminders:\n```json\n[{\"title\":\"Call mom\",\"date\":\"2025-03-01\",\"time\":\"18:00\"}]\n```\nAnything else?"
	ex, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if ex.Single != nil {
		t.Error("expected an array extraction, got a single object")
	}
	if len(ex.Drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(ex.Drafts))
	}
	d := ex.Drafts[0]
	if d.Title != "Call mom" || d.Date != "2025-03-01" || d.Time != "18:00" {
		t.Errorf("unexpected draft: %+v", d)
	}
}

func TestExtract_FencedArrayNoLanguageTag(t *testing.T) {
	content := "```\n[{\"title\":\"Pay rent\",\"date\":\"2025-03-31\",\"time\":\"\"}]\n```"
	ex, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(ex.Drafts) != 1 || ex.Drafts[0].Title != "Pay rent" {
		t.Errorf("unexpected extraction: %+v", ex)
	}
}

func TestExtract_BareArray(t *testing.T) {
	content := `Sure! [{"title":"Gym","date":"2025-03-02","time":"07:00"},{"title":"Standup","date":"2025-03-02","time":"09:30"}] Let me know.`
	ex, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(ex.Drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(ex.Drafts))
	}
}

func TestExtract_PreservesOrder(t *testing.T) {
	content := `[{"title":"first","date":"","time":""},{"title":"second","date":"","time":""},{"title":"third","date":"","time":""}]`
	ex, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(ex.Drafts) != len(want) {
		t.Fatalf("expected %d drafts, got %d", len(want), len(ex.Drafts))
	}
	for i, w := range want {
		if ex.Drafts[i].Title != w {
			t.Errorf("draft[%d].Title = %q, want %q", i, ex.Drafts[i].Title, w)
		}
	}
}

func TestExtract_NullFieldsDecodeEmpty(t *testing.T) {
	content := `[{"title":null,"date":null,"time":null}]`
	ex, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(ex.Drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(ex.Drafts))
	}
	d := ex.Drafts[0]
	if d.Title != "" || d.Date != "" || d.Time != "" {
		t.Errorf("null fields should decode empty, got %+v", d)
	}
}

func TestExtract_ArrayWinsOverEarlierObject(t *testing.T) {
	content := `{"note":"parsed"} then [{"title":"Dentist","date":"2025-04-01","time":"09:00"}]`
	ex, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if ex.Single != nil {
		t.Error("expected the array to win, got a single object")
	}
	if len(ex.Drafts) != 1 || ex.Drafts[0].Title != "Dentist" {
		t.Errorf("unexpected drafts: %+v", ex.Drafts)
	}
}

// --- single-object replies ---

func TestExtract_FencedObject(t *testing.T) {
	content := "```json\n{\"title\":\"Dentist\",\"date\":\"2025-04-01\",\"time\":\"09:00\"}\n```"
	ex, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if ex.Drafts != nil {
		t.Error("expected a single-object extraction, got an array")
	}
	if ex.Single == nil {
		t.Fatal("Single is nil")
	}
	if ex.Single.Title != "Dentist" || ex.Single.Date != "2025-04-01" || ex.Single.Time != "09:00" {
		t.Errorf("unexpected draft: %+v", *ex.Single)
	}
}

func TestExtract_BareObject(t *testing.T) {
	content := `Here you go: {"title":"Water plants","date":"2025-03-05","time":""} hope that helps`
	ex, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if ex.Single == nil || ex.Single.Title != "Water plants" {
		t.Errorf("unexpected extraction: %+v", ex)
	}
}

// --- fall-through from array to object ---

func TestExtract_EmptyArrayFallsThroughToObject(t *testing.T) {
	content := "[]\n{\"title\":\"solo\",\"date\":\"2025-05-05\",\"time\":\"\"}"
	ex, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if ex.Single == nil || ex.Single.Title != "solo" {
		t.Errorf("expected fall-through to the object, got %+v", ex)
	}
}

func TestExtract_EmptyArrayOnly(t *testing.T) {
	content := "result: []"
	_, err := Extract(content)
	var noJSON *NoJSONError
	if !errors.As(err, &noJSON) {
		t.Fatalf("expected *NoJSONError, got %v", err)
	}
	if noJSON.Raw != content {
		t.Errorf("Raw = %q, want the full reply", noJSON.Raw)
	}
}

// A literal ] inside a string value cuts the bare-array carve short; the
// object attempt then picks up the element on its own.
func TestExtract_BracketInBareArrayString(t *testing.T) {
	content := `[{"title":"call ]bob","date":"2025-03-09","time":""}]`
	ex, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if ex.Single == nil {
		t.Fatal("expected the object fallback to recover the element")
	}
	if ex.Single.Title != "call ]bob" {
		t.Errorf("Title = %q, want %q", ex.Single.Title, "call ]bob")
	}
}

// --- failures ---

func TestExtract_NoJSON(t *testing.T) {
	content := "Sorry, I could not find any reminders in that."
	_, err := Extract(content)
	var noJSON *NoJSONError
	if !errors.As(err, &noJSON) {
		t.Fatalf("expected *NoJSONError, got %v", err)
	}
	if noJSON.Raw != content {
		t.Errorf("Raw = %q, want the full reply", noJSON.Raw)
	}
}

func TestExtract_InvalidObjectJSON(t *testing.T) {
	content := `{'title': 'single quotes are not JSON'}`
	_, err := Extract(content)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Raw != content {
		t.Errorf("Raw = %q, want the full reply", parseErr.Raw)
	}
	if parseErr.Err == nil {
		t.Error("ParseError.Err should carry the decode error")
	}
}

// A literal } inside a string value truncates the object carve, and there
// is nothing left to fall back to.
func TestExtract_BraceInObjectStringTruncates(t *testing.T) {
	content := `{"title":"use {curly} style","date":"","time":""}`
	_, err := Extract(content)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}
