package bias

import (
	"reflect"
	"strings"
	"testing"
)

func TestSoften(t *testing.T) {
	got := Soften("This is always and never simple.")

	if strings.Contains(strings.ToLower(got.ImprovedText), "always") {
		t.Errorf("'always' survived: %q", got.ImprovedText)
	}
	if strings.Contains(strings.ToLower(got.ImprovedText), "never") {
		t.Errorf("'never' survived: %q", got.ImprovedText)
	}
	if !strings.Contains(got.ImprovedText, "often") || !strings.Contains(got.ImprovedText, "rarely") {
		t.Errorf("alternatives missing: %q", got.ImprovedText)
	}

	want := []string{
		"Replaced 'always' with 'often'",
		"Replaced 'never' with 'rarely'",
	}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Fatalf("suggestions: got %v, want %v", got.Suggestions, want)
	}
}

func TestSoftenNoMatches(t *testing.T) {
	got := Soften("A perfectly hedged sentence.")
	if got.ImprovedText != "A perfectly hedged sentence." {
		t.Errorf("text changed without matches: %q", got.ImprovedText)
	}
	if len(got.Suggestions) != 0 {
		t.Errorf("unexpected suggestions: %v", got.Suggestions)
	}
}

func TestSoftenCaseInsensitiveGlobal(t *testing.T) {
	got := Soften("ALWAYS check twice. You should Always check. always.")
	if strings.Contains(strings.ToLower(got.ImprovedText), "always") {
		t.Fatalf("some casing survived: %q", got.ImprovedText)
	}
	if n := strings.Count(got.ImprovedText, "often"); n != 3 {
		t.Fatalf("expected 3 replacements, got %d: %q", n, got.ImprovedText)
	}
	// One suggestion per mapping entry, not per occurrence.
	if len(got.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %v", got.Suggestions)
	}
}

func TestSoftenSuggestionsFollowMappingOrder(t *testing.T) {
	// "definitely" appears first in the text but last in the mapping.
	got := Soften("Definitely wrong, always.")
	want := []string{
		"Replaced 'always' with 'often'",
		"Replaced 'definitely' with 'likely'",
	}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Fatalf("suggestions: got %v, want %v", got.Suggestions, want)
	}
}

func TestSoften_ChecksOriginalMutatesBuffer(t *testing.T) {
	// All applicability checks run against the pristine input while the
	// replacements accumulate in one shared buffer, entry by entry.
	got := Soften("clearly this never happens, obviously")

	if got.ImprovedText != "it seems that this rarely happens, it appears that" {
		t.Fatalf("buffer accumulation wrong: %q", got.ImprovedText)
	}
	want := []string{
		"Replaced 'never' with 'rarely'",
		"Replaced 'obviously' with 'it appears that'",
		"Replaced 'clearly' with 'it seems that'",
	}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Fatalf("suggestions: got %v, want %v", got.Suggestions, want)
	}
}
