package bias

// #region imports
import (
	"fmt"
	"strings"
)

// #endregion

// #region alternatives

// softening maps flagged terms to softer alternatives, applied in this order.
// An ordered slice, not a map: rewrite order is part of the contract.
var softening = []struct {
	term string
	alt  string
}{
	{"always", "often"},
	{"never", "rarely"},
	{"everyone knows", "it is commonly understood"},
	{"obviously", "it appears that"},
	{"clearly", "it seems that"},
	{"definitely", "likely"},
}

// #endregion

// #region rewrite

// Rewrite is the outcome of a softening pass.
type Rewrite struct {
	ImprovedText string   `json:"improved_text"`
	Suggestions  []string `json:"suggestions"`
}

// #endregion

// #region soften

// Soften replaces flagged terms with softer alternatives. Applicability is
// tested against the pristine input, while replacements accumulate in a
// single working buffer, so an earlier replacement can be rewritten by a
// later entry if it happens to contain that entry's term.
func Soften(text string) Rewrite {
	original := strings.ToLower(text)
	out := Rewrite{ImprovedText: text}

	for _, s := range softening {
		if !strings.Contains(original, s.term) {
			continue
		}
		out.ImprovedText = replaceFold(out.ImprovedText, s.term, s.alt)
		out.Suggestions = append(out.Suggestions,
			fmt.Sprintf("Replaced '%s' with '%s'", s.term, s.alt))
	}
	return out
}

// #endregion

// #region replace-fold

// replaceFold is a case-insensitive global replace. The replacement keeps
// the alternative's own casing regardless of the matched casing. Byte-window
// comparison keeps indices valid even when ToLower would change byte lengths.
func replaceFold(s, term, alt string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if i+len(term) <= len(s) && strings.EqualFold(s[i:i+len(term)], term) {
			b.WriteString(alt)
			i += len(term)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// #endregion
