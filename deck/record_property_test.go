package deck

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

// Property: for any recognized kind and any subset of its required keys,
// Validate accepts the record exactly when the subset is complete.
func TestProperty_RequiredKeysSubset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(Kinds()).Draw(t, "kind")
		keys := RequiredKeys(kind)

		c := map[string]any{}
		complete := true
		for _, k := range keys {
			if rapid.Bool().Draw(t, "keep_"+k) {
				c[k] = "v"
			} else {
				complete = false
			}
		}
		if rapid.Bool().Draw(t, "extra") {
			c["speaker_notes"] = "ignored"
		}

		err := Record{Type: kind, Content: c}.Validate()
		if complete && err != nil {
			t.Fatalf("complete %s record rejected: %v", kind, err)
		}
		if !complete && !errors.Is(err, ErrMissingKey) {
			t.Fatalf("incomplete %s record (%v) accepted or wrong error: %v", kind, c, err)
		}
	})
}

// Property: any typed slide flattened to a record validates and converts back
// to an equal slide.
func TestProperty_RecordRoundTrip(t *testing.T) {
	text := rapid.String()
	lines := rapid.SliceOf(rapid.String())

	rapid.Check(t, func(t *rapid.T) {
		var s Slide
		switch rapid.SampledFrom(Kinds()).Draw(t, "kind") {
		case KindTitle:
			s = TitleSlide{Title: text.Draw(t, "title"), Author: text.Draw(t, "author"), Date: text.Draw(t, "date"), Tags: lines.Draw(t, "tags")}
		case KindContent:
			s = ContentSlide{Heading: text.Draw(t, "heading"), Body: text.Draw(t, "body"), BulletPoints: lines.Draw(t, "bullets")}
		case KindCode:
			s = CodeSlide{Language: text.Draw(t, "language"), Code: text.Draw(t, "code")}
		default:
			s = ConclusionSlide{Heading: text.Draw(t, "heading"), Takeaways: lines.Draw(t, "takeaways"), CTA: text.Draw(t, "cta")}
		}

		r := ToRecord(s)
		if err := r.Validate(); err != nil {
			t.Fatalf("ToRecord produced invalid record: %v", err)
		}
		back, err := FromRecord(r)
		if err != nil {
			t.Fatalf("FromRecord: %v", err)
		}
		if Heading(back) != Heading(s) || back.Kind() != s.Kind() {
			t.Fatalf("round trip mismatch: %#v vs %#v", s, back)
		}
	})
}

func TestProperty_UnknownKindsRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := Kind(rapid.String().Draw(t, "kind"))
		if k.Valid() {
			t.Skip("drew a recognized kind")
		}
		if RequiredKeys(k) != nil {
			t.Fatalf("RequiredKeys(%q) should be nil", k)
		}
		if err := (Record{Type: k}).Validate(); !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("Validate(%q) = %v", k, err)
		}
	})
}
