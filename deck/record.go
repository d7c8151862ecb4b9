package deck

import (
	"fmt"
	"sort"
)

// Record is the untyped {type, content} view of a slide, the shape the deck
// takes once it leaves Go types (JSON dumps, handout outlines).
type Record struct {
	Type    Kind           `json:"type"`
	Content map[string]any `json:"content"`
}

// Content keys, by slide kind.
const (
	KeyTitle        = "title"
	KeyAuthor       = "author"
	KeyDate         = "date"
	KeyTags         = "tags"
	KeyHeading      = "heading"
	KeyBody         = "body"
	KeyBulletPoints = "bullet_points"
	KeyLanguage     = "language"
	KeyCode         = "code"
	KeyTakeaways    = "takeaways"
	KeyCTA          = "cta"
)

var requiredKeys = map[Kind][]string{
	KindTitle:      {KeyTitle, KeyAuthor, KeyDate, KeyTags},
	KindContent:    {KeyHeading, KeyBody, KeyBulletPoints},
	KindCode:       {KeyLanguage, KeyCode},
	KindConclusion: {KeyHeading, KeyTakeaways, KeyCTA},
}

// RequiredKeys returns the content keys a record of kind k must supply.
// It returns nil for an unrecognized kind.
func RequiredKeys(k Kind) []string {
	keys, ok := requiredKeys[k]
	if !ok {
		return nil
	}
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Validate checks that the record's type is recognized and that every key
// required by it is present in Content.
func (r Record) Validate() error {
	keys, ok := requiredKeys[r.Type]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Type)
	}
	var missing []string
	for _, k := range keys {
		if _, ok := r.Content[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s slide lacks %v", ErrMissingKey, r.Type, missing)
	}
	return nil
}

// ToRecord flattens a typed slide into its record form. Slices are copied so
// the record can be modified without touching the slide.
func ToRecord(s Slide) Record {
	switch v := s.(type) {
	case TitleSlide:
		return Record{Type: KindTitle, Content: map[string]any{
			KeyTitle:  v.Title,
			KeyAuthor: v.Author,
			KeyDate:   v.Date,
			KeyTags:   cloneStrings(v.Tags),
		}}
	case ContentSlide:
		return Record{Type: KindContent, Content: map[string]any{
			KeyHeading:      v.Heading,
			KeyBody:         v.Body,
			KeyBulletPoints: cloneStrings(v.BulletPoints),
		}}
	case CodeSlide:
		return Record{Type: KindCode, Content: map[string]any{
			KeyLanguage: v.Language,
			KeyCode:     v.Code,
		}}
	case ConclusionSlide:
		return Record{Type: KindConclusion, Content: map[string]any{
			KeyHeading:   v.Heading,
			KeyTakeaways: cloneStrings(v.Takeaways),
			KeyCTA:       v.CTA,
		}}
	}
	return Record{}
}

// ToRecords converts a deck, preserving order.
func ToRecords(slides []Slide) []Record {
	out := make([]Record, 0, len(slides))
	for _, s := range slides {
		out = append(out, ToRecord(s))
	}
	return out
}

// FromRecord is the inverse of ToRecord. List values may be []string or
// []any holding strings (as produced by encoding/json).
func FromRecord(r Record) (Slide, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	c := content(r.Content)
	switch r.Type {
	case KindTitle:
		var s TitleSlide
		err := c.each(
			c.str(KeyTitle, &s.Title),
			c.str(KeyAuthor, &s.Author),
			c.str(KeyDate, &s.Date),
			c.list(KeyTags, &s.Tags),
		)
		return orNil(s, err)
	case KindContent:
		var s ContentSlide
		err := c.each(
			c.str(KeyHeading, &s.Heading),
			c.str(KeyBody, &s.Body),
			c.list(KeyBulletPoints, &s.BulletPoints),
		)
		return orNil(s, err)
	case KindCode:
		var s CodeSlide
		err := c.each(
			c.str(KeyLanguage, &s.Language),
			c.str(KeyCode, &s.Code),
		)
		return orNil(s, err)
	default:
		var s ConclusionSlide
		err := c.each(
			c.str(KeyHeading, &s.Heading),
			c.list(KeyTakeaways, &s.Takeaways),
			c.str(KeyCTA, &s.CTA),
		)
		return orNil(s, err)
	}
}

func orNil(s Slide, err error) (Slide, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

type content map[string]any

func (c content) each(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (c content) str(key string, dst *string) error {
	v, ok := c[key].(string)
	if !ok {
		return fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidValue, key, c[key])
	}
	*dst = v
	return nil
}

func (c content) list(key string, dst *[]string) error {
	switch v := c[key].(type) {
	case []string:
		*dst = cloneStrings(v)
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("%w: %s[%d] must be a string, got %T", ErrInvalidValue, key, i, item)
			}
			out = append(out, s)
		}
		*dst = out
		return nil
	}
	return fmt.Errorf("%w: %s must be a list of strings, got %T", ErrInvalidValue, key, c[key])
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
