// Package deck holds the slide content of the banking integration
// architecture presentation, kept apart from any rendering concern.
package deck

// Kind identifies which of the four slide layouts a record uses.
type Kind string

const (
	KindTitle      Kind = "title"
	KindContent    Kind = "content"
	KindCode       Kind = "code"
	KindConclusion Kind = "conclusion"
)

// Kinds returns the recognized slide kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindTitle, KindContent, KindCode, KindConclusion}
}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindTitle, KindContent, KindCode, KindConclusion:
		return true
	}
	return false
}

// Slide is implemented by exactly the four slide types of this package.
type Slide interface {
	Kind() Kind
	slide()
}

// TitleSlide opens the deck.
type TitleSlide struct {
	Title  string
	Author string
	Date   string
	Tags   []string
}

// ContentSlide is a heading, an optional lead-in sentence and a bullet list.
type ContentSlide struct {
	Heading      string
	Body         string
	BulletPoints []string
}

// CodeSlide carries a raw text block, rendered line by line.
type CodeSlide struct {
	Language string
	Code     string
}

// ConclusionSlide closes the deck.
type ConclusionSlide struct {
	Heading   string
	Takeaways []string
	CTA       string
}

func (TitleSlide) Kind() Kind      { return KindTitle }
func (ContentSlide) Kind() Kind    { return KindContent }
func (CodeSlide) Kind() Kind       { return KindCode }
func (ConclusionSlide) Kind() Kind { return KindConclusion }

func (TitleSlide) slide()      {}
func (ContentSlide) slide()    {}
func (CodeSlide) slide()       {}
func (ConclusionSlide) slide() {}

// Heading returns the text a reader would call the slide's title.
// Code slides have no heading and report their language instead.
func Heading(s Slide) string {
	switch v := s.(type) {
	case TitleSlide:
		return v.Title
	case ContentSlide:
		return v.Heading
	case CodeSlide:
		return v.Language
	case ConclusionSlide:
		return v.Heading
	}
	return ""
}
