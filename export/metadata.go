package export

// Metadata describes the generated document.
type Metadata struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
}
