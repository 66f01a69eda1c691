package app

// Category is a node in the subject category tree.
type Category struct {
	ID         int
	Title      string
	ItemsCount int
	HasSubs    bool
}

// CategoryItem is one published item within a category,
// e.g. a book or article with downloadable attachments.
type CategoryItem struct {
	ID          int
	Title       string
	Description string
	Language    string
	Attachments []Attachment
}

// Attachment is a downloadable file attached to a category item.
type Attachment struct {
	URL         string
	Extension   string
	Size        string
	Description string
}

// PDF reports whether the attachment is a PDF document.
func (a Attachment) PDF() bool {
	return a.Extension == "pdf" || a.Extension == "PDF"
}

// CategoryItemPage is one page of items for a category.
type CategoryItemPage struct {
	Items       []CategoryItem
	CurrentPage int
	TotalPages  int
}

// HasNext reports whether more pages can be fetched.
func (p CategoryItemPage) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// RadioStation is one entry of the radio station directory.
type RadioStation struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	StreamURL string `yaml:"url"`
}
