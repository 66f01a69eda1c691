package app

// HadithBook is a hadith collection, e.g. Sahih al-Bukhari.
type HadithBook struct {
	Slug          string
	Name          string
	Author        string
	HadithCount   int
	ChaptersCount int
}

// HadithChapter is a chapter within a hadith book.
type HadithChapter struct {
	ID         int
	Number     string
	Name       string
	NameArabic string
	BookSlug   string
}

// Hadith is a single narration.
type Hadith struct {
	ID         int
	Number     string
	TextArabic string
	Text       string
	Narrator   string
	Grade      string
	BookSlug   string
	ChapterID  int
}

// HadithPage is one page of hadiths for a chapter.
type HadithPage struct {
	Hadiths     []Hadith
	CurrentPage int
	LastPage    int
}

// HasNext reports whether more pages can be fetched.
func (p HadithPage) HasNext() bool {
	return p.CurrentPage < p.LastPage
}
