package app

// Surah is a chapter of the Quran.
type Surah struct {
	ID              int
	Name            string
	NameArabic      string
	TranslatedName  string
	RevelationPlace string
	VersesCount     int
}

// Verse is a single ayah within a surah as returned by the content API.
// Verses are read-only for the application and never mutated.
type Verse struct {
	ID           int
	VerseNumber  int
	VerseKey     string // composite "{surah}:{ayah}"
	TextArabic   string
	Translations []VerseTranslation
	AudioURL     string // optional per-verse audio descriptor
}

// VerseTranslation is one translation fragment of a verse,
// tagged with the translation resource which produced it.
type VerseTranslation struct {
	ResourceID int
	Text       string
}

// VersePage is one page of verses for a surah.
type VersePage struct {
	Verses      []Verse
	CurrentPage int
	TotalPages  int
}

// HasNext reports whether more pages can be fetched.
func (p VersePage) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// TranslationResource describes an available translation of the Quran.
type TranslationResource struct {
	ID         int
	Name       string
	AuthorName string
	Language   string
}

// Tafsir is scholarly commentary for a single verse.
type Tafsir struct {
	ResourceID   int
	ResourceName string
	VerseKey     string
	Text         string
}

// SearchResult is one hit from a full text search over verses.
type SearchResult struct {
	VerseKey string
	Text     string
}

// Reciter is a named audio recording set used to derive per-verse audio URLs.
type Reciter struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Path string `yaml:"path"` // path segment on the audio host
}
