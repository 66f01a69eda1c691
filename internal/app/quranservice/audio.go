package quranservice

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/alfurqan/alfurqan/internal/app"
)

// audioBaseURL is the public host serving one audio file per verse.
const audioBaseURL = "https://everyayah.com/data"

//go:embed reciters.yaml
var recitersYAML []byte

var reciters []app.Reciter

func init() {
	if err := yaml.Unmarshal(recitersYAML, &reciters); err != nil {
		panic(fmt.Sprintf("parse embedded reciter catalog: %s", err))
	}
}

// Reciters returns the catalog of available reciters.
func Reciters() []app.Reciter {
	return reciters
}

// ReciterByID returns the reciter for an id.
// Unknown ids fall back to the first reciter in the catalog,
// so the result is always usable.
func ReciterByID(id int) app.Reciter {
	for _, r := range reciters {
		if r.ID == id {
			return r
		}
	}
	return reciters[0]
}

// AudioURL returns the URL of the audio file for a single verse.
// The derivation is a fixed path template over reciter path,
// surah number and ayah number. It involves no network access
// and the referenced asset is not guaranteed to exist.
func AudioURL(r app.Reciter, surahID, ayahID int) string {
	return fmt.Sprintf("%s/%s/%03d%03d.mp3", audioBaseURL, r.Path, surahID, ayahID)
}
