package app

// AudioStatus is the single logical "now playing" slot shared across views.
//
// The identity fields (SurahID, AyahID, URL) are either all zero or all set.
// IsPlaying may be false while a URL is retained, which means the session is
// paused but not stopped. An empty URL means no active session and is the
// sole visibility gate for the player bar.
type AudioStatus struct {
	IsPlaying bool
	SurahID   int
	AyahID    int
	URL       string
}

// IsActive reports whether a playback session exists.
func (s AudioStatus) IsActive() bool {
	return s.URL != ""
}

// RepeatMode controls the behavior when a track ends.
type RepeatMode uint

const (
	RepeatNone RepeatMode = iota
	RepeatOne
	RepeatAll
)

func (m RepeatMode) String() string {
	switch m {
	case RepeatOne:
		return "one"
	case RepeatAll:
		return "all"
	}
	return "none"
}

// RepeatModeFromString returns the repeat mode for a name.
// Unknown names map to RepeatNone.
func RepeatModeFromString(s string) RepeatMode {
	switch s {
	case "one":
		return RepeatOne
	case "all":
		return RepeatAll
	}
	return RepeatNone
}
