package urlspan

// State is the coarse classification a Classifier reports after each character.
type State int

const (
	// StateIdle means no URL candidate is in progress.
	StateIdle State = iota
	// StateScheme means a scheme prefix is being matched but no URL is confirmed yet.
	StateScheme
	// StateURL means the characters seen so far form a URL.
	StateURL
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheme:
		return "scheme"
	case StateURL:
		return "url"
	default:
		return "unknown"
	}
}

// Location is the result of advancing a Classifier by one character.
// Length and TrailingExclude are only meaningful in StateURL.
type Location struct {
	State State
	// Length is the number of characters of the match that belong to the URL.
	Length int
	// TrailingExclude is the number of characters at the tail of the match that
	// are currently judged not to belong to the URL (trailing punctuation).
	TrailingExclude int
}

// Classifier consumes a flat character stream and reports whether it is inside a URL.
// It has no knowledge of grid geometry, colors or wide characters.
type Classifier interface {
	Advance(r rune) Location
}

// ClassifierFactory returns a fresh classifier. The Tracker calls it on every reset.
type ClassifierFactory func() Classifier
