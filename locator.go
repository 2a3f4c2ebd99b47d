package urlspan

import (
	"strings"
	"unicode"
)

// Schemes lists the URL schemes recognized by Locator.
var Schemes = []string{
	"http", "https", "mailto", "news", "file", "git", "ssh", "ftp",
	"gemini", "gopher", "ipfs", "ipns", "magnet",
}

type locatorState int

const (
	locatorDefault locatorState = iota
	locatorScheme
	locatorSchemeEnd
	locatorURL
)

// Locator is the default Classifier. It matches a known scheme followed by ':'
// and a URL body, tracking balanced brackets and trailing punctuation.
//
// Example:
//
//	loc := urlspan.NewLocator()
//	for _, r := range "see https://example.org." {
//	    l := loc.Advance(r)
//	    ...
//	}
type Locator struct {
	state        locatorState
	scheme       string
	length       int
	exclude      int
	openParens   int
	openBrackets int
}

// NewLocator creates a Locator in its initial state.
func NewLocator() Classifier {
	return &Locator{}
}

// Advance feeds one character and returns the resulting classification.
func (l *Locator) Advance(r rune) Location {
	switch l.state {
	case locatorDefault, locatorScheme:
		l.advanceScheme(r)
	case locatorSchemeEnd:
		l.advanceSchemeEnd(r)
	case locatorURL:
		l.advanceURL(r)
	}

	switch l.state {
	case locatorURL:
		return Location{State: StateURL, Length: l.length - l.exclude, TrailingExclude: l.exclude}
	case locatorScheme, locatorSchemeEnd:
		return Location{State: StateScheme}
	default:
		return Location{State: StateIdle}
	}
}

func (l *Locator) advanceScheme(r rune) {
	if r == ':' && l.state == locatorScheme && isScheme(l.scheme) {
		l.state = locatorSchemeEnd
		l.length++
		return
	}

	if r <= unicode.MaxASCII && unicode.IsLetter(r) {
		l.scheme += string(unicode.ToLower(r))
		if isSchemePrefix(l.scheme) {
			l.state = locatorScheme
			l.length++
			return
		}
	}

	l.reset()
}

func (l *Locator) advanceSchemeEnd(r rune) {
	if isURLTerminator(r) || isClosing(r) {
		l.reset()
		return
	}
	l.state = locatorURL
	l.advanceURL(r)
}

func (l *Locator) advanceURL(r rune) {
	if isURLTerminator(r) {
		l.reset()
		return
	}

	switch r {
	case '(':
		l.openParens++
	case '[':
		l.openBrackets++
	case ')':
		if l.openParens == 0 {
			l.reset()
			return
		}
		l.openParens--
	case ']':
		if l.openBrackets == 0 {
			l.reset()
			return
		}
		l.openBrackets--
	}

	l.length++
	if isTrailingExcluded(r) {
		l.exclude++
	} else {
		l.exclude = 0
	}
}

func (l *Locator) reset() {
	*l = Locator{}
}

func isScheme(s string) bool {
	for _, scheme := range Schemes {
		if s == scheme {
			return true
		}
	}
	return false
}

func isSchemePrefix(s string) bool {
	for _, scheme := range Schemes {
		if strings.HasPrefix(scheme, s) {
			return true
		}
	}
	return false
}

// isURLTerminator reports characters that can never be part of a URL.
func isURLTerminator(r rune) bool {
	if unicode.IsSpace(r) || unicode.IsControl(r) || r == 0 {
		return true
	}
	switch r {
	case '<', '>', '"', '`', '{', '}', '|', '\\', '^':
		return true
	}
	return false
}

func isClosing(r rune) bool {
	return r == ')' || r == ']'
}

// isTrailingExcluded reports characters that are dropped when they end a URL.
func isTrailingExcluded(r rune) bool {
	switch r {
	case '.', ',', ':', ';', '?', '!', '\'', '(', '[':
		return true
	}
	return false
}
