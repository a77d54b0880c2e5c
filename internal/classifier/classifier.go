// Package classifier maps inbound chat text to an Intent.
package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Intent is the classified purpose of a text message.
type Intent string

const (
	IntentBalance Intent = "balance"
	IntentLeave   Intent = "leave"
	IntentEcho    Intent = "echo"
)

// Keywords are the trigger words the classifier looks for.
type Keywords struct {
	// Balance triggers a balance inquiry when the text starts with it.
	Balance string
	// Leave triggers a leave request when the text equals it or contains it as a standalone word.
	Leave string
	// RequestLeave triggers a leave request when the text contains it anywhere.
	RequestLeave string
}

// DefaultKeywords are the Thai keywords the bot ships with.
var DefaultKeywords = Keywords{ //nolint: gochecknoglobals
	Balance:      "ยอดลา",
	Leave:        "ลา",
	RequestLeave: "ขอลา",
}

type Classifier struct {
	keywords Keywords
}

// New returns a Classifier for keywords. Empty keywords fall back to
// DefaultKeywords; keywords are normalized the same way as message text.
func New(keywords Keywords) *Classifier {
	if keywords.Balance == "" {
		keywords.Balance = DefaultKeywords.Balance
	}
	if keywords.Leave == "" {
		keywords.Leave = DefaultKeywords.Leave
	}
	if keywords.RequestLeave == "" {
		keywords.RequestLeave = DefaultKeywords.RequestLeave
	}

	return &Classifier{keywords: Keywords{
		Balance:      Normalize(keywords.Balance),
		Leave:        Normalize(keywords.Leave),
		RequestLeave: Normalize(keywords.RequestLeave),
	}}
}

// Normalize puts text in Unicode NFC form and trims surrounding white space.
func Normalize(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// Classify returns the intent of text. Rules are applied in order:
//   - text starting with the balance keyword is a balance inquiry
//   - text equal to the leave keyword, containing the request-leave keyword,
//     or containing the leave keyword as a standalone word is a leave request
//   - anything else is echoed back
func (c *Classifier) Classify(text string) Intent {
	text = Normalize(text)

	switch {
	case strings.HasPrefix(text, c.keywords.Balance):
		return IntentBalance
	case text == c.keywords.Leave,
		strings.Contains(text, c.keywords.RequestLeave),
		containsWord(text, c.keywords.Leave):
		return IntentLeave
	default:
		return IntentEcho
	}
}

// containsWord reports whether word occurs in text with no word character
// directly before or after it.
func containsWord(text, word string) bool {
	for offset := 0; offset <= len(text); {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(word)

		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}

	return false
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}

	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
