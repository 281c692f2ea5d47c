package detect

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/danielpatrickdp/soulscan/internal/signals"
	"github.com/danielpatrickdp/soulscan/internal/token"
)

// stockLabels are single-word control labels that ship with every template.
var stockLabels = []string{"Close", "Submit", "Error", "Cancel", "Save"}

// conversational are folded word runs that read like a person talking.
var conversational = [][]string{{"let's"}, {"nope"}, {"got", "it"}, {"sure"}, {"yep"}}

// Copy flags stock control labels and rewards labels that say more or speak
// conversationally.
type Copy struct {
	labels map[string]string // folded -> display
}

// NewCopy creates the copy/ARIA detector.
func NewCopy() *Copy {
	fold := cases.Fold()
	labels := make(map[string]string, len(stockLabels))
	for _, l := range stockLabels {
		labels[fold.String(l)] = l
	}
	return &Copy{labels: labels}
}

func (*Copy) Category() signals.Category { return signals.CategoryCopy }

// Analyze matches each label against the stock list case-insensitively. A
// label that is exactly a stock word is major; one that contains a stock word
// plus at least three more words is a humane extension. Any other label with
// a conversational phrase earns the same bonus.
func (d *Copy) Analyze(tokens []token.Token) ([]signals.Signal, error) {
	// Casers carry state; one per call keeps Analyze safe to share.
	fold := cases.Fold()
	var out []signals.Signal
	for _, t := range tokens {
		a, ok := t.(token.Aria)
		if !ok {
			continue
		}
		words := strings.FieldsFunc(fold.String(a.Text), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
		})
		if len(words) == 0 {
			continue
		}

		matched := ""
		for _, w := range words {
			if display, ok := d.labels[w]; ok {
				matched = display
				break
			}
		}
		switch {
		case matched != "" && len(words) == 1:
			out = append(out, signals.Major(d.Category(),
				fmt.Sprintf("stock label %q", strings.TrimSpace(a.Text)), a))
		case matched != "" && len(words)-1 >= signals.CopyExtensionWords:
			out = append(out, signals.Info(d.Category(), signals.HumaneBonus,
				fmt.Sprintf("label extends %q with context", matched), a))
		case isConversational(words):
			out = append(out, signals.Info(d.Category(), signals.HumaneBonus,
				fmt.Sprintf("conversational label %q", strings.TrimSpace(a.Text)), a))
		}
	}
	return out, nil
}

func isConversational(words []string) bool {
	for i := range words {
		for _, phrase := range conversational {
			if i+len(phrase) <= len(words) && slices.Equal(words[i:i+len(phrase)], phrase) {
				return true
			}
		}
	}
	return false
}
