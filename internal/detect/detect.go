package detect

import (
	"errors"

	"github.com/danielpatrickdp/soulscan/internal/signals"
	"github.com/danielpatrickdp/soulscan/internal/token"
)

// ErrMalformedToken is returned when a token cannot be evaluated at all.
var ErrMalformedToken = errors.New("malformed token")

// #region detector

// Detector inspects one file's tokens for a single category. Implementations
// are pure and stateless, so one value may be shared across goroutines.
type Detector interface {
	Category() signals.Category
	Analyze(tokens []token.Token) ([]signals.Signal, error)
}

// All returns one detector per category, in report order.
func All() []Detector {
	return []Detector{
		NewSpacing(),
		NewColor(),
		NewMotion(),
		NewCopy(),
		NewFeatures(),
	}
}

// #endregion detector
