package signals

import "github.com/danielpatrickdp/soulscan/internal/token"

// #region category

// Category names one of the five scoring dimensions.
type Category string

const (
	CategorySpacing  Category = "spacing"
	CategoryColor    Category = "color"
	CategoryMotion   Category = "motion"
	CategoryCopy     Category = "copy"
	CategoryFeatures Category = "features"
)

// Categories lists every category in report order.
func Categories() []Category {
	return []Category{CategorySpacing, CategoryColor, CategoryMotion, CategoryCopy, CategoryFeatures}
}

// #endregion category

// #region severity

// Severity grades how strongly a signal points at template output.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityMinor Severity = "minor"
	SeverityMajor Severity = "major"
)

// #endregion severity

// #region signal

// Signal is a single detected pattern instance. Construct with New so the
// delta bound is enforced; never mutate after creation.
type Signal struct {
	Category Category
	Severity Severity
	Delta    int
	Message  string
	Source   token.Token // nil for file-level signals
}

// #endregion signal
