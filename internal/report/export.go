package report

import (
	"encoding/json"
	"fmt"
)

// #region export-shape

// Export is the stable external shape of a report.
type Export struct {
	RunID        string           `json:"runId,omitempty"`
	OverallScore int              `json:"overallScore"`
	Verdict      string           `json:"verdict"`
	Files        int              `json:"files"`
	Categories   []ExportCategory `json:"categories"`
}

// ExportCategory is one category entry of an Export.
type ExportCategory struct {
	Name     string         `json:"name"`
	RawScore int            `json:"rawScore"`
	Weight   float64        `json:"weight"`
	Signals  []ExportSignal `json:"signals"`
}

// ExportSignal is one signal entry of an ExportCategory.
type ExportSignal struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Delta    int    `json:"delta"`
	Location string `json:"location,omitempty"`
}

// #endregion export-shape

// #region export

// Export converts the report to its external shape, categories in fixed order.
// The run ID is left out so two runs over the same input export identically;
// use WithRunID to include it.
func (r Report) Export() Export {
	out := Export{
		OverallScore: r.OverallScore,
		Verdict:      string(r.Verdict),
		Files:        r.Files,
		Categories:   make([]ExportCategory, 0, len(r.Categories)),
	}
	for _, cs := range r.Ordered() {
		ec := ExportCategory{
			Name:     string(cs.Category),
			RawScore: cs.RawScore,
			Weight:   cs.Weight,
			Signals:  make([]ExportSignal, 0, len(cs.Signals)),
		}
		for _, s := range cs.Signals {
			es := ExportSignal{
				Severity: string(s.Severity),
				Message:  s.Message,
				Delta:    s.Delta,
			}
			if s.Source != nil {
				es.Location = s.Source.Pos().String()
			}
			ec.Signals = append(ec.Signals, es)
		}
		out.Categories = append(out.Categories, ec)
	}
	return out
}

// WithRunID returns a copy of e carrying the run ID of r.
func (e Export) WithRunID(r Report) Export {
	e.RunID = r.RunID.String()
	return e
}

// JSON renders the export with the run ID included.
func (r Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r.Export().WithRunID(r), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}

// #endregion export
