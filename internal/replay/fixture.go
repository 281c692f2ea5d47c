package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/danielpatrickdp/soulscan/internal/report"
	"github.com/danielpatrickdp/soulscan/internal/token"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string          `json:"description"`
	Files       []FixtureFile   `json:"files"`
	Expected    FixtureExpected `json:"expected"`
}

// FixtureFile mirrors token.File with JSON tags. Error marks a file whose
// extraction failed.
type FixtureFile struct {
	Path   string         `json:"path"`
	Tokens []FixtureToken `json:"tokens"`
	Error  string         `json:"error,omitempty"`
}

// FixtureToken is a flat union of every token kind; Kind selects which
// fields apply.
type FixtureToken struct {
	Kind    string  `json:"kind"`
	Line    int     `json:"line,omitempty"`
	Value   float64 `json:"value,omitempty"`
	Unit    string  `json:"unit,omitempty"`
	Context string  `json:"context,omitempty"`
	Raw     string  `json:"raw,omitempty"`
	Space   string  `json:"space,omitempty"`
	Ms      float64 `json:"ms,omitempty"`
	Easing  string  `json:"easing,omitempty"`
	Text    string  `json:"text,omitempty"`
	Name    string  `json:"name,omitempty"`
}

// FixtureExpected is the recorded outcome. OverallScore and Categories are
// optional; only fields present are compared.
type FixtureExpected struct {
	Verdict      string         `json:"verdict"`
	OverallScore *int           `json:"overall_score,omitempty"`
	Categories   map[string]int `json:"categories,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// WriteFixture writes f as indented JSON.
func WriteFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// ToFiles converts every fixture file to a domain token.File.
func (f *Fixture) ToFiles() ([]token.File, error) {
	files := make([]token.File, len(f.Files))
	for i := range f.Files {
		tf, err := f.Files[i].ToFile()
		if err != nil {
			return nil, err
		}
		files[i] = tf
	}
	return files, nil
}

// ToFile converts a FixtureFile to a domain token.File.
func (ff *FixtureFile) ToFile() (token.File, error) {
	out := token.File{Path: ff.Path}
	if ff.Error != "" {
		out.Err = errors.New(ff.Error)
	}
	for i := range ff.Tokens {
		t, err := ff.Tokens[i].ToToken(ff.Path)
		if err != nil {
			return token.File{}, fmt.Errorf("%s token %d: %w", ff.Path, i, err)
		}
		out.Tokens = append(out.Tokens, t)
	}
	return out, nil
}

// ToToken converts a FixtureToken to its concrete token type.
func (ft *FixtureToken) ToToken(path string) (token.Token, error) {
	at := token.Position{File: path, Line: ft.Line}
	switch token.Kind(ft.Kind) {
	case token.KindNumeric:
		return token.Numeric{Value: ft.Value, Unit: ft.Unit, Context: ft.Context, At: at}, nil
	case token.KindColor:
		return token.Color{Raw: ft.Raw, Space: ft.Space, At: at}, nil
	case token.KindDuration:
		return token.Duration{Ms: ft.Ms, Easing: ft.Easing, At: at}, nil
	case token.KindAria:
		return token.Aria{Text: ft.Text, At: at}, nil
	case token.KindFeature:
		return token.Feature{Name: ft.Name, At: at}, nil
	}
	return nil, fmt.Errorf("unknown token kind %q", ft.Kind)
}

// #endregion fixture-loader

// #region fixture-export

// FromToken converts a domain token back to its fixture form.
func FromToken(t token.Token) FixtureToken {
	ft := FixtureToken{Kind: string(t.Kind()), Line: t.Pos().Line}
	switch v := t.(type) {
	case token.Numeric:
		ft.Value, ft.Unit, ft.Context = v.Value, v.Unit, v.Context
	case token.Color:
		ft.Raw, ft.Space = v.Raw, v.Space
	case token.Duration:
		ft.Ms, ft.Easing = v.Ms, v.Easing
	case token.Aria:
		ft.Text = v.Text
	case token.Feature:
		ft.Name = v.Name
	}
	return ft
}

// Record captures scanned files and the report they produced as a fixture,
// so a later replay can detect scoring drift.
func Record(description string, files []token.File, r report.Report) *Fixture {
	f := &Fixture{Description: description}
	for _, tf := range files {
		ff := FixtureFile{Path: tf.Path, Tokens: make([]FixtureToken, 0, len(tf.Tokens))}
		if tf.Err != nil {
			ff.Error = tf.Err.Error()
		}
		for _, t := range tf.Tokens {
			ff.Tokens = append(ff.Tokens, FromToken(t))
		}
		f.Files = append(f.Files, ff)
	}

	overall := r.OverallScore
	f.Expected = FixtureExpected{
		Verdict:      string(r.Verdict),
		OverallScore: &overall,
		Categories:   make(map[string]int, len(r.Categories)),
	}
	for c, cs := range r.Categories {
		f.Expected.Categories[string(c)] = cs.RawScore
	}
	return f
}

// #endregion fixture-export
