package token

import "fmt"

// #region kind

// Kind enumerates the primitive token types extracted from source text.
type Kind string

const (
	KindNumeric  Kind = "numeric"
	KindColor    Kind = "color"
	KindDuration Kind = "duration"
	KindAria     Kind = "aria"
	KindFeature  Kind = "feature"
)

// #endregion kind

// #region position

// Position locates a token in its source file. Line is 1-based; 0 means unknown.
type Position struct {
	File string
	Line int
}

func (p Position) String() string {
	if p.Line == 0 {
		return p.File
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// #endregion position

// #region token

// Token is an immutable primitive extracted by a tokenizer and consumed
// read-only by detectors. The concrete types below are the closed set.
type Token interface {
	Kind() Kind
	Pos() Position
}

// Numeric is a number with its unit and the CSS property it was assigned to.
type Numeric struct {
	Value   float64
	Unit    string // "px", "rem", "" ...
	Context string // property name, e.g. "padding", "gap"
	At      Position
}

// Color is a raw color literal.
type Color struct {
	Raw   string
	Space string // "hex" | "rgb" | "hsl" | "oklch" | "lch" | "oklab" | "lab"
	At    Position
}

// Duration is an animation or transition duration with its timing function.
type Duration struct {
	Ms     float64
	Easing string // keyword or cubic-bezier(...); empty means the CSS default
	At     Position
}

// Aria is an accessible label or visible control text.
type Aria struct {
	Text string
	At   Position
}

// Feature is a modern CSS/DOM feature marker, by canonical name.
type Feature struct {
	Name string
	At   Position
}

func (Numeric) Kind() Kind  { return KindNumeric }
func (Color) Kind() Kind    { return KindColor }
func (Duration) Kind() Kind { return KindDuration }
func (Aria) Kind() Kind     { return KindAria }
func (Feature) Kind() Kind  { return KindFeature }

func (t Numeric) Pos() Position  { return t.At }
func (t Color) Pos() Position    { return t.At }
func (t Duration) Pos() Position { return t.At }
func (t Aria) Pos() Position     { return t.At }
func (t Feature) Pos() Position  { return t.At }

// #endregion token

// #region file

// File bundles one file's extraction result. Err is set when the tokenizer
// could not read or extract the file; Tokens may then be partial or empty.
type File struct {
	Path   string
	Tokens []Token
	Err    error
}

// #endregion file
