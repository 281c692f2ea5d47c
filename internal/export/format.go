package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrUnknownFormat is returned for export formats other than css and config.
var ErrUnknownFormat = errors.New("unknown export format")

// Format selects the rendering of a generated artifact.
type Format string

const (
	FormatCSS    Format = "css"
	FormatConfig Format = "config"
)

// ParseFormat accepts "css" or "config", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSS, FormatConfig:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// render converts a plain map into a structpb.Struct and emits its JSON.
// protojson deliberately varies its whitespace between builds, so the output
// is compacted and re-indented; keys come out sorted, and the same map always
// renders to the same bytes.
func render(m map[string]any) (string, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return "", fmt.Errorf("build config: %w", err)
	}
	raw, err := protojson.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	var compact, out bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return "", fmt.Errorf("normalize config: %w", err)
	}
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return "", fmt.Errorf("normalize config: %w", err)
	}
	out.WriteByte('\n')
	return out.String(), nil
}
