package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format uint8

const (
	Text Format = iota
	JSON
	YAML
	Markdown
)

var formatNames = [...]string{Text: "text", JSON: "json", YAML: "yaml", Markdown: "markdown"}

// ErrUnknownFormat is returned by ParseFormat and by Encode for formats
// without a document encoding.
var ErrUnknownFormat = errors.New("render: unknown format")

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "format(?)"
}

// ParseFormat resolves a format name; "md" is accepted for markdown.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "md" {
		return Markdown, nil
	}
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return Text, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// Encode writes v as an indented JSON or YAML document.
func Encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "render: json")
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "render: yaml")
		}
		return errors.Wrap(enc.Close(), "render: yaml")
	}
	return errors.Wrapf(ErrUnknownFormat, "%s is not a document format", f)
}
