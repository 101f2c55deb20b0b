// Package snippet holds the reference implementations shown next to list and
// tree operations, in C, C++ and Python.
//
// The tables live in data/*.yaml, keyed by structure kind, then operation
// tag, then language. Kinds without their own version of an operation share
// the singly linked list or BST one.
package snippet

import (
	_ "embed"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/structviz/command"
)

// ErrUnknownLanguage is returned by ParseLanguage.
var ErrUnknownLanguage = errors.New("snippet: unknown language")

// Language selects the source language of a snippet. The zero value is C++.
type Language uint8

const (
	CPP Language = iota
	C
	Python
)

var languageNames = [...]string{CPP: "cpp", C: "c", Python: "python"}

func (l Language) String() string {
	if int(l) < len(languageNames) {
		return languageNames[l]
	}
	return "language(" + strconv.Itoa(int(l)) + ")"
}

// LanguageNames lists the accepted language tags.
func LanguageNames() []string { return append([]string(nil), languageNames[:]...) }

// ParseLanguage resolves "cpp", "c" or "python". "c++" and "py" are accepted
// too; matching is case-insensitive.
func ParseLanguage(name string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cpp", "c++":
		return CPP, nil
	case "c":
		return C, nil
	case "python", "py":
		return Python, nil
	}
	return 0, errors.Wrapf(ErrUnknownLanguage, "%q", name)
}

// Comment returns the line comment marker of l.
func (l Language) Comment() string {
	if l == Python {
		return "#"
	}
	return "//"
}

//go:embed data/list.yaml
var listYAML []byte

//go:embed data/tree.yaml
var treeYAML []byte

// table maps kind → operation → language → source.
type table map[string]map[string]map[string]string

type book struct {
	fallback string
	kinds    table
}

var books = map[command.Structure]book{
	command.List: load("list", listYAML, "singly"),
	command.Tree: load("tree", treeYAML, "bst"),
}

// load decodes an embedded table. The data ships with the binary, so a
// broken table is a programming error.
func load(name string, data []byte, fallback string) book {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "snippet: %s table", name))
	}
	if len(t[fallback]) == 0 {
		panic(errors.AssertionFailedf("snippet: %s table has no %s entries", name, fallback))
	}
	return book{fallback: fallback, kinds: t}
}

// Lookup returns the reference implementation of op on a structure of the
// given kind ("doubly", "avl", ...). Graph operations have none.
func Lookup(st command.Structure, kind string, op command.Op, lang Language) (string, bool) {
	b, ok := books[st]
	if !ok {
		return "", false
	}
	for _, k := range [...]string{kind, b.fallback} {
		if src, ok := b.kinds[k][op.String()][lang.String()]; ok {
			return src, true
		}
	}
	return "", false
}

// Code is Lookup with a one-line placeholder comment when no snippet exists.
func Code(st command.Structure, kind string, op command.Op, lang Language) string {
	if src, ok := Lookup(st, kind, op, lang); ok {
		return src
	}
	return lang.Comment() + " " + op.String() + " implementation for " + kind
}

// Ops lists, sorted, the operation tags that have a snippet for kind,
// counting the shared fallback ones.
func Ops(st command.Structure, kind string) []string {
	b, ok := books[st]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	for _, k := range [...]string{kind, b.fallback} {
		for op := range b.kinds[k] {
			seen[op] = true
		}
	}
	out := make([]string, 0, len(seen))
	for op := range seen {
		out = append(out, op)
	}
	sort.Strings(out)
	return out
}
