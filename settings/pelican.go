package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plumekit/plume/config/site"
)

const pelicanHeader = `# -*- coding: utf-8 -*- #
from __future__ import unicode_literals

`

// RenderPelican writes the contract as a generator-loadable Python
// settings file. Output is byte-stable for identical records.
func RenderPelican(rec *site.Record) []byte {
	var b strings.Builder
	b.WriteString(pelicanHeader)
	for _, s := range Build(rec) {
		b.WriteString(s.Key)
		b.WriteString(" = ")
		b.WriteString(pyValue(s.Value))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Literal renders a single contract value the way the Python writer
// would. Used for human-readable change output.
func Literal(v any) string {
	return pyValue(v)
}

func pyValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(x)
	case string:
		return pyString(x)
	case [][2]string:
		return pyPairTuple(x)
	default:
		// Build only emits the types above.
		panic(fmt.Sprintf("settings: unrenderable value %T", v))
	}
}

func pyString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func pyPairTuple(pairs [][2]string) string {
	if len(pairs) == 0 {
		return "()"
	}
	var b strings.Builder
	b.WriteString("(\n")
	for _, p := range pairs {
		b.WriteString("    (")
		b.WriteString(pyString(p[0]))
		b.WriteString(", ")
		b.WriteString(pyString(p[1]))
		b.WriteString("),\n")
	}
	b.WriteString(")")
	return b.String()
}
