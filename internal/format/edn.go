package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes an EDN rendering of v.
//
// Only the subset EDN and JSON share is produced: maps, vectors, strings,
// numbers, booleans and nil. Values are routed through a JSON round-trip
// first so struct field naming follows the json tags and both output formats
// agree on key names.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var sb strings.Builder
	e := ednPrinter{pretty: pretty}
	e.value(&sb, x, 0)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

type ednPrinter struct {
	pretty bool
}

const ednIndent = "  "

func (e ednPrinter) value(sb *strings.Builder, v any, depth int) {
	switch t := v.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		sb.WriteString(strconv.FormatBool(t))
	case string:
		sb.WriteString(strconv.Quote(t))
	case float64:
		// A JSON number with no fractional part prints as an integer.
		if float64(int64(t)) == t {
			sb.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		e.collection(sb, '[', ']', len(t), depth, func(sb *strings.Builder, i int) {
			e.value(sb, t[i], depth+1)
		})
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.collection(sb, '{', '}', len(keys), depth, func(sb *strings.Builder, i int) {
			sb.WriteByte(':')
			sb.WriteString(keyword(keys[i]))
			sb.WriteByte(' ')
			e.value(sb, t[keys[i]], depth+1)
		})
	default:
		sb.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

// collection prints n entries between open and close, one per line when
// pretty, space-separated otherwise.
func (e ednPrinter) collection(sb *strings.Builder, open, close byte, n, depth int, entry func(*strings.Builder, int)) {
	sb.WriteByte(open)
	if n == 0 {
		sb.WriteByte(close)
		return
	}
	for i := 0; i < n; i++ {
		if e.pretty {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(ednIndent, depth+1))
		} else if i > 0 {
			sb.WriteByte(' ')
		}
		entry(sb, i)
	}
	if e.pretty {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(ednIndent, depth))
	}
	sb.WriteByte(close)
}

// keyword turns a JSON field name into a printable EDN keyword body.
func keyword(s string) string {
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, " ", "-")
}
