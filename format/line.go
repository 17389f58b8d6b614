package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dhamidi/cadkit/cad"
)

// LineEncoder writes one tab-separated line per table, entry, block and
// entity, for grep and cut.
type LineEncoder struct {
	w   io.Writer
	doc *cad.Document
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *cad.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	data := buildDocument(e.doc)

	fmt.Fprintf(&sb, "header\t%s\t%s\n", dash(data.Version), dash(data.HandleSeed))

	for _, t := range data.Tables {
		fmt.Fprintf(&sb, "table\t%s\t%s\t%d\n", t.Name, dash(t.Handle), len(t.Entries))
		for _, entry := range t.Entries {
			fmt.Fprintf(&sb, "entry\t%s\t%s\t%s\t%s\n",
				t.Name, dash(entry.Handle), entry.Name, propsStr(entry.Props))
		}
	}

	for _, b := range data.Blocks {
		fmt.Fprintf(&sb, "block\t%s\t%s\t%d\n", b.Name, dash(b.Handle), len(b.Entities))
		for _, ent := range b.Entities {
			writeEntityLine(&sb, b.Name, ent)
		}
	}

	for _, ent := range data.Entities {
		writeEntityLine(&sb, "-", ent)
	}

	for _, c := range data.Colors {
		fmt.Fprintf(&sb, "color\t%s\t%s\t%s\n", dash(c.Handle), dash(c.Name), propsStr(c.Props))
	}

	return []byte(sb.String()), nil
}

func writeEntityLine(sb *strings.Builder, block string, d objData) {
	fmt.Fprintf(sb, "entity\t%s\t%s\t%s\t%s\n", d.Kind, dash(d.Handle), block, propsStr(d.Props))
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// propsStr renders props as sorted key=value pairs.
func propsStr(props map[string]any) string {
	if len(props) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + valueStr(props[k])
	}
	return strings.Join(parts, ",")
}

func valueStr(v any) string {
	switch v := v.(type) {
	case []float64:
		parts := make([]string, len(v))
		for i, f := range v {
			parts[i] = fmt.Sprint(f)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case map[string]any:
		return "{" + strings.ReplaceAll(propsStr(v), ",", " ") + "}"
	default:
		return fmt.Sprint(v)
	}
}
