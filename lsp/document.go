package lsp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
	"github.com/dhamidi/cadkit/dxfreader"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// openDocument is the state kept for a document open in the editor.
type openDocument struct {
	lines       []string
	doc         *cad.Document
	diagnostics []protocol.Diagnostic
}

func openText(path, text string) *openDocument {
	od := &openDocument{
		lines:       strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"),
		diagnostics: []protocol.Diagnostic{},
	}

	doc, err := dxfreader.Parse(strings.NewReader(text),
		dxfreader.WithFile(path),
		dxfreader.OnNotification(func(n dxfreader.Notification) {
			od.diagnostics = append(od.diagnostics, od.diagnostic(n.Line, severity(n.Type), n.Message))
		}),
	)
	if err != nil {
		line := 0
		msg := err.Error()
		var fe *dxfreader.FormatError
		if errors.As(err, &fe) {
			line = fe.Line
			msg = fe.Msg
			if fe.Err != nil {
				msg += ": " + fe.Err.Error()
			}
		}
		od.diagnostics = append(od.diagnostics, od.diagnostic(line, protocol.DiagnosticSeverityError, msg))
		return od
	}
	od.doc = doc
	return od
}

func severity(t dxfreader.NotificationType) protocol.DiagnosticSeverity {
	switch t {
	case dxfreader.NotificationError:
		return protocol.DiagnosticSeverityError
	case dxfreader.NotificationWarning:
		return protocol.DiagnosticSeverityWarning
	case dxfreader.NotificationNotImplemented:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

// diagnostic covers the group code and value lines of the record starting
// at the 1-based line.
func (od *openDocument) diagnostic(line int, sev protocol.DiagnosticSeverity, msg string) protocol.Diagnostic {
	start := protocol.UInteger(0)
	if line > 0 {
		start = protocol.UInteger(line - 1)
	}
	end := start + 1
	width := 0
	if int(end) < len(od.lines) {
		width = len(od.lines[end])
	}
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: start},
			End:   protocol.Position{Line: end, Character: protocol.UInteger(width)},
		},
		Severity: &sev,
		Source:   &source,
		Message:  msg,
	}
}

var handleCodes = map[int]string{
	dxf.CodeHandle:         "handle",
	dxf.CodeDimStyleHandle: "handle",
	dxf.CodeSoftOwner:      "owner",
	dxf.CodeHardOwner:      "owner",
	dxf.CodeLayerHandle:    "reference",
	dxf.CodeLineTypeHandle: "line type",
	dxf.CodeColorHandle:    "color",
}

// hover describes the object a handle on the given 0-based line refers
// to. Records are assumed to span two lines each, as the ASCII encoding
// writes them.
func (od *openDocument) hover(line int) string {
	if od.doc == nil || line < 0 || line >= len(od.lines) {
		return ""
	}
	codeLine := line - line%2
	if codeLine+1 >= len(od.lines) {
		return ""
	}
	var code int
	if _, err := fmt.Sscanf(strings.TrimSpace(od.lines[codeLine]), "%d", &code); err != nil {
		return ""
	}
	role, ok := handleCodes[code]
	if !ok {
		return ""
	}
	h, err := cad.ParseHandle(od.lines[codeLine+1])
	if err != nil || h.IsZero() {
		return ""
	}
	o, ok := od.doc.GetObject(h)
	if !ok {
		return fmt.Sprintf("%s `%s`: no object with this handle", role, h)
	}
	return fmt.Sprintf("%s `%s`: %s", role, h, describe(o))
}

func describe(o cad.Object) string {
	switch o := o.(type) {
	case cad.TableEntry:
		return fmt.Sprintf("%s **%s**", o.ObjectName(), o.Name())
	case cad.AnyTable:
		return fmt.Sprintf("%s table, %d entries", o.Name(), o.Len())
	case *cad.Block:
		return fmt.Sprintf("BLOCK **%s**", o.Name)
	case *cad.Insert:
		return fmt.Sprintf("INSERT of **%s** on layer %s", o.BlockName, o.LayerName())
	case cad.Entity:
		return fmt.Sprintf("%s on layer %s", o.ObjectName(), cad.Base(o).LayerName())
	default:
		return o.ObjectName()
	}
}
