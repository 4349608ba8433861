package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/lalg/analysis"
)

// Diagnostics converts a report to LSP diagnostics with 0-based positions.
// Diagnostics at end of input are placed just after the last token.
func Diagnostics(report *analysis.Report) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	for _, d := range report.Diagnostics() {
		diags = append(diags, protocol.Diagnostic{
			Range:    diagnosticRange(report, d),
			Severity: severityPtr(protocol.DiagnosticSeverityError),
			Source:   stringPtr(lsName),
			Code:     &protocol.IntegerOrString{Value: string(d.Category)},
			Message:  d.Message,
		})
	}
	return diags
}

func diagnosticRange(report *analysis.Report, d analysis.Diagnostic) protocol.Range {
	if d.Line == 0 {
		pos := endOfInput(report)
		return protocol.Range{Start: pos, End: pos}
	}

	line := protocol.UInteger(d.Line - 1)
	if d.Column == 0 {
		return protocol.Range{
			Start: protocol.Position{Line: line},
			End:   protocol.Position{Line: line},
		}
	}
	end := d.EndColumn
	if end < d.Column {
		end = d.Column
	}
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: protocol.UInteger(d.Column - 1)},
		End:   protocol.Position{Line: line, Character: protocol.UInteger(end)},
	}
}

func endOfInput(report *analysis.Report) protocol.Position {
	if len(report.Tokens) == 0 {
		return protocol.Position{}
	}
	last := report.Tokens[len(report.Tokens)-1]
	return protocol.Position{
		Line:      protocol.UInteger(last.Line - 1),
		Character: protocol.UInteger(last.EndColumn),
	}
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func stringPtr(s string) *string {
	return &s
}
