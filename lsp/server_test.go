package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/lalg/analysis"
)

type notification struct {
	method string
	params protocol.PublishDiagnosticsParams
}

func recordingContext(t *testing.T, sent *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			p, ok := params.(protocol.PublishDiagnosticsParams)
			require.True(t, ok, "params %T", params)
			*sent = append(*sent, notification{method: method, params: p})
		},
	}
}

func TestDiagnosticsSyntaxError(t *testing.T) {
	diags := Diagnostics(analysis.Analyze("int a b;"))

	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, protocol.UInteger(0), d.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(6), d.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(7), d.Range.End.Character)
	require.NotNil(t, d.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, "syntax", d.Code.Value)
	assert.Contains(t, d.Message, "found identifier 'b'")
}

func TestDiagnosticsLexicalErrors(t *testing.T) {
	diags := Diagnostics(analysis.Analyze("int a;\nx @ y"))

	require.NotEmpty(t, diags)
	assert.Equal(t, "lexical", diags[0].Code.Value)
	assert.Equal(t, protocol.UInteger(1), diags[0].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(2), diags[0].Range.Start.Character)
}

func TestDiagnosticsEndOfInput(t *testing.T) {
	diags := Diagnostics(analysis.Analyze("program p;\nbegin end"))

	require.Len(t, diags, 1)
	assert.Equal(t, protocol.UInteger(1), diags[0].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(9), diags[0].Range.Start.Character)
}

func TestDiagnosticsClean(t *testing.T) {
	diags := Diagnostics(analysis.Analyze("program p; begin end."))
	assert.NotNil(t, diags)
	assert.Empty(t, diags)
}

func TestServerPublishesOnOpenAndClose(t *testing.T) {
	var sent []notification
	ctx := recordingContext(t, &sent)
	ls := NewServer("", "test")
	uri := protocol.DocumentUri("file:///tmp/p.lalg")

	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "int a b;"},
	}))
	require.Len(t, sent, 1)
	assert.Equal(t, string(protocol.ServerTextDocumentPublishDiagnostics), sent[0].method)
	assert.Equal(t, uri, sent[0].params.URI)
	assert.Len(t, sent[0].params.Diagnostics, 1)

	require.NoError(t, ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "int a, b;"}},
	}))
	require.Len(t, sent, 2)
	assert.Empty(t, sent[1].params.Diagnostics)

	require.NoError(t, ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	require.Len(t, sent, 3)
	assert.Empty(t, sent[2].params.Diagnostics)

	require.NoError(t, ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	require.Len(t, sent, 4)
	assert.NotNil(t, sent[3].params.Diagnostics)
	assert.Empty(t, sent[3].params.Diagnostics)
}

func TestServerInitialize(t *testing.T) {
	ls := NewServer("lalg-test", "1.2.3")
	res, err := ls.initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	result, ok := res.(protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, "lalg-test", result.ServerInfo.Name)
	assert.Equal(t, "1.2.3", *result.ServerInfo.Version)
}
