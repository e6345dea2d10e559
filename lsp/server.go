// Package lsp serves ENDF diagnostics and hover information over the
// Language Server Protocol.
package lsp

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/endf/endf"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "endf"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	log     commonlog.Logger
	opts    []endf.Option

	mu        sync.Mutex
	documents map[string][]byte
}

// NewServer creates a language server. opts are applied to every decode
// on top of the file name.
func NewServer(version string, opts ...endf.Option) *Server {
	ls := &Server{
		version:   version,
		log:       commonlog.GetLogger("endf.lsp"),
		opts:      opts,
		documents: make(map[string][]byte),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.documents, params.TextDocument.URI)
	ls.mu.Unlock()
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text []byte) {
	ls.mu.Lock()
	ls.documents[uri] = text
	ls.mu.Unlock()

	diagnostics := Diagnose(text, uriToPath(uri), ls.opts...)
	ls.log.Debugf("%s: %d diagnostics", uri, len(diagnostics))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	ls.mu.Lock()
	text, ok := ls.documents[params.TextDocument.URI]
	ls.mu.Unlock()
	if !ok {
		return nil, nil
	}
	value := Describe(text, int(params.Position.Line), int(params.Position.Character))
	if value == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: value,
		},
	}, nil
}

// Diagnose decodes text and reports its first fatal error and every
// ordering warning. Lines are 0-based as in the protocol.
func Diagnose(text []byte, file string, opts ...endf.Option) []protocol.Diagnostic {
	var warnings []*endf.Error
	all := append([]endf.Option{
		endf.WithFile(file),
		endf.WithWarningHandler(func(e *endf.Error) error {
			warnings = append(warnings, e)
			return nil
		}),
	}, opts...)
	_, err := endf.Decode(bytes.NewReader(text), all...)

	diagnostics := []protocol.Diagnostic{}
	for _, w := range warnings {
		diagnostics = append(diagnostics, diagnostic(w, protocol.DiagnosticSeverityWarning))
	}
	if err != nil {
		var e *endf.Error
		if !errors.As(err, &e) {
			e = &endf.Error{Text: err.Error()}
		}
		diagnostics = append(diagnostics, diagnostic(e, protocol.DiagnosticSeverityError))
	}
	return diagnostics
}

func diagnostic(e *endf.Error, severity protocol.DiagnosticSeverity) protocol.Diagnostic {
	line := protocol.UInteger(0)
	if e.Line > 0 {
		line = protocol.UInteger(e.Line - 1)
	}
	source := lsName
	msg := *e
	msg.File = ""
	msg.Line = 0
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line, Character: endf.LineWidth},
		},
		Severity: &severity,
		Source:   &source,
		Message:  msg.Error(),
	}
}

// Describe renders the identifiers of the line at the 0-based position and
// the data field under the cursor as markdown.
func Describe(text []byte, line, character int) string {
	lines := bytes.Split(text, []byte("\n"))
	if line < 0 || line >= len(lines) {
		return ""
	}
	l, err := endf.DecodeLine(lines[line], line+1, false)
	if err != nil {
		return fmt.Sprintf("**line %d**: %v", line+1, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**MAT** %d · **MF** %d · **MT** %d · **NS** %d", l.MAT, l.MF, l.MT, l.NS)
	if s := l.Sentinel(); s != endf.NotSentinel {
		fmt.Fprintf(&sb, " · %s", s)
	}
	if character < 0 || character >= endf.DataWidth {
		return sb.String()
	}
	i := character / endf.FieldWidth
	raw := l.Field(i)
	fmt.Fprintf(&sb, "\n\nfield %d (columns %d-%d): `%s`", i+1, i*endf.FieldWidth+1, (i+1)*endf.FieldWidth, raw)
	if v, err := endf.ParseInt(raw); err == nil {
		fmt.Fprintf(&sb, "\n\ninteger %d", v)
	} else if v, err := endf.ParseFloat(raw); err == nil {
		fmt.Fprintf(&sb, "\n\nreal %g", v)
	}
	return sb.String()
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return uri
		}
		return filepath.Clean(parsed.Path)
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
