// Package lsp serves parse diagnostics for puzzle input files over the
// Language Server Protocol.
package lsp

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/advent2020/parser"
	"github.com/dhamidi/advent2020/puzzle"
)

const lsName = "advent"

var log = commonlog.GetLogger("advent.lsp")

type Server struct {
	days    []puzzle.Day
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string, days []puzzle.Day) *Server {
	ls := &Server{
		days:    days,
		version: version,
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
	log.Infof("serving diagnostics for %d days", len(ls.days))
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
	ls.publish(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.publish(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.publish(ctx, params.TextDocument.URI, *params.Text)
		return nil
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warningf("read %s: %s", path, err)
		return nil
	}
	ls.publish(ctx, params.TextDocument.URI, string(data))
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	path, err := uriToPath(uri)
	if err != nil {
		return
	}
	diagnostics, ok := Diagnose(ls.days, path, text)
	if !ok {
		return
	}
	log.Debugf("%s: %d diagnostics", path, len(diagnostics))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// dayNumber matches the "day<N>" prefix of a file name.
var dayNumber = parser.Preceded(parser.Tag("day"), parser.Uint8)

// DayOf returns the day a file belongs to, judged by its base name:
// "day07.txt" and "day7" both belong to day 7.
func DayOf(days []puzzle.Day, path string) puzzle.Day {
	n, rest, err := dayNumber(filepath.Base(path))
	if err != nil || (rest != "" && rest[0] != '.') {
		return nil
	}
	for _, d := range days {
		if d.Number() == int(n) {
			return d
		}
	}
	return nil
}

// Diagnose parses text with the parser of the day path belongs to. It
// reports false if path belongs to no known day.
func Diagnose(days []puzzle.Day, path, text string) ([]protocol.Diagnostic, bool) {
	d := DayOf(days, path)
	if d == nil {
		return nil, false
	}

	err := d.Check(strings.TrimSuffix(text, "\n"))
	if err == nil {
		return []protocol.Diagnostic{}, true
	}
	return []protocol.Diagnostic{diagnostic(err)}, true
}

func diagnostic(err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	diag := protocol.Diagnostic{
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}

	var serr *parser.SyntaxError
	if !errors.As(err, &serr) {
		return diag
	}

	msg := serr.Kind.String()
	if serr.Err != nil {
		msg += ": " + serr.Err.Error()
	}
	diag.Message = msg

	line := protocol.UInteger(serr.Pos.Line - 1)
	col := protocol.UInteger(serr.Pos.Column - 1)
	diag.Range = protocol.Range{
		Start: protocol.Position{Line: line, Character: col},
		End:   protocol.Position{Line: line, Character: col + 1},
	}
	return diag
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
