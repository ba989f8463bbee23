package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/sethvargo/go-githubactions"
)

// Supported log formats.
const (
	FormatWorkflow = "workflow"
	FormatJSON     = "json"
	FormatText     = "text"
)

// NewHandler returns the slog handler for format, writing to w.
// Unknown formats fall back to JSON.
func NewHandler(format string, level slog.Level, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case FormatWorkflow:
		return NewWorkflowHandler(w, level)
	case FormatText:
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// WorkflowHandler writes records the way the Actions runner renders step logs:
// info as plain lines, other levels as debug/warning/error commands.
type WorkflowHandler struct {
	mu     *sync.Mutex
	action *githubactions.Action
	level  slog.Leveler
	prefix string
	attrs  []slog.Attr
}

var _ slog.Handler = (*WorkflowHandler)(nil)

// NewWorkflowHandler creates a WorkflowHandler.
func NewWorkflowHandler(w io.Writer, level slog.Leveler) *WorkflowHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &WorkflowHandler{
		mu:     &sync.Mutex{},
		action: githubactions.New(githubactions.WithWriter(w)),
		level:  level,
	}
}

func (h *WorkflowHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *WorkflowHandler) Handle(_ context.Context, r slog.Record) error {
	var builder strings.Builder
	builder.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&builder, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&builder, h.prefix, a)
		return true
	})
	text := builder.String()

	h.mu.Lock()
	defer h.mu.Unlock()
	switch {
	case r.Level >= slog.LevelError:
		h.action.Errorf("%s", text)
	case r.Level >= slog.LevelWarn:
		h.action.Warningf("%s", text)
	case r.Level < slog.LevelInfo:
		h.action.Debugf("%s", text)
	default:
		h.action.Infof("%s", text)
	}
	return nil
}

func (h *WorkflowHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (h *WorkflowHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func writeAttr(builder *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(builder, group, ga)
		}
		return
	}
	builder.WriteByte(' ')
	builder.WriteString(prefix)
	builder.WriteString(a.Key)
	builder.WriteByte('=')
	builder.WriteString(a.Value.String())
}
