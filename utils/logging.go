package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

const (
	LoggingFormatText = "text"
	LoggingFormatJson = "json"
	LoggingFormatGcp  = "gcp"
)

// NewLogger builds the process logger. "text" is meant for a terminal, "json" for log
// collectors, "gcp" for json with the keys cloud logging expects.
func NewLogger(format string) *slog.Logger {
	return newLoggerWithWriter(format, os.Stderr)
}

func newLoggerWithWriter(format string, w io.Writer) *slog.Logger {
	switch format {
	case LoggingFormatJson:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case LoggingFormatGcp:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       slog.LevelDebug,
			ReplaceAttr: GCPLoggerAttributeReplacer,
		}))
	default:
		return slog.New(LocalDevHandlerOptions{
			SlogOpts: slog.HandlerOptions{Level: slog.LevelDebug},
			UseColor: true,
		}.NewLocalDevHandler(w))
	}
}

func GCPLoggerAttributeReplacer(groups []string, a slog.Attr) slog.Attr {
	// Cloud logging reads the main message from "message"
	if a.Key == slog.MessageKey {
		a.Key = "message"
		return a
	}

	if a.Key == slog.LevelKey {
		a.Key = "severity"
		level, _ := a.Value.Any().(slog.Level)
		switch {
		case level < slog.LevelInfo:
			a.Value = slog.StringValue("DEBUG")
		case level < slog.LevelWarn:
			a.Value = slog.StringValue("INFO")
		case level < slog.LevelError:
			a.Value = slog.StringValue("WARNING")
		default:
			a.Value = slog.StringValue("ERROR")
		}
	}

	return a
}

// LocalDevHandler prints "<time> <level> <message> " and delegates the attributes to a
// text handler, which keeps the line readable in a terminal.
type LocalDevHandler struct {
	opts            LocalDevHandlerOptions
	internalHandler slog.Handler

	mu *sync.Mutex
	w  io.Writer
}

type LocalDevHandlerOptions struct {
	SlogOpts slog.HandlerOptions
	UseColor bool
}

func (opts LocalDevHandlerOptions) NewLocalDevHandler(w io.Writer) *LocalDevHandler {
	internalOpts := opts.SlogOpts
	internalOpts.AddSource = false
	internalOpts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
			return slog.Attr{}
		}
		if rep := opts.SlogOpts.ReplaceAttr; rep != nil {
			return rep(groups, a)
		}
		return a
	}
	return &LocalDevHandler{
		opts:            opts,
		w:               w,
		mu:              &sync.Mutex{},
		internalHandler: slog.NewTextHandler(w, &internalOpts),
	}
}

func (h *LocalDevHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.internalHandler.Enabled(ctx, level)
}

func (h *LocalDevHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String()
	if h.opts.UseColor {
		level = colorOfLevel(r.Level).Add(level)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s %s ", r.Time.Format(time.RFC3339), level, r.Message)

	// the prefix and the attributes must land on the same line
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return h.internalHandler.Handle(ctx, r)
}

func (h *LocalDevHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LocalDevHandler{
		opts:            h.opts,
		w:               h.w,
		mu:              h.mu,
		internalHandler: h.internalHandler.WithAttrs(attrs),
	}
}

func (h *LocalDevHandler) WithGroup(name string) slog.Handler {
	return &LocalDevHandler{
		opts:            h.opts,
		w:               h.w,
		mu:              h.mu,
		internalHandler: h.internalHandler.WithGroup(name),
	}
}

type Color uint8

const (
	Red     Color = 31
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
)

func (c Color) Add(s string) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", uint8(c), s)
}

func colorOfLevel(level slog.Level) Color {
	switch {
	case level < slog.LevelInfo:
		return Magenta
	case level < slog.LevelWarn:
		return Blue
	case level < slog.LevelError:
		return Yellow
	default:
		return Red
	}
}
