package prettylog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const timeFormat = "[15:04:05.000]"

const (
	reset     = "\033[0m"
	cyan      = 36
	darkGray  = 90
	lightRed  = 91
	lightBlue = 94
	yellow    = 93
	white     = 97
)

func colorize(code int, v string) string {
	return fmt.Sprintf("\033[%dm%s%s", code, v, reset)
}

func levelColor(level slog.Level) int {
	switch {
	case level >= slog.LevelError:
		return lightRed
	case level >= slog.LevelWarn:
		return yellow
	case level >= slog.LevelInfo:
		return cyan
	default:
		return lightBlue
	}
}

// Handler renders records as a single colorized line. It delegates attr
// flattening to an inner JSONHandler writing into a shared buffer, which
// keeps group/With handling consistent with slog's own rules.
type Handler struct {
	inner  slog.Handler
	buf    *bytes.Buffer
	mu     *sync.Mutex
	writer io.Writer
	color  bool
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs), buf: h.buf, mu: h.mu, writer: h.writer, color: h.color}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name), buf: h.buf, mu: h.mu, writer: h.writer, color: h.color}
}

func (h *Handler) attrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.mu.Lock()
	defer func() {
		h.buf.Reset()
		h.mu.Unlock()
	}()

	if err := h.inner.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("inner handler: %w", err)
	}
	var attrs map[string]any
	if err := json.Unmarshal(h.buf.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("unmarshal inner handler output: %w", err)
	}
	return attrs, nil
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	paint := func(code int, v string) string { return v }
	if h.color {
		paint = colorize
	}

	attrs, err := h.attrs(ctx, r)
	if err != nil {
		return err
	}

	out := strings.Builder{}
	out.WriteString(paint(darkGray, r.Time.Format(timeFormat)))
	out.WriteString(" ")
	out.WriteString(paint(levelColor(r.Level), r.Level.String()+":"))
	out.WriteString(" ")
	out.WriteString(paint(white, r.Message))

	if len(attrs) > 0 {
		asBytes, err := json.Marshal(attrs)
		if err != nil {
			return fmt.Errorf("marshal attrs: %w", err)
		}
		out.WriteString(" ")
		out.WriteString(paint(darkGray, string(asBytes)))
	}

	_, err = io.WriteString(h.writer, out.String()+"\n")
	return err
}

func suppressDefaults(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey {
		return slog.Attr{}
	}
	return a
}

func New(w io.Writer, level slog.Leveler, color bool) *Handler {
	buf := &bytes.Buffer{}
	return &Handler{
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: suppressDefaults,
		}),
		buf:    buf,
		mu:     &sync.Mutex{},
		writer: w,
		color:  color,
	}
}

// LevelFromEnv reads LOG_LEVEL (debug, info, warn, error); anything else is
// info.
func LevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetProgramLevelPrettyLogger(w io.Writer) *slog.Logger {
	logger := slog.New(New(w, LevelFromEnv(), true))
	slog.SetDefault(logger)
	return logger
}
