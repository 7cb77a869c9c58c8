package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// NewHumanTextHandler returns a handler writing one line per record,
// colorized when w is a terminal.
func NewHumanTextHandler(w io.Writer, opts *slog.HandlerOptions,
	logTime bool,
) *HumanTextHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	colorized := false
	if f, ok := w.(*os.File); ok {
		colorized = term.IsTerminal(int(f.Fd()))
	}

	return &HumanTextHandler{
		w:         w,
		opts:      *opts,
		logTime:   logTime,
		colorized: colorized,
		mu:        new(sync.Mutex),
	}
}

type HumanTextHandler struct {
	w    io.Writer
	opts slog.HandlerOptions

	logTime   bool
	colorized bool

	attrs  []slog.Attr
	groups []string

	mu *sync.Mutex
}

var _ slog.Handler = (*HumanTextHandler)(nil)

func (self *HumanTextHandler) Enabled(_ context.Context, level slog.Level,
) bool {
	minLevel := slog.LevelInfo
	if self.opts.Level != nil {
		minLevel = self.opts.Level.Level()
	}
	return level >= minLevel
}

func (self *HumanTextHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	if self.logTime && !r.Time.IsZero() {
		b.WriteString(self.dim(r.Time.Format("15:04:05")))
		b.WriteByte(' ')
	}

	b.WriteString(self.level(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range self.attrs {
		self.appendAttr(&b, a, self.groups)
	}
	r.Attrs(func(a slog.Attr) bool {
		self.appendAttr(&b, a, self.groups)
		return true
	})
	b.WriteByte('\n')

	self.mu.Lock()
	defer self.mu.Unlock()
	if _, err := io.WriteString(self.w, b.String()); err != nil {
		return fmt.Errorf("cli/logger: write human record: %w", err)
	}
	return nil
}

func (self *HumanTextHandler) appendAttr(b *strings.Builder, a slog.Attr,
	groups []string,
) {
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		groups = append(groups, a.Key)
		for _, ga := range a.Value.Group() {
			self.appendAttr(b, ga, groups)
		}
		return
	}

	b.WriteByte(' ')
	key := a.Key
	if len(groups) != 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	b.WriteString(self.dim(key + "="))
	b.WriteString(fmt.Sprint(a.Value.Any()))
}

func (self *HumanTextHandler) level(l slog.Level) string {
	s := l.String()
	if !self.colorized {
		return s
	}

	switch {
	case l >= slog.LevelError:
		return ansiRed + s + ansiReset
	case l >= slog.LevelWarn:
		return ansiYellow + s + ansiReset
	case l >= slog.LevelInfo:
		return ansiBlue + s + ansiReset
	}
	return self.dim(s)
}

func (self *HumanTextHandler) dim(s string) string {
	if !self.colorized {
		return s
	}
	return ansiDim + s + ansiReset
}

func (self *HumanTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h := *self
	h.attrs = append(append([]slog.Attr{}, self.attrs...), attrs...)
	return &h
}

func (self *HumanTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return self
	}
	h := *self
	h.groups = append(append([]string{}, self.groups...), name)
	return &h
}
