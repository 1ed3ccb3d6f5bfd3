// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record:
// the level name colored for the terminal, the message, and then
// the attributes as key=value pairs.
type Handler struct {
	out   *termenv.Output
	level slog.Leveler
	mu    *sync.Mutex

	// preformatted attributes and group prefix from WithAttrs and WithGroup
	attrs  string
	prefix string
}

// NewHandler returns a new [Handler] that writes to w and shows
// records at or above the given level.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	return &Handler{out: termenv.NewOutput(w, opts...), level: level, mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to [os.Stderr] and filtering on [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(ApplyLevelColor(h.out, r.Level, r.Level.String()))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		h.appendAttr(&b, h.prefix, a)
	}
	nh.attrs = b.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func (h *Handler) appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(b, prefix, ga)
		}
		return
	}
	v := a.Value.String()
	if strings.ContainsAny(v, " \t\n\"=") {
		v = fmt.Sprintf("%q", v)
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(v)
}

// ApplyLevelColor returns the given string styled with the color
// corresponding to the given level, as rendered by out. Errors are red,
// warnings yellow, info cyan and debug magenta. The string is returned
// unchanged when out does not support colors.
func ApplyLevelColor(out *termenv.Output, level slog.Level, str string) string {
	var c string
	switch {
	case level >= slog.LevelError:
		c = "1"
	case level >= slog.LevelWarn:
		c = "3"
	case level >= slog.LevelInfo:
		c = "6"
	default:
		c = "5"
	}
	return out.String(str).Foreground(out.Color(c)).Bold().String()
}
