package fb

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so slog skips
// building the attributes of disabled calls.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// active is read on every fill and export and may be swapped by SetLogger
// from any goroutine.
var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(silent)
}

// SetLogger routes fb's diagnostics to l. Passing nil silences them again,
// which is also the initial state.
//
// Records written by fb:
//   - Debug "framebuffer created": width, height, background, workers
//   - Debug "polygon filled": vertices, yMin, yMax, color
//   - Debug "framebuffer exported": path, format, width, height
//   - Warn "polygon skipped" and Info "scene rendered" from package scene
//
// To see which scanlines each polygon touched:
//
//	fb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
//	_ = scene.Default().Render(f)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger. The scene package and
// cmd/polygons log through it as well.
func Logger() *slog.Logger {
	return active.Load()
}
