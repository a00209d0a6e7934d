package slogcute

import (
	"context"
	"encoding/json"
	"io"
	stdLog "log"
	"log/slog"

	"github.com/fatih/color"
)

type CuteHandlerOptions struct {
	SlogOptions *slog.HandlerOptions
}

type CuteHandler struct {
	logger *stdLog.Logger
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
}

// NewCuteHandler creates a new CuteHandler with the given options.
func (opts CuteHandlerOptions) NewCuteHandler(out io.Writer) *CuteHandler {
	handler := &CuteHandler{
		logger: stdLog.New(out, "", 0),
		level:  slog.LevelInfo,
	}
	if opts.SlogOptions != nil && opts.SlogOptions.Level != nil {
		handler.level = opts.SlogOptions.Level
	}
	return handler
}

// Enabled reports whether the level is at or above the configured minimum.
func (handler *CuteHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level.Level()
}

// Handle formats and outputs the log record in a cute way.
func (handler *CuteHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]interface{}, r.NumAttrs()+len(handler.attrs))

	for _, a := range handler.attrs {
		fields[a.Key] = a.Value.Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		fields[handler.key(a.Key)] = a.Value.Resolve().Any()

		return true
	})

	var b []byte
	var err error

	if len(fields) > 0 {
		b, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	msg := color.CyanString(r.Message)

	handler.logger.Println(
		timeStr,
		level,
		msg,
		color.WhiteString(string(b)),
	)

	return nil
}

// WithAttrs returns a new CuteHandler with the given attributes added.
func (handler *CuteHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(handler.attrs)+len(attrs))
	merged = append(merged, handler.attrs...)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: handler.key(a.Key), Value: a.Value})
	}

	return &CuteHandler{
		logger: handler.logger,
		level:  handler.level,
		attrs:  merged,
		group:  handler.group,
	}
}

// WithGroup returns a new CuteHandler that prefixes later keys with name.
func (handler *CuteHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}

	return &CuteHandler{
		logger: handler.logger,
		level:  handler.level,
		attrs:  handler.attrs,
		group:  handler.key(name),
	}
}

func (handler *CuteHandler) key(k string) string {
	if handler.group == "" {
		return k
	}
	return handler.group + "." + k
}
