package logging

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// derive returns ctx with a child of its logger built by add.
func derive(ctx context.Context, add func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, add(FromContext(ctx).With()).Logger())
}

// With adds arbitrary fields, in key order so repeated calls log identically.
func With(ctx context.Context, fields map[string]any) context.Context {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		for _, k := range keys {
			c = c.Interface(k, fields[k])
		}
		return c
	})
}

// WithComponent tags entries with the subsystem that wrote them.
func WithComponent(ctx context.Context, component string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("component", component) })
}

func WithWorkspace(ctx context.Context, index int) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Int("workspace", index) })
}

func WithWinKey(ctx context.Context, key string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("win_key", key) })
}
