package logger

import (
	"log/slog"
	"strconv"
)

func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Dataset records a reference dataset name under "dataset".
func Dataset(name string) slog.Attr {
	return slog.String("dataset", name)
}

// Category records a sampling category under "category".
func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// SessionID records a generator session under "session_id".
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Source records where datasets are read from under "source".
func Source(kind string) slog.Attr {
	return slog.String("source", kind)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
