package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups non-nil errors under "errors".
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

func Form(name string) slog.Attr {
	return slog.String("form", name)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records the failing rule id. Empty ids produce an empty Attr.
func Rule(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("rule", id)
}

func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Transition records a field state change as "from>to".
func Transition(from, to string) slog.Attr {
	return slog.String("transition", from+">"+to)
}

// RequestID records the request id. Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Count(name string, n int) slog.Attr {
	return slog.Int(name, n)
}
