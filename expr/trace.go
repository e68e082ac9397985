package expr

import (
	"io"
	"log/slog"
	"os"
)

type Tracer interface {
	Shift(string, string, int)
	Reduce(string, int)
	Error(string, error)
}

type discardTracer struct{}

func (_ discardTracer) Shift(_, _ string, _ int) {}
func (_ discardTracer) Reduce(_ string, _ int)   {}
func (_ discardTracer) Error(_ string, _ error)  {}

type stdioTracer struct {
	logger   *slog.Logger
	errcount int
}

func TraceStdout() Tracer {
	return TraceWriter(os.Stdout)
}

func TraceStderr() Tracer {
	return TraceWriter(os.Stderr)
}

func TraceWriter(w io.Writer) Tracer {
	tracer := stdioTracer{
		logger: stdioLogger(w),
	}
	return &tracer
}

func stdioLogger(w io.Writer) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}

func (t *stdioTracer) Shift(step, token string, depth int) {
	args := []any{
		"step",
		step,
		"token",
		token,
		"depth",
		depth,
	}
	t.logger.Debug("shift token", args...)
}

func (t *stdioTracer) Reduce(token string, depth int) {
	args := []any{
		"operator",
		token,
		"depth",
		depth,
	}
	t.logger.Debug("reduce operands", args...)
}

func (t *stdioTracer) Error(step string, err error) {
	t.errcount++
	args := []any{
		"step",
		step,
		"error",
		err,
		"count",
		t.errcount,
	}
	t.logger.Error("invalid expression", args...)
}
