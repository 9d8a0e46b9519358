// Package logger builds component loggers that tag every line with a
// coloured component name.
package logger

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/beka-birhanu/vinom-mazegen/config"
)

// prefixWriter writes every line it receives behind a fixed prefix.
type prefixWriter struct {
	mu     sync.Mutex
	prefix []byte
	out    io.Writer
}

func (w *prefixWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var buf bytes.Buffer
	for _, line := range bytes.SplitAfter(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		buf.Write(w.prefix)
		buf.Write(line)
	}
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// New returns a logger writing text records to out, each prefixed with
// "[component]" in the given terminal colour.
func New(component, color string, out io.Writer) (*slog.Logger, error) {
	if component == "" {
		return nil, errors.New("logger: component name is required")
	}
	if out == nil {
		return nil, errors.New("logger: output writer is required")
	}

	w := &prefixWriter{
		prefix: []byte(color + "[" + component + "]" + config.ColorReset + " "),
		out:    out,
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})), nil
}
