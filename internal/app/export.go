package app

import (
	"context"
	"log/slog"

	"ising/internal/logging"
	"ising/internal/render"
)

const (
	// ExportSucceeded is the alert shown after a successful export.
	ExportSucceeded = "Image saved successfully."
	exportFailed    = "Failed to save image: "
)

// ExportResult is the outcome of a background export.
type ExportResult struct {
	Path string
	Err  error
}

// Message formats the result as a user-facing alert.
func (r ExportResult) Message() string {
	if r.Err != nil {
		return exportFailed + r.Err.Error()
	}
	return ExportSucceeded
}

// ExportTask saves a lattice snapshot on a background goroutine. The pixel
// buffer is owned by the task once started. Poll and Wait must be called from
// one goroutine.
type ExportTask struct {
	cancel context.CancelFunc
	done   chan ExportResult

	result ExportResult
	ready  bool
}

// StartExport begins writing rgb (side×side) to path as PNG.
func StartExport(ctx context.Context, path string, rgb []byte, side int, logger *slog.Logger) *ExportTask {
	ctx, cancel := context.WithCancel(ctx)
	t := &ExportTask{cancel: cancel, done: make(chan ExportResult, 1)}
	log := logging.OrDefault(logger)

	go func() {
		defer cancel()
		res := ExportResult{Path: path}
		if err := ctx.Err(); err != nil {
			res.Err = err
		} else {
			res.Err = render.SavePNG(path, rgb, side)
		}
		if res.Err != nil {
			log.Error("export failed", "path", path, "err", res.Err)
		} else {
			log.Info("image exported", "path", path, "side", side)
		}
		t.done <- res
	}()
	return t
}

// Poll reports the result without blocking. ok is false while the export is
// still running.
func (t *ExportTask) Poll() (ExportResult, bool) {
	if t == nil {
		return ExportResult{}, false
	}
	if t.ready {
		return t.result, true
	}
	select {
	case res := <-t.done:
		t.store(res)
		return res, true
	default:
		return ExportResult{}, false
	}
}

// Wait blocks until the export finishes.
func (t *ExportTask) Wait() ExportResult {
	if t.ready {
		return t.result
	}
	t.store(<-t.done)
	return t.result
}

// Cancel abandons an export that has not started writing.
func (t *ExportTask) Cancel() {
	if t != nil {
		t.cancel()
	}
}

func (t *ExportTask) store(res ExportResult) {
	t.result = res
	t.ready = true
}
