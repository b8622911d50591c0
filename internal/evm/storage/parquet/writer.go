package parquet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/batcher"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
	parquetgo "github.com/parquet-go/parquet-go"
	"go.uber.org/zap"
)

// ErrStorageFailure marks encode or write failures. They are not retried.
var ErrStorageFailure = errors.New("storage failure")

// Config describes where and how blocks are written.
type Config struct {
	Dir string
	// FlushThreshold is the number of pending blocks that triggers a write.
	FlushThreshold int
	// RotationBlocks closes the current file once it holds at least this many
	// blocks. Zero disables automatic rotation.
	RotationBlocks uint64
}

// Writer batches blocks and appends each batch as one row group to the open file.
type Writer struct {
	logger         *zap.Logger
	metrics        WriterMetrics
	dir            string
	rotationBlocks uint64
	now            func() time.Time

	mu         sync.Mutex
	pending    *batcher.Batcher[model.Block]
	file       *os.File
	out        *parquetgo.GenericWriter[BlockRow]
	path       string
	fileBlocks uint64
}

// NewWriter creates the data directory and returns a Writer with no file open.
func NewWriter(cfg Config, metrics WriterMetrics, logger *zap.Logger) (*Writer, error) {
	if cfg.Dir == "" {
		return nil, errors.New("storage writer data dir is required")
	}
	if metrics == nil {
		return nil, errors.New("storage writer metrics is required")
	}
	if err := os.MkdirAll(cfg.Dir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: create data dir %s: %w", ErrStorageFailure, cfg.Dir, err)
	}

	w := &Writer{
		logger:         logger,
		metrics:        metrics,
		dir:            cfg.Dir,
		rotationBlocks: cfg.RotationBlocks,
		now:            clock.NowUTC,
	}
	pending, err := batcher.New[model.Block](logger, w.writeBatch, cfg.FlushThreshold)
	if err != nil {
		return nil, fmt.Errorf("storage writer: %w", err)
	}
	w.pending = pending
	return w, nil
}

// Accept appends block to the pending batch and writes the batch once it is full.
// Only a failed write is reported.
func (w *Writer) Accept(block model.Block) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.pending.Add(block); err != nil {
		return err
	}
	return w.rotateIfFull()
}

// Flush writes the pending batch, if any.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.pending.Flush(); err != nil {
		return err
	}
	return w.rotateIfFull()
}

// Rotate writes the pending batch, finalizes the current file and opens a new one.
func (w *Writer) Rotate() (err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.metrics.ObserveRotate(err) }()

	if err := w.pending.Flush(); err != nil {
		return err
	}
	if err := w.closeFile(); err != nil {
		return err
	}
	return w.openFile()
}

// Close finalizes the open file. Pending blocks are written first only when
// flushPending is set; otherwise they are dropped.
func (w *Writer) Close(flushPending bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var flushErr error
	if flushPending {
		flushErr = w.pending.Flush()
	} else if n := w.pending.Len(); n > 0 {
		w.logger.Warn("closing writer with unflushed blocks", zap.Int("pending", n))
	}
	if err := w.closeFile(); err != nil && flushErr == nil {
		return err
	}
	return flushErr
}

// CurrentPath returns the path of the open file, or "" when none is open.
func (w *Writer) CurrentPath() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Pending returns the number of accepted blocks not yet written.
func (w *Writer) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending.Len()
}

// writeBatch is the batcher callback; w.mu is held by the caller.
func (w *Writer) writeBatch(blocks []model.Block) (err error) {
	started := time.Now()
	defer func() { w.metrics.ObserveFlush(err, len(blocks), started) }()

	buf, err := Encode(blocks)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if w.out == nil {
		if err := w.openFile(); err != nil {
			return err
		}
	}
	if _, err := w.out.WriteRowGroup(buf); err != nil {
		return fmt.Errorf("%w: write row group to %s: %w", ErrStorageFailure, w.path, err)
	}

	n, err := safe.Uint64(len(blocks))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	w.fileBlocks += n
	w.logger.Debug("row group written",
		zap.String("path", w.path),
		zap.Uint64("first_block", blocks[0].Number),
		zap.Uint64("last_block", blocks[len(blocks)-1].Number),
		zap.Int("blocks", len(blocks)),
	)
	return nil
}

func (w *Writer) rotateIfFull() error {
	if w.rotationBlocks == 0 || w.out == nil || w.fileBlocks < w.rotationBlocks {
		return nil
	}
	w.logger.Info("rotation threshold reached",
		zap.String("path", w.path), zap.Uint64("blocks", w.fileBlocks))
	err := w.closeFile()
	w.metrics.ObserveRotate(err)
	return err
}

func (w *Writer) openFile() error {
	base := filePrefix + w.now().UTC().Format(fileTimeLayout)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := base + fileExt
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d%s", base, attempt, fileExt)
		}
		path := filepath.Join(w.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: create %s: %w", ErrStorageFailure, path, err)
		}

		w.file = f
		// Unbuffered so a flushed row group is on disk before pending blocks are dropped.
		w.out = parquetgo.NewGenericWriter[BlockRow](f,
			parquetgo.Compression(&parquetgo.Snappy),
			parquetgo.WriteBufferSize(0),
		)
		w.path = path
		w.fileBlocks = 0
		w.logger.Info("output file opened", zap.String("path", path))
		return nil
	}
	return fmt.Errorf("%w: no free file name for %s after %d attempts", ErrStorageFailure, base, maxNameAttempts)
}

// closeFile writes the footer and releases the handle. Safe with no file open.
func (w *Writer) closeFile() error {
	if w.out == nil {
		return nil
	}
	path, blocks := w.path, w.fileBlocks
	finalizeErr := w.out.Close()
	closeErr := w.file.Close()
	w.out, w.file, w.path, w.fileBlocks = nil, nil, "", 0

	if finalizeErr != nil {
		return fmt.Errorf("%w: finalize %s: %w", ErrStorageFailure, path, finalizeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: close %s: %w", ErrStorageFailure, path, closeErr)
	}
	w.logger.Info("output file finalized", zap.String("path", path), zap.Uint64("blocks", blocks))
	return nil
}
