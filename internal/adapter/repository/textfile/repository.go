package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/gocaixa/internal/domain"
)

const (
	// DefaultFileName is the aggregate store's file name.
	DefaultFileName = "fechamentos_db.txt"

	filePerm = 0o644
	dirPerm  = 0o755
)

// Metrics receives load-time counters.
type Metrics interface {
	BlockSkipped()
}

type nopMetrics struct{}

func (nopMetrics) BlockSkipped() {}

// Config configures a Repository.
type Config struct {
	Path    string // aggregate file; side files are written next to it
	Logger  zerolog.Logger
	Retrier *Retrier
	Metrics Metrics
}

// Repository keeps closings in one text file of back-to-back blocks and
// exports each created or edited closing to its own file.
type Repository struct {
	path    string
	logger  zerolog.Logger
	retrier *Retrier
	metrics Metrics
}

// NewRepository creates a Repository.
func NewRepository(cfg Config) *Repository {
	if cfg.Retrier == nil {
		cfg.Retrier = NewRetrier(cfg.Logger)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	return &Repository{
		path:    cfg.Path,
		logger:  cfg.Logger.With().Str("component", "textfile").Logger(),
		retrier: cfg.Retrier,
		metrics: cfg.Metrics,
	}
}

// Path returns the aggregate file path.
func (r *Repository) Path() string {
	return r.path
}

// Load reads every closing from the aggregate file. A missing file yields an
// empty collection. Blocks that fail to decode are logged and skipped. The
// lone machine of an evening closing that follows its morning closing is read
// back as the shift difference entry.
func (r *Repository) Load(ctx context.Context) ([]*domain.ClosingRecord, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug().Str("path", r.path).Msg("store file not found, starting empty")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	var (
		records    []*domain.ClosingRecord
		block      []string
		blockStart int
		blockNum   int
		lineNum    int
	)

	for _, line := range strings.Split(string(data), "\n") {
		lineNum++
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if len(block) == 0 {
			blockStart = lineNum
		}
		block = append(block, text)

		if text != Sentinel {
			continue
		}

		blockNum++
		rec, err := DecodeBlock(block)
		if err != nil {
			r.skip(err, blockNum, blockStart)
		} else {
			records = append(records, rec)
		}
		block = block[:0]
	}
	if len(block) > 0 {
		r.skip(fmt.Errorf("%w: no %q sentinel", errMissingLine, Sentinel), blockNum+1, blockStart)
	}

	restored := domain.RestoreShiftDifferences(records)

	r.logger.Debug().
		Str("path", r.path).
		Int("records", len(records)).
		Int("shift_differences", restored).
		Msg("store loaded")

	return records, nil
}

func (r *Repository) skip(err error, blockNum, startLine int) {
	r.metrics.BlockSkipped()
	r.logger.Warn().
		Err(err).
		Str("path", r.path).
		Int("block", blockNum).
		Int("line", startLine).
		Msg("skipping unreadable closing block")
}

// Save rewrites the aggregate file with records, in order.
func (r *Repository) Save(ctx context.Context, records []*domain.ClosingRecord) error {
	var lines []string
	for _, rec := range records {
		lines = append(lines, EncodeBlock(rec)...)
	}

	if err := r.write(ctx, r.path, lines); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	r.logger.Debug().
		Str("path", r.path).
		Int("records", len(records)).
		Msg("store saved")
	return nil
}

// WriteRecordFile exports rec to its own file next to the aggregate store and
// returns the path written. The file is never read back.
func (r *Repository) WriteRecordFile(ctx context.Context, rec *domain.ClosingRecord) (string, error) {
	path := filepath.Join(filepath.Dir(r.path), RecordFileName(rec))
	if err := r.write(ctx, path, EncodeBlock(rec)); err != nil {
		return "", fmt.Errorf("write closing file: %w", err)
	}
	return path, nil
}

// RecordFileName names a closing's side file after its date and shift,
// e.g. fechamento_15-03-2024_turno2.txt.
func RecordFileName(rec *domain.ClosingRecord) string {
	return fmt.Sprintf("fechamento_%s_turno%d.txt", rec.Date().Format("02-01-2006"), int(rec.Shift()))
}

func (r *Repository) write(ctx context.Context, path string, lines []string) error {
	return r.retrier.Retry(ctx, func() error {
		return writeFileAtomic(path, lines)
	})
}

// writeFileAtomic replaces path through a temp file in the same directory.
func writeFileAtomic(path string, lines []string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, ln := range lines {
		if _, err = w.WriteString(ln); err != nil {
			return err
		}
		if err = w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
