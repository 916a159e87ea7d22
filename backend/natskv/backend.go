package natskv

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/internal/kvutil"
	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/internal/logger"
	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/internal/natsutil"
	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

// Config configures the NATS KV matrix backend.
type Config struct {
	// Bucket is the JetStream KV bucket holding matrix chunks.
	// Default: "strassen-matrices"
	Bucket string `yaml:"bucket"`

	// ChunkRows is the number of matrix rows stored per KV entry.
	// Larger chunks mean fewer round trips but bigger messages; the
	// value must stay below the server's maximum payload for the widest
	// matrix stored. Default: 64
	ChunkRows int `yaml:"chunkRows"`
}

// setDefaults fills in missing configuration values.
func (cfg *Config) setDefaults() {
	if cfg.Bucket == "" {
		cfg.Bucket = "strassen-matrices"
	}
	if cfg.ChunkRows == 0 {
		cfg.ChunkRows = 64
	}
}

// Option configures a Backend with optional dependencies.
type Option func(*backendOptions)

type backendOptions struct {
	logger types.Logger
}

// WithLogger sets a structured logger for storage fault reporting.
func WithLogger(l types.Logger) Option {
	return func(o *backendOptions) {
		o.logger = l
	}
}

// Backend implements types.Backend over a NATS JetStream KV bucket.
//
// Safe for concurrent use on distinct handles. Handle data in the bucket
// is immutable: result chunks are always written under a fresh handle ID
// and existing chunks are never rewritten.
type Backend struct {
	kv     jetstream.KeyValue
	cfg    Config
	logger types.Logger

	// cache holds canonical materialized rows per handle ID. Entries
	// are read-only once stored; Materialize hands out copies.
	cache *xsync.Map[string, [][]float64]
}

// Compile-time assertion that Backend implements types.Backend.
var _ types.Backend = (*Backend)(nil)

// New creates a KV-backed matrix backend, provisioning the bucket if it
// does not exist.
//
// Parameters:
//   - ctx: Context for bucket provisioning
//   - js: JetStream context
//   - cfg: Backend configuration; zero fields are filled with defaults
//   - opts: Functional options (WithLogger)
//
// Returns:
//   - *Backend: Ready-to-use backend
//   - error: Bucket provisioning failure
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	be, err := natskv.New(ctx, js, natskv.Config{Bucket: "matrices"})
func New(ctx context.Context, js jetstream.JetStream, cfg Config, opts ...Option) (*Backend, error) {
	cfg.setDefaults()

	options := &backendOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}

	kv, err := kvutil.EnsureKVBucket(ctx, js, jetstream.KeyValueConfig{Bucket: cfg.Bucket}, 3)
	if err != nil {
		return nil, fmt.Errorf("provision bucket %q: %w", cfg.Bucket, err)
	}

	return &Backend{
		kv:     kv,
		cfg:    cfg,
		logger: options.logger,
		cache:  xsync.NewMap[string, [][]float64](),
	}, nil
}

// FlushCache drops all locally cached matrix data.
//
// Chunk data in the bucket is untouched; subsequent reads re-fetch. Call
// between top-level multiplies to bound resident memory.
func (b *Backend) FlushCache() {
	b.cache.Clear()
}

// handle is an immutable reference to chunked matrix data in the bucket.
type handle struct {
	b    *Backend
	id   string
	rows int
	cols int
}

var _ types.Matrix = (*handle)(nil)

func (h *handle) Rows() int { return h.rows }

func (h *handle) Cols() int { return h.cols }

// key returns the KV key of the band-th chunk.
func (h *handle) key(band int) string {
	return fmt.Sprintf("m.%s.%d", h.id, band)
}

// Materialize collects the full matrix into caller-owned nested slices.
func (h *handle) Materialize(ctx context.Context) ([][]float64, error) {
	data, err := h.b.fetch(ctx, h)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(data))
	for i, row := range data {
		cp := make([]float64, len(row))
		copy(cp, row)
		out[i] = cp
	}

	return out, nil
}

// Distribute constructs a new handle from local dense data.
func (b *Backend) Distribute(ctx context.Context, data [][]float64) (types.Matrix, error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, types.NewShapeError("distribute",
				"row %d has %d columns, expected %d", i, len(row), cols)
		}
	}

	// Copy into canonical storage so later caller mutations cannot leak
	// into the cache.
	canonical := make([][]float64, rows)
	for i, row := range data {
		cp := make([]float64, cols)
		copy(cp, row)
		canonical[i] = cp
	}

	return b.store(ctx, canonical)
}

// Partition splits m into four quadrant handles.
func (b *Backend) Partition(ctx context.Context, m types.Matrix) (*types.Quadrants, error) {
	src, err := b.localData(ctx, m)
	if err != nil {
		return nil, err
	}

	n := len(src)
	half := n / 2

	quads := make([]types.Matrix, 4)
	for qi, r := range [4][4]int{
		{0, half, 0, half},
		{0, half, half, n},
		{half, n, 0, half},
		{half, n, half, n},
	} {
		block := make([][]float64, r[1]-r[0])
		for i := range block {
			block[i] = append([]float64(nil), src[r[0]+i][r[2]:r[3]]...)
		}
		q, err := b.store(ctx, block)
		if err != nil {
			return nil, err
		}
		quads[qi] = q
	}

	return &types.Quadrants{Q11: quads[0], Q12: quads[1], Q21: quads[2], Q22: quads[3]}, nil
}

// Combine applies op element-wise over two same-shape handles.
func (b *Backend) Combine(ctx context.Context, x, y types.Matrix, op types.Op) (types.Matrix, error) {
	left, err := b.localData(ctx, x)
	if err != nil {
		return nil, err
	}
	right, err := b.localData(ctx, y)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(left))
	for i, row := range left {
		res := make([]float64, len(row))
		switch op {
		case types.OpAdd:
			for j, v := range row {
				res[j] = v + right[i][j]
			}
		case types.OpSubtract:
			for j, v := range row {
				res[j] = v - right[i][j]
			}
		default:
			return nil, types.NewShapeError("combine", "unsupported operator %d", op)
		}
		out[i] = res
	}

	return b.store(ctx, out)
}

// ConcatCols glues aligned rows of left and right side by side.
func (b *Backend) ConcatCols(ctx context.Context, l, r types.Matrix) (types.Matrix, error) {
	left, err := b.localData(ctx, l)
	if err != nil {
		return nil, err
	}
	right, err := b.localData(ctx, r)
	if err != nil {
		return nil, err
	}
	if len(left) != len(right) {
		return nil, types.NewShapeError("concat_cols",
			"row count mismatch: %d vs %d", len(left), len(right))
	}

	out := make([][]float64, len(left))
	for i, row := range left {
		joined := make([]float64, 0, len(row)+len(right[i]))
		joined = append(joined, row...)
		joined = append(joined, right[i]...)
		out[i] = joined
	}

	return b.store(ctx, out)
}

// StackRows places all rows of top above all rows of bottom.
func (b *Backend) StackRows(ctx context.Context, t, bt types.Matrix) (types.Matrix, error) {
	top, err := b.localData(ctx, t)
	if err != nil {
		return nil, err
	}
	bottom, err := b.localData(ctx, bt)
	if err != nil {
		return nil, err
	}
	if t.Cols() != bt.Cols() {
		return nil, types.NewShapeError("stack_rows",
			"column count mismatch: %d vs %d", t.Cols(), bt.Cols())
	}

	out := make([][]float64, 0, len(top)+len(bottom))
	for _, row := range top {
		out = append(out, append([]float64(nil), row...))
	}
	for _, row := range bottom {
		out = append(out, append([]float64(nil), row...))
	}

	return b.store(ctx, out)
}

// store writes canonical data as chunks under a fresh handle ID.
// The backend takes ownership of data; callers must not mutate it after.
func (b *Backend) store(ctx context.Context, data [][]float64) (*handle, error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}

	h := &handle{b: b, id: newID(), rows: rows, cols: cols}
	for band := 0; band*b.cfg.ChunkRows < rows; band++ {
		r0 := band * b.cfg.ChunkRows
		r1 := min(r0+b.cfg.ChunkRows, rows)
		if _, err := b.kv.Put(ctx, h.key(band), encodeChunk(data[r0:r1])); err != nil {
			return nil, b.storageError("put chunk", err)
		}
	}

	b.cache.Store(h.id, data)

	return h, nil
}

// fetch returns the canonical rows of h, reading chunks on cache miss.
// The returned slices are shared and must be treated as read-only.
func (b *Backend) fetch(ctx context.Context, h *handle) ([][]float64, error) {
	if data, ok := b.cache.Load(h.id); ok {
		return data, nil
	}

	data := make([][]float64, 0, h.rows)
	for band := 0; band*b.cfg.ChunkRows < h.rows; band++ {
		r0 := band * b.cfg.ChunkRows
		r1 := min(r0+b.cfg.ChunkRows, h.rows)

		entry, err := b.kv.Get(ctx, h.key(band))
		if err != nil {
			return nil, b.storageError("get chunk", err)
		}

		rows, err := decodeChunk(entry.Value(), r1-r0, h.cols)
		if err != nil {
			return nil, err
		}
		data = append(data, rows...)
	}

	b.cache.Store(h.id, data)

	return data, nil
}

// localData returns m's rows, fetching foreign handles through their own
// Materialize so the backend interoperates with handles produced
// elsewhere.
func (b *Backend) localData(ctx context.Context, m types.Matrix) ([][]float64, error) {
	if h, ok := m.(*handle); ok && h.b == b {
		return b.fetch(ctx, h)
	}

	return m.Materialize(ctx)
}

// storageError classifies and wraps a storage substrate failure.
func (b *Backend) storageError(op string, err error) error {
	if natsutil.IsConnectivityError(err) {
		b.logger.Warn("kv connectivity issue", "op", op, "bucket", b.cfg.Bucket, "error", err)
	}

	return fmt.Errorf("%s: %w", op, errors.Join(types.ErrStorage, err))
}

// newID returns a fresh random handle identifier.
func newID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("natskv: read random bytes: %v", err))
	}

	return hex.EncodeToString(buf[:])
}
