package strassen

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/internal/block"
	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/internal/combine"
	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/internal/direct"
	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/internal/logger"
	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/internal/metrics"
	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

// Engine multiplies square matrices with Strassen's algorithm over a
// matrix backend.
//
// Engine is the main entry point of the library. Per recursion level it:
//   - Delegates to direct classical multiplication at or below
//     Config.BaseCaseSize
//   - Partitions both operands into quadrants
//   - Builds the seven Strassen operand pairs and recurses on each,
//     concurrently up to Config.MaxParallel
//   - Assembles the four result quadrants and joins them
//
// Thread Safety:
//   - All methods are safe for concurrent use
//   - Handles are immutable once produced; recursive branches share
//     operand handles read-only
//
// No state survives between calls: every intermediate handle (quadrant,
// combined operand, intermediate product) becomes unreachable once its
// recursion frame returns.
type Engine struct {
	cfg     Config
	backend Backend
	logger  Logger
	metrics MetricsCollector

	// sem bounds extra goroutines spawned for recursive subproblems.
	// Capacity is MaxParallel-1: the calling goroutine always counts as
	// one worker, and a branch that finds the semaphore full recurses
	// inline instead of blocking, so the engine cannot deadlock on its
	// own limit.
	sem chan struct{}
}

// New creates a recursion engine over the given backend.
//
// Parameters:
//   - cfg: Engine configuration; zero fields are filled with defaults
//   - backend: Matrix backend that owns handle storage
//   - opts: Functional options (WithLogger, WithMetrics)
//
// Returns:
//   - *Engine: Initialized engine
//   - error: ErrBackendRequired or ErrInvalidConfig
//
// Example:
//
//	engine, err := strassen.New(&strassen.Config{BaseCaseSize: 64}, dense.New())
//	if err != nil { /* handle */ }
func New(cfg *Config, backend Backend, opts ...Option) (*Engine, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	if cfg == nil {
		cfg = &Config{}
	}

	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Engine{
		cfg:     *cfg,
		backend: backend,
		logger:  options.logger,
		metrics: options.metrics,
		sem:     make(chan struct{}, cfg.MaxParallel-1),
	}, nil
}

// Multiply computes the product of two size×size matrices.
//
// Both operands must be square with side length equal to size; a
// disagreement fails with a ShapeError before any recursion occurs.
// Power-of-two sizes halve cleanly down to the base case; any size whose
// halving reaches an odd block side fails with a ShapeError at that
// partition step. The call blocks until the full recursion resolves;
// callers impose deadlines by wrapping ctx.
//
// Parameters:
//   - ctx: Context observed between recursion steps and by backend data
//     movement
//   - a, b: Operand handles
//   - size: Side length of both operands
//
// Returns:
//   - types.Matrix: Handle representing the exact product A·B under
//     float64 arithmetic
//   - error: First ShapeError encountered, propagated unchanged, or a
//     backend storage error
func (e *Engine) Multiply(ctx context.Context, a, b Matrix, size int) (Matrix, error) {
	start := time.Now()

	var result Matrix
	err := e.check(a, b, size)
	if err == nil {
		result, err = e.multiply(ctx, a, b, size, 0)
	}

	if err != nil {
		var shapeErr *ShapeError
		if errors.As(err, &shapeErr) {
			e.metrics.RecordShapeError(shapeErr.Op)
		}
		e.logger.Error("multiply failed", "size", size, "error", err)

		return nil, err
	}

	e.metrics.RecordMultiply(size, 0, time.Since(start))
	e.logger.Info("multiply complete", "size", size, "elapsed", time.Since(start))

	return result, nil
}

// check validates the top-level operand shapes against size.
func (e *Engine) check(a, b Matrix, size int) error {
	for _, m := range []Matrix{a, b} {
		if m.Rows() != size || m.Cols() != size {
			return types.NewShapeError("multiply",
				"operand is %dx%d, expected %dx%d", m.Rows(), m.Cols(), size, size)
		}
	}

	return nil
}

// operandPair is one of the seven fixed Strassen operand combinations.
type operandPair struct {
	left  Matrix
	right Matrix
}

func (e *Engine) multiply(ctx context.Context, a, b Matrix, size, depth int) (Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if size <= e.cfg.BaseCaseSize {
		e.metrics.RecordBaseCase(size)
		e.logger.Debug("base case", "size", size, "depth", depth)

		return direct.Multiply(ctx, e.backend, a, b)
	}

	qa, err := block.Partition(ctx, e.backend, a)
	if err != nil {
		return nil, err
	}
	qb, err := block.Partition(ctx, e.backend, b)
	if err != nil {
		return nil, err
	}

	pairs, err := e.operands(ctx, qa, qb)
	if err != nil {
		return nil, err
	}

	products, err := e.recurse(ctx, pairs, size/2, depth+1)
	if err != nil {
		return nil, err
	}

	result, err := e.assemble(ctx, products)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("level complete", "size", size, "depth", depth)

	return result, nil
}

// operands builds the seven Strassen operand pairs from the quadrants of
// A and B:
//
//	M1: (A11+A22, B11+B22)
//	M2: (A21+A22, B11)
//	M3: (A11,     B12-B22)
//	M4: (A22,     B21-B11)
//	M5: (A11+A12, B22)
//	M6: (A21-A11, B11+B12)
//	M7: (A12-A22, B21+B22)
func (e *Engine) operands(ctx context.Context, qa, qb *Quadrants) ([7]operandPair, error) {
	var pairs [7]operandPair

	specs := [7]struct {
		l, r   Matrix   // fixed operand, or nil when combined
		la, lb Matrix   // left combination inputs
		lop    types.Op // left combination operator
		ra, rb Matrix   // right combination inputs
		rop    types.Op // right combination operator
	}{
		{la: qa.Q11, lb: qa.Q22, lop: OpAdd, ra: qb.Q11, rb: qb.Q22, rop: OpAdd},
		{la: qa.Q21, lb: qa.Q22, lop: OpAdd, r: qb.Q11},
		{l: qa.Q11, ra: qb.Q12, rb: qb.Q22, rop: OpSubtract},
		{l: qa.Q22, ra: qb.Q21, rb: qb.Q11, rop: OpSubtract},
		{la: qa.Q11, lb: qa.Q12, lop: OpAdd, r: qb.Q22},
		{la: qa.Q21, lb: qa.Q11, lop: OpSubtract, ra: qb.Q11, rb: qb.Q12, rop: OpAdd},
		{la: qa.Q12, lb: qa.Q22, lop: OpSubtract, ra: qb.Q21, rb: qb.Q22, rop: OpAdd},
	}

	for i, s := range specs {
		left, right := s.l, s.r
		var err error
		if left == nil {
			left, err = combine.Apply(ctx, e.backend, s.la, s.lb, s.lop)
			if err != nil {
				return pairs, err
			}
		}
		if right == nil {
			right, err = combine.Apply(ctx, e.backend, s.ra, s.rb, s.rop)
			if err != nil {
				return pairs, err
			}
		}
		pairs[i] = operandPair{left: left, right: right}
	}

	return pairs, nil
}

// recurse computes the seven intermediate products. The subproblems carry
// no data dependency among each other, so each one either claims a
// semaphore slot and runs on its own goroutine or runs inline on the
// calling goroutine when the engine is already at MaxParallel.
func (e *Engine) recurse(ctx context.Context, pairs [7]operandPair, size, depth int) ([7]Matrix, error) {
	var products [7]Matrix

	g, gctx := errgroup.WithContext(ctx)
	var inlineErr error

	for i := range pairs {
		if inlineErr != nil {
			break
		}

		pair := pairs[i]
		idx := i

		select {
		case e.sem <- struct{}{}:
			g.Go(func() error {
				defer func() { <-e.sem }()

				m, err := e.multiply(gctx, pair.left, pair.right, size, depth)
				if err != nil {
					return err
				}
				products[idx] = m

				return nil
			})
		default:
			m, err := e.multiply(gctx, pair.left, pair.right, size, depth)
			if err != nil {
				inlineErr = err
				break
			}
			products[idx] = m
		}
	}

	if err := g.Wait(); err != nil {
		return products, err
	}
	if inlineErr != nil {
		return products, inlineErr
	}

	return products, nil
}

// assemble combines the seven intermediate products into the four result
// quadrants and joins them:
//
//	C11 = M1 + M4 - M5 + M7
//	C12 = M3 + M5
//	C21 = M2 + M4
//	C22 = M1 - M2 + M3 + M6
//
// Each expression folds left to right so intermediate temporaries are
// deterministic.
func (e *Engine) assemble(ctx context.Context, m [7]Matrix) (Matrix, error) {
	c11, err := combine.Chain(ctx, e.backend, m[0],
		[]types.Op{OpAdd, OpSubtract, OpAdd}, []Matrix{m[3], m[4], m[6]})
	if err != nil {
		return nil, err
	}

	c12, err := combine.Apply(ctx, e.backend, m[2], m[4], OpAdd)
	if err != nil {
		return nil, err
	}

	c21, err := combine.Apply(ctx, e.backend, m[1], m[3], OpAdd)
	if err != nil {
		return nil, err
	}

	c22, err := combine.Chain(ctx, e.backend, m[0],
		[]types.Op{OpSubtract, OpAdd, OpAdd}, []Matrix{m[1], m[2], m[5]})
	if err != nil {
		return nil, err
	}

	return block.Join(ctx, e.backend, c11, c12, c21, c22)
}
