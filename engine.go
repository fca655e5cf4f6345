package incdbscan

import (
	"errors"

	"github.com/nnstream/incdbscan/deleter"
	"github.com/nnstream/incdbscan/insert"
	"github.com/nnstream/incdbscan/label"
	"github.com/nnstream/incdbscan/metric"
	"github.com/nnstream/incdbscan/point"
	"github.com/nnstream/incdbscan/radiusindex"
)

// ErrPointNotFound is the recoverable condition surfaced when
// DeleteBatch or LabelOf references a value with no live point.
var ErrPointNotFound = errors.New("incdbscan: point not found")

// Sentinel cluster labels (spec §6): UNCLASSIFIED never leaves the
// engine, so only Noise and FirstCluster are re-exported here.
const (
	Noise        = int(label.Noise)
	FirstCluster = int(label.FirstCluster)
)

// Options configures an Engine at construction. Immutable afterward.
type Options struct {
	// Eps is the neighborhood radius. Must be > 0.
	Eps float64

	// MinPts is the density threshold m. Must be >= 1.
	MinPts int

	// Metric selects the distance function. Zero value is Euclidean.
	Metric metric.Options
}

// Validate checks Options for internal consistency, independent of the
// metric package's own validation (run separately by New).
func (o Options) Validate() error {
	if o.Eps <= 0 {
		return ErrNonPositiveEps
	}
	if o.MinPts < 1 {
		return ErrNonPositiveMinPts
	}

	return nil
}

// Engine is one configured instance of the incremental clustering
// engine. It is single-threaded and cooperative-serial (spec §5): every
// InsertBatch/DeleteBatch/LabelOf call must complete before another
// begins. An Engine does not protect itself with internal locking —
// concurrent callers must synchronize externally.
type Engine struct {
	minPts int
	dim    int

	points *point.Store
	labels *label.Store

	inserter *insert.Inserter
	deleter  *deleter.Deleter
}

// New configures a fresh, empty Engine.
func New(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m, err := metric.New(opts.Metric)
	if err != nil {
		return nil, err
	}

	labels := label.NewStore()
	points := point.NewStore(radiusindex.New(opts.Eps, m), labels)

	return &Engine{
		minPts:   opts.MinPts,
		points:   points,
		labels:   labels,
		inserter: insert.New(opts.MinPts, points, labels),
		deleter:  deleter.New(opts.MinPts, points, labels),
	}, nil
}

// Warning reports a non-fatal condition encountered at one position of a
// batch call; processing continued past it.
type Warning struct {
	Index int
	Err   error
}

// InsertBatch admits each value in order. A malformed value (empty,
// non-finite, or wrong dimensionality) is a fatal, pre-mutation error:
// InsertBatch stops immediately and returns it, along with any warnings
// accumulated so far. InsertBatch never produces warnings itself — every
// value, once validated, is admitted unconditionally.
func (e *Engine) InsertBatch(values [][]float64) ([]Warning, error) {
	var warnings []Warning

	for _, v := range values {
		if err := e.validate(v); err != nil {
			return warnings, err
		}
		if e.dim == 0 {
			e.dim = len(v)
		}
		if _, err := e.inserter.Insert(v); err != nil {
			return warnings, err
		}
	}

	return warnings, nil
}

// DeleteBatch retracts each value in order. A malformed value is fatal
// and stops the batch immediately. A well-formed value with no live
// point is recoverable: it is recorded as a Warning at its batch index
// and processing continues.
func (e *Engine) DeleteBatch(values [][]float64) ([]Warning, error) {
	var warnings []Warning

	for i, v := range values {
		if err := e.validate(v); err != nil {
			return warnings, err
		}

		p, ok := e.points.Locate(v)
		if !ok {
			warnings = append(warnings, Warning{Index: i, Err: ErrPointNotFound})
			continue
		}
		if err := e.deleter.Delete(p); err != nil {
			return warnings, err
		}
	}

	return warnings, nil
}

// LabelOf returns the cluster label currently assigned to value: Noise
// (-1), or a cluster id >= FirstCluster. Returns ErrPointNotFound,
// wrapped as the recoverable condition, if value has no live point.
func (e *Engine) LabelOf(value []float64) (int, error) {
	if err := e.validate(value); err != nil {
		return 0, err
	}

	p, ok := e.points.Locate(value)
	if !ok {
		return 0, ErrPointNotFound
	}

	l, err := e.labels.Get(p.ID)
	if err != nil {
		return 0, ErrPointNotFound
	}

	return int(l), nil
}

// MinPts returns the density threshold this Engine was configured with.
func (e *Engine) MinPts() int { return e.minPts }

// Size returns the number of live points currently held by the Engine.
func (e *Engine) Size() int { return e.points.Graph().VertexCount() }
