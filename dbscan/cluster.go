package dbscan

import (
	"errors"
	"strconv"

	"github.com/nnstream/incdbscan/metric"
	"github.com/nnstream/incdbscan/radiusindex"
)

// Sentinel cluster labels, mirroring the incremental engine's (spec §6).
const (
	unclassified = -2
	Noise        = -1
	FirstCluster = 0
)

var (
	ErrNonPositiveEps    = errors.New("dbscan: eps must be > 0")
	ErrNonPositiveMinPts = errors.New("dbscan: minPts must be >= 1")
	ErrEmptyInput        = errors.New("dbscan: values must not be empty")
)

// Cluster runs batch DBSCAN over values and returns one label per input
// position, in the same order as values: Noise (-1), or a cluster id
// starting at FirstCluster (0). It is grounded on the expand-cluster
// region-growing algorithm of the original paper (Ester et al. 1996),
// queried through the same radiusindex.Index the incremental engine uses,
// so the two share identical distance semantics.
func Cluster(values [][]float64, eps float64, minPts int, metricOpts metric.Options) ([]int, error) {
	if eps <= 0 {
		return nil, ErrNonPositiveEps
	}
	if minPts < 1 {
		return nil, ErrNonPositiveMinPts
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	m, err := metric.New(metricOpts)
	if err != nil {
		return nil, err
	}

	idx := radiusindex.New(eps, m)
	for i, v := range values {
		if err := idx.Insert(v, strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}

	c := &clusterer{values: values, minPts: minPts, idx: idx, labels: make([]int, len(values))}
	for i := range c.labels {
		c.labels[i] = unclassified
	}
	for ix := range values {
		if c.labels[ix] == unclassified {
			if err := c.expand(ix); err != nil {
				return nil, err
			}
		}
	}

	return c.labels, nil
}

type clusterer struct {
	values    [][]float64
	minPts    int
	idx       *radiusindex.Index
	labels    []int
	nextLabel int
}

func (c *clusterer) neighborsOf(ix int) ([]int, error) {
	ids, err := c.idx.Query(c.values[ix])
	if err != nil {
		return nil, err
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func (c *clusterer) expand(ix int) error {
	seeds, err := c.neighborsOf(ix)
	if err != nil {
		return err
	}
	if len(seeds) < c.minPts {
		c.labels[ix] = Noise
		return nil
	}

	label := c.nextLabel
	queued := make(map[int]bool, len(seeds))
	var queue []int
	for _, s := range seeds {
		c.labels[s] = label
		if s != ix && !queued[s] {
			queued[s] = true
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		seed := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		neighborsOfSeed, err := c.neighborsOf(seed)
		if err != nil {
			return err
		}
		if len(neighborsOfSeed) < c.minPts {
			continue
		}
		for _, n := range neighborsOfSeed {
			switch c.labels[n] {
			case unclassified:
				c.labels[n] = label
				if !queued[n] {
					queued[n] = true
					queue = append(queue, n)
				}
			case Noise:
				c.labels[n] = label
			}
		}
	}

	c.nextLabel++
	return nil
}
