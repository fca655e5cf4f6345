package radiusindex

import (
	"strconv"
	"strings"

	"github.com/nnstream/incdbscan/metric"
)

// entry is one stored value/id pair.
type entry struct {
	id    string
	value []float64
}

// Index is a uniform-grid radius search index over float64 vectors.
// The zero value is not usable; construct with New.
type Index struct {
	eps    float64
	metric *metric.Metric
	dim    int // established by the first Insert, 0 until then

	cells   map[string][]string      // cell key -> ids in that cell
	entries map[string]entry         // id -> stored entry
	cellOf  map[string]string        // id -> cell key it currently occupies
}

// New returns an empty Index for the given radius and metric.
// Complexity: O(1).
func New(eps float64, m *metric.Metric) *Index {
	return &Index{
		eps:     eps,
		metric:  m,
		cells:   make(map[string][]string),
		entries: make(map[string]entry),
		cellOf:  make(map[string]string),
	}
}

// Insert adds value under id. id must be unique across the index's
// lifetime until a matching Remove.
// Returns ErrIDExists or ErrDimensionMismatch.
// Complexity: O(1) amortized.
func (idx *Index) Insert(value []float64, id string) error {
	if _, ok := idx.entries[id]; ok {
		return ErrIDExists
	}
	if idx.dim == 0 {
		idx.dim = len(value)
	} else if len(value) != idx.dim {
		return ErrDimensionMismatch
	}

	key := idx.cellKey(value)
	idx.cells[key] = append(idx.cells[key], id)
	idx.entries[id] = entry{id: id, value: value}
	idx.cellOf[id] = key

	return nil
}

// Remove deletes id from the index.
// Returns ErrIDNotFound if id is absent.
// Complexity: O(b) where b is the occupancy of id's cell.
func (idx *Index) Remove(id string) error {
	key, ok := idx.cellOf[id]
	if !ok {
		return ErrIDNotFound
	}
	bucket := idx.cells[key]
	for i, other := range bucket {
		if other == id {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(idx.cells, key)
	} else {
		idx.cells[key] = bucket
	}
	delete(idx.entries, id)
	delete(idx.cellOf, id)

	return nil
}

// Query returns every stored id whose value is within ε (inclusive) of
// value under the index's metric. Order is unspecified; an empty index
// yields an empty slice. Returns ErrDimensionMismatch if value's
// dimensionality disagrees with what's already stored.
// Complexity: O(3^d * b) where d is dimensionality and b is average cell
// occupancy — sub-linear in the stored point count for low-dimensional,
// roughly-uniform data.
func (idx *Index) Query(value []float64) ([]string, error) {
	if idx.dim != 0 && len(value) != idx.dim {
		return nil, ErrDimensionMismatch
	}
	if len(idx.entries) == 0 {
		return []string{}, nil
	}

	base := idx.cellCoords(value)
	out := make([]string, 0)
	for _, offset := range neighborOffsets(len(value)) {
		coords := make([]int64, len(base))
		for i := range base {
			coords[i] = base[i] + offset[i]
		}
		key := coordsKey(coords)
		for _, id := range idx.cells[key] {
			e := idx.entries[id]
			d, err := idx.metric.Distance(value, e.value)
			if err != nil {
				return nil, err
			}
			if d <= idx.eps {
				out = append(out, id)
			}
		}
	}

	return out, nil
}

// cellCoords computes the per-dimension cell index of value under a grid
// whose cells have side length ε.
func (idx *Index) cellCoords(value []float64) []int64 {
	coords := make([]int64, len(value))
	for i, v := range value {
		coords[i] = int64(floorDiv(v, idx.eps))
	}

	return coords
}

func (idx *Index) cellKey(value []float64) string {
	return coordsKey(idx.cellCoords(value))
}

func floorDiv(v, cellSize float64) float64 {
	q := v / cellSize
	f := float64(int64(q))
	if q < f {
		f--
	}

	return f
}

func coordsKey(coords []int64) string {
	var b strings.Builder
	for i, c := range coords {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.FormatInt(c, 10))
	}

	return b.String()
}

// neighborOffsets enumerates every point in {-1,0,1}^d, i.e. the 3^d block
// of cells (including the origin cell) adjacent to or containing a query
// point.
func neighborOffsets(d int) [][]int64 {
	if d == 0 {
		return [][]int64{{}}
	}

	offsets := [][]int64{{}}
	for dimension := 0; dimension < d; dimension++ {
		next := make([][]int64, 0, len(offsets)*3)
		for _, prefix := range offsets {
			for _, delta := range [3]int64{-1, 0, 1} {
				extended := make([]int64, len(prefix)+1)
				copy(extended, prefix)
				extended[len(prefix)] = delta
				next = append(next, extended)
			}
		}
		offsets = next
	}

	return offsets
}
