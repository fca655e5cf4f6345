package insert

import (
	"github.com/nnstream/incdbscan/label"
	"github.com/nnstream/incdbscan/point"
)

// Inserter admits one value at a time and keeps the clustering exactly
// consistent with what a from-scratch DBSCAN run over the resulting point
// set would produce.
type Inserter struct {
	minPts int
	points *point.Store
	labels *label.Store
}

// New returns an Inserter sharing points and labels with the rest of the
// engine.
func New(minPts int, points *point.Store, labels *label.Store) *Inserter {
	return &Inserter{minPts: minPts, points: points, labels: labels}
}

// Insert admits value into the point store and brings the clustering back
// into a consistent state, handling the Noise, Absorption, Creation, and
// Merge cases from the paper (plus the paper-silent "absorb into the most
// recent cluster" rule for a non-core point gaining core neighbors).
// Complexity: O(update-seed component size + Σ deg(new core)).
func (ins *Inserter) Insert(value []float64) (*point.Point, error) {
	inserted, err := ins.points.Insert(value)
	if err != nil {
		return nil, err
	}

	newCores, oldCores, err := ins.separateCoreNeighborsByNovelty(inserted)
	if err != nil {
		return nil, err
	}

	if len(newCores) == 0 {
		lbl := label.Noise
		if len(oldCores) > 0 {
			lbl, err = ins.maxLabelOf(oldCores)
			if err != nil {
				return nil, err
			}
		}

		return inserted, ins.labels.Set(inserted.ID, lbl)
	}

	updateSeeds, err := ins.updateSeeds(newCores)
	if err != nil {
		return nil, err
	}

	for _, component := range ins.points.ConnectedComponents(updateSeeds) {
		effective, err := ins.effectiveLabels(component)
		if err != nil {
			return nil, err
		}

		if len(effective) == 0 {
			// Only unclassified/noise objects in this component: a fresh
			// cluster is born here. Case "Creation".
			fresh := ins.labels.AllocateFresh()
			if err := ins.labels.BulkSet(component, fresh); err != nil {
				return nil, err
			}
			continue
		}

		// Already-clustered objects touch this component: everything
		// folds into the most recent (numerically largest) of them.
		// Cases "Absorption" and "Merge".
		maxLabel := effective[0]
		for _, l := range effective[1:] {
			if l > maxLabel {
				maxLabel = l
			}
		}
		if err := ins.labels.BulkSet(component, maxLabel); err != nil {
			return nil, err
		}
		for _, l := range effective {
			ins.labels.Rename(l, maxLabel)
		}
	}

	if err := ins.propagateAroundNewCores(newCores); err != nil {
		return nil, err
	}

	return inserted, nil
}

// separateCoreNeighborsByNovelty splits inserted's neighbor set (which
// always contains inserted itself) into objects that just crossed the
// minPts threshold because of this insertion (newCores) and objects that
// were already core beforehand (oldCores). If inserted itself is core, it
// is always new: its own count-driven increment is what just pushed it
// past minPts, even if that increment landed it strictly above minPts
// rather than exactly on it.
func (ins *Inserter) separateCoreNeighborsByNovelty(inserted *point.Point) (newCores, oldCores []string, err error) {
	nbrs, err := ins.points.Neighbors(inserted.ID)
	if err != nil {
		return nil, nil, err
	}

	for _, id := range nbrs {
		p, ok := ins.points.Get(id)
		if !ok {
			continue
		}
		switch {
		case p.NeighborCount == ins.minPts:
			newCores = append(newCores, id)
		case p.NeighborCount > ins.minPts:
			oldCores = append(oldCores, id)
		}
	}

	if inserted.IsCore(ins.minPts) {
		for i, id := range oldCores {
			if id == inserted.ID {
				oldCores = append(oldCores[:i], oldCores[i+1:]...)
				newCores = append(newCores, inserted.ID)
				break
			}
		}
	}

	return newCores, oldCores, nil
}

// updateSeeds is the union, over every new core neighbor, of that
// neighbor's own neighbors that are themselves (still) core.
func (ins *Inserter) updateSeeds(newCores []string) ([]string, error) {
	seen := make(map[string]struct{})
	var seeds []string

	for _, id := range newCores {
		nbrs, err := ins.points.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, nid := range nbrs {
			n, ok := ins.points.Get(nid)
			if !ok || n.NeighborCount < ins.minPts {
				continue
			}
			if _, dup := seen[nid]; dup {
				continue
			}
			seen[nid] = struct{}{}
			seeds = append(seeds, nid)
		}
	}

	return seeds, nil
}

// effectiveLabels returns the distinct real cluster labels (excluding
// Noise/Unclassified) currently carried by ids.
func (ins *Inserter) effectiveLabels(ids []string) ([]label.Label, error) {
	seen := make(map[label.Label]struct{})
	var out []label.Label

	for _, id := range ids {
		l, err := ins.labels.Get(id)
		if err != nil {
			return nil, err
		}
		if l == label.Noise || l == label.Unclassified {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	return out, nil
}

// maxLabelOf is only ever called on oldCores (Case "Absorption"/Noise).
// separateCoreNeighborsByNovelty guarantees inserted itself never ends up
// there: a non-core inserted is never added to either bucket, and a core
// inserted is always moved into newCores, so oldCores can't still be
// carrying inserted's momentary Unclassified label here.
func (ins *Inserter) maxLabelOf(ids []string) (label.Label, error) {
	var max label.Label
	for i, id := range ids {
		l, err := ins.labels.Get(id)
		if err != nil {
			return 0, err
		}
		if i == 0 || l > max {
			max = l
		}
	}

	return max, nil
}

// propagateAroundNewCores gives every neighbor of every new core object
// that core's (now final) label, pulling in border and noise objects and
// the inserted object itself.
func (ins *Inserter) propagateAroundNewCores(newCores []string) error {
	for _, id := range newCores {
		lbl, err := ins.labels.Get(id)
		if err != nil {
			return err
		}
		nbrs, err := ins.points.Neighbors(id)
		if err != nil {
			return err
		}
		if err := ins.labels.BulkSet(nbrs, lbl); err != nil {
			return err
		}
	}

	return nil
}
