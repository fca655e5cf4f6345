package deleter

import (
	"github.com/nnstream/incdbscan/label"
	"github.com/nnstream/incdbscan/point"
)

// Deleter retracts one occurrence of a point and repairs the clustering
// around it. If the deletion was a cluster's only remaining bridge, the
// pieces split away from it get fresh labels and one piece keeps the old one.
type Deleter struct {
	minPts int
	points *point.Store
	labels *label.Store
}

// New returns a Deleter sharing points and labels with the rest of the
// engine.
func New(minPts int, points *point.Store, labels *label.Store) *Deleter {
	return &Deleter{minPts: minPts, points: points, labels: labels}
}

// Delete retracts one occurrence of p and repairs the clustering.
// Complexity: O(size of the affected neighborhood).
func (d *Deleter) Delete(p *point.Point) error {
	deletedID := p.ID
	wasCoreBeforeDeletion := p.IsCore(d.minPts)

	neighborsBefore, err := d.points.Neighbors(deletedID)
	if err != nil {
		return err
	}

	if err := d.points.Delete(p); err != nil {
		return err
	}
	stillLive := p.Count > 0

	exCores := d.objectsThatLostCoreProperty(neighborsBefore, deletedID, p, wasCoreBeforeDeletion, stillLive)

	updateSeeds, nonCoreNeighbors, err := d.updateSeedsAndNonCoreNeighbors(exCores, neighborsBefore, deletedID, stillLive)
	if err != nil {
		return err
	}

	if len(updateSeeds) > 0 {
		byCluster, err := d.groupByCluster(updateSeeds)
		if err != nil {
			return err
		}

		for _, seeds := range byCluster {
			components, err := splitAwayComponents(d.points, d.minPts, seeds)
			if err != nil {
				return err
			}
			for _, component := range components {
				fresh := d.labels.AllocateFresh()
				if err := d.labels.BulkSet(component, fresh); err != nil {
					return err
				}
			}
		}
	}

	return d.relabelBorderObjects(nonCoreNeighbors)
}

// objectsThatLostCoreProperty returns the neighbors of the deleted point
// (walked over its pre-deletion neighbor set, which always contains the
// deleted point itself) whose NeighborCount just dropped to minPts-1.
// The deleted point itself is included by this same rule if it is still
// live (a duplicate remains), or — if it was fully torn down — it is
// included whenever it used to be core, since its former neighbors still
// need reconsidering even though the point itself is now gone.
func (d *Deleter) objectsThatLostCoreProperty(neighborsBefore []string, deletedID string, deleted *point.Point, wasCoreBeforeDeletion, stillLive bool) []string {
	var exCores []string
	for _, id := range neighborsBefore {
		if id == deletedID {
			switch {
			case stillLive && deleted.NeighborCount == d.minPts-1:
				exCores = append(exCores, id)
			case !stillLive && wasCoreBeforeDeletion:
				exCores = append(exCores, id)
			}
			continue
		}
		n, ok := d.points.Get(id)
		if !ok {
			continue
		}
		if n.NeighborCount == d.minPts-1 {
			exCores = append(exCores, id)
		}
	}

	return exCores
}

// updateSeedsAndNonCoreNeighbors partitions the neighbors of every ex-core
// into those still core (update seeds, candidates for a split) and those
// not (border candidates, which only ever get relabeled, never split).
// neighborsBeforeDeleted is the deleted point's pre-deletion neighbor
// snapshot, reused when the deleted point itself is an ex-core that has
// since been torn down and can no longer be queried for its neighbors.
func (d *Deleter) updateSeedsAndNonCoreNeighbors(exCores, neighborsBeforeDeleted []string, deletedID string, stillLive bool) (seeds, borders []string, err error) {
	seenSeed := make(map[string]struct{})
	seenBorder := make(map[string]struct{})

	for _, ex := range exCores {
		nbrs := neighborsBeforeDeleted
		if stillLive || ex != deletedID {
			nbrs, err = d.points.Neighbors(ex)
			if err != nil {
				return nil, nil, err
			}
		}
		for _, nid := range nbrs {
			if nid == deletedID && !stillLive {
				continue
			}
			n, ok := d.points.Get(nid)
			if !ok {
				continue
			}
			if n.IsCore(d.minPts) {
				if _, dup := seenSeed[nid]; !dup {
					seenSeed[nid] = struct{}{}
					seeds = append(seeds, nid)
				}
			} else {
				if _, dup := seenBorder[nid]; !dup {
					seenBorder[nid] = struct{}{}
					borders = append(borders, nid)
				}
			}
		}
	}

	return seeds, borders, nil
}

// groupByCluster buckets ids by their current cluster label. Only update
// seeds sharing a label need to be checked for a split, since a seed
// cannot split away from a cluster it no longer belongs to.
func (d *Deleter) groupByCluster(ids []string) (map[label.Label][]string, error) {
	groups := make(map[label.Label][]string)
	for _, id := range ids {
		l, err := d.labels.Get(id)
		if err != nil {
			return nil, err
		}
		groups[l] = append(groups[l], id)
	}

	return groups, nil
}

// relabelBorderObjects sets each of ids to the largest cluster label among
// its currently-core neighbors, or Noise if it no longer has any.
// Every new label is computed from the pre-relabel snapshot before any of
// ids is written, so a border object's own update never influences its
// neighbors' relabeling within the same call.
func (d *Deleter) relabelBorderObjects(ids []string) error {
	updates := make(map[string]label.Label, len(ids))

	for _, id := range ids {
		nbrs, err := d.points.Neighbors(id)
		if err != nil {
			return err
		}

		newLabel := label.Noise
		has := false
		for _, nid := range nbrs {
			n, ok := d.points.Get(nid)
			if !ok || !n.IsCore(d.minPts) {
				continue
			}
			l, err := d.labels.Get(nid)
			if err != nil {
				return err
			}
			if !has || l > newLabel {
				newLabel = l
				has = true
			}
		}
		updates[id] = newLabel
	}

	for id, l := range updates {
		if err := d.labels.Set(id, l); err != nil {
			return err
		}
	}

	return nil
}
