package render

import (
	"sort"

	"lumen/internal/scene"
)

// Batch groups the objects that share one mesh content hash. They are drawn
// with a single instanced call using the first object's geometry.
type Batch struct {
	Hash    uint64
	Objects []scene.SceneObject
}

// FramePlan is the draw order for one frame: instanced batches in ascending
// hash order, then the background object, if any, last.
type FramePlan struct {
	Batches    []Batch
	Background scene.SceneObject

	// TotalInstances counts batched objects only; the background draws
	// outside the instance buffer.
	TotalInstances int
}

// BuildFramePlan classifies objects by mesh content hash. Objects keep their
// registration order within a batch. The first background object wins; any
// later flagged objects are demoted to ordinary batch members.
func BuildFramePlan(objects []scene.SceneObject) FramePlan {
	var plan FramePlan
	byHash := make(map[uint64]int)

	for _, obj := range objects {
		if obj.IsBackground() && plan.Background == nil {
			plan.Background = obj
			continue
		}
		hash := obj.Hash()
		i, ok := byHash[hash]
		if !ok {
			i = len(plan.Batches)
			byHash[hash] = i
			plan.Batches = append(plan.Batches, Batch{Hash: hash})
		}
		plan.Batches[i].Objects = append(plan.Batches[i].Objects, obj)
		plan.TotalInstances++
	}

	sort.Slice(plan.Batches, func(i, j int) bool {
		return plan.Batches[i].Hash < plan.Batches[j].Hash
	})
	return plan
}
