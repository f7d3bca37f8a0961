package geometry

import (
	"container/heap"

	"github.com/voxelforge/implicit/scalar"
)

// OctreePayload is the constraint every object stored in an Octree must
// satisfy: it must report its own bounds and its closest point to an
// arbitrary query, and must be comparable so a single query can deduplicate
// an object visited through more than one leaf (spec.md §9, "Octree payload
// duplication").
type OctreePayload[T scalar.Float] interface {
	comparable
	Bounds() BoundingBox[T]
	ClosestPoint(q Vec3[T]) (Vec3[T], bool)
}

// SignedQuery extends OctreePayload with the ability to report a
// pseudonormal at a closest point, which SignedDistance uses to classify
// inside/outside (spec.md §4.2).
type SignedQuery[T scalar.Float] interface {
	OctreePayload[T]
	SignedClosestPoint(q Vec3[T]) (Vec3[T], Vec3[T])
}

type octreeNode[Q OctreePayload[T], T scalar.Float] struct {
	bounds   BoundingBox[T]
	items    []Q
	children [8]*octreeNode[Q, T]
	isLeaf   bool
}

// Octree is a bounded-depth axial spatial index over payloads implementing
// OctreePayload. Each node holds either up to eight child octants or a
// leaf payload list; an object is stored in every leaf whose bounds
// intersect its own.
type Octree[Q OctreePayload[T], T scalar.Float] struct {
	root              *octreeNode[Q, T]
	maxDepth          int
	maxPayloadPerLeaf int
}

// NewOctree recursively subdivides bounds and distributes objects into it,
// subdividing a node further whenever its payload count exceeds
// maxPayloadPerLeaf and its depth is below maxDepth.
//
// Parameters:
//   - bounds: the root node's bounds
//   - objects: the objects to index
//   - maxDepth: maximum subdivision depth
//   - maxPayloadPerLeaf: subdivide while a leaf holds more objects than this
//
// Returns:
//   - *Octree[Q, T]: the constructed spatial index
func NewOctree[Q OctreePayload[T], T scalar.Float](bounds BoundingBox[T], objects []Q, maxDepth, maxPayloadPerLeaf int) *Octree[Q, T] {
	o := &Octree[Q, T]{maxDepth: maxDepth, maxPayloadPerLeaf: maxPayloadPerLeaf}
	o.root = o.build(bounds, objects, 0)
	return o
}

func (o *Octree[Q, T]) build(bounds BoundingBox[T], objects []Q, depth int) *octreeNode[Q, T] {
	node := &octreeNode[Q, T]{bounds: bounds}

	if depth >= o.maxDepth || len(objects) <= o.maxPayloadPerLeaf {
		node.isLeaf = true
		node.items = objects
		return node
	}

	var childObjects [8][]Q
	for _, obj := range objects {
		ob := obj.Bounds()
		for i := 0; i < 8; i++ {
			if bounds.Octant(i).Intersects(ob) {
				childObjects[i] = append(childObjects[i], obj)
			}
		}
	}

	// If subdividing did not actually separate anything (every object
	// still lands in every child, e.g. objects larger than the node),
	// stop to avoid infinite recursion on unbounded duplication.
	allSame := true
	for i := 0; i < 8; i++ {
		if len(childObjects[i]) != len(objects) {
			allSame = false
			break
		}
	}
	if allSame {
		node.isLeaf = true
		node.items = objects
		return node
	}

	for i := 0; i < 8; i++ {
		node.children[i] = o.build(bounds.Octant(i), childObjects[i], depth+1)
	}
	return node
}

type pqItem[Q OctreePayload[T], T scalar.Float] struct {
	node  *octreeNode[Q, T]
	lower float64
}

type priorityQueue[Q OctreePayload[T], T scalar.Float] []pqItem[Q, T]

func (pq priorityQueue[Q, T]) Len() int            { return len(pq) }
func (pq priorityQueue[Q, T]) Less(i, j int) bool  { return pq[i].lower < pq[j].lower }
func (pq priorityQueue[Q, T]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue[Q, T]) Push(x interface{}) { *pq = append(*pq, x.(pqItem[Q, T])) }
func (pq *priorityQueue[Q, T]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ClosestPoint runs a best-first search for the object in the octree
// closest to q, pruning any node whose lower-bound distance to q is no
// better than the current best found so far. Objects reachable through
// more than one leaf (because their bounds straddle a split) are
// deduplicated within the query by identity.
//
// Parameters:
//   - q: the query point
//
// Returns:
//   - Vec3[T]: the closest point found
//   - Q: the object it belongs to
//   - bool: false if the octree is empty
func (o *Octree[Q, T]) ClosestPoint(q Vec3[T]) (Vec3[T], Q, bool) {
	var best Vec3[T]
	var bestObj Q
	found := false
	bestDist := float64(0)

	if o.root == nil {
		return best, bestObj, false
	}

	pq := &priorityQueue[Q, T]{{node: o.root, lower: float64(o.root.bounds.LowerBoundDistance(q))}}
	heap.Init(pq)

	visited := make(map[Q]struct{})

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem[Q, T])
		if found && top.lower >= bestDist {
			break
		}
		n := top.node
		if n.isLeaf {
			for _, obj := range n.items {
				if _, seen := visited[obj]; seen {
					continue
				}
				visited[obj] = struct{}{}
				p, ok := obj.ClosestPoint(q)
				if !ok {
					continue
				}
				d := float64(p.DistanceTo(q))
				if !found || d < bestDist {
					found = true
					bestDist = d
					best = p
					bestObj = obj
				}
			}
			continue
		}
		for _, c := range n.children {
			if c == nil {
				continue
			}
			lb := float64(c.bounds.LowerBoundDistance(q))
			if found && lb >= bestDist {
				continue
			}
			heap.Push(pq, pqItem[Q, T]{node: c, lower: lb})
		}
	}

	return best, bestObj, found
}

// SignedDistance computes a signed distance from q to the nearest payload
// in o: the Euclidean distance to the closest point, signed by
// sign(dot(q - closest, pseudonormal_at_closest)). Requires payloads
// satisfying SignedQuery (spec.md §4.2); returns 0 for an empty octree.
func SignedDistance[Q SignedQuery[T], T scalar.Float](o *Octree[Q, T], q Vec3[T]) T {
	p, obj, ok := o.ClosestPoint(q)
	var zero T
	if !ok {
		return zero
	}
	_, pseudo := obj.SignedClosestPoint(q)
	diff := q.Sub(p)
	dist := diff.Length()
	if diff.Dot(pseudo) < 0 {
		return -dist
	}
	return dist
}
