package polytope

// FaceTraceNext returns the vertex that continues the face boundary
// containing the directed edge (from, to): the neighbor of to
// immediately before from, cyclically, in to's neighbor list.
//
// This is the load-bearing rule behind 3D face extraction (§4.5): a
// face's directed edges are traced forward by repeatedly applying this
// rule until the starting edge recurs.
func (p Polyhedron) FaceTraceNext(from, to int) int {
	nbrs := p[to].Neighbors
	k := len(nbrs)
	pos := indexOf(nbrs, from)
	return nbrs[(pos-1+k)%k]
}

// FaceTracePrev returns the vertex P such that the directed edge
// (P, v) belongs to the same face as the directed edge (v, w) — the
// inverse of FaceTraceNext, used to walk a face's boundary backward.
func (p Polyhedron) FaceTracePrev(v, w int) int {
	nbrs := p[v].Neighbors
	k := len(nbrs)
	pos := indexOf(nbrs, w)
	return nbrs[(pos+1)%k]
}

// indexOf returns the position of target in nbrs. target is always
// present by precondition (it is a known neighbor).
func indexOf(nbrs []int, target int) int {
	for i, v := range nbrs {
		if v == target {
			return i
		}
	}
	return -1
}
