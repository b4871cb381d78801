package poi

// RestDist pairs a record index with its distance from the query point.
// Two values are the same item when they name the same record.
type RestDist struct {
	Index int
	Dist  int
}

func (r RestDist) Hash() uint64 {
	return uint64(r.Index)
}

func (r RestDist) Equal(o RestDist) bool {
	return r.Index == o.Index
}

// InsertionSort sorts rs by ascending distance.
func InsertionSort(rs []RestDist) {
	// rs[:i] is sorted at the start of each iteration
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j].Dist < rs[j-1].Dist; j-- {
			rs[j-1], rs[j] = rs[j], rs[j-1]
		}
	}
}

// QuickSort sorts rs by ascending distance, pivoting on the middle element.
func QuickSort(rs []RestDist) {
	if len(rs) <= 1 {
		return
	}
	p := partition(rs, len(rs)/2)
	QuickSort(rs[:p])
	QuickSort(rs[p+1:])
}

// partition moves rs[pi] to its sorted position p, with nothing greater
// before it and nothing smaller or equal after it, and returns p.
func partition(rs []RestDist, pi int) int {
	last := len(rs) - 1
	rs[pi], rs[last] = rs[last], rs[pi]
	pivot := rs[last].Dist

	lo, hi := 0, last-1
	for lo <= hi {
		if rs[lo].Dist <= pivot {
			lo++
		} else if rs[hi].Dist > pivot {
			hi--
		} else {
			rs[lo], rs[hi] = rs[hi], rs[lo]
		}
	}
	rs[lo], rs[last] = rs[last], rs[lo]
	return lo
}
