package vrp

import "container/heap"

// nodeHeap is a max-heap of customer Nodes ordered by descending demand.
type nodeHeap []Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].Demand > h[j].Demand }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(Node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Repair performs a destroy-and-recreate pass over sol: partition by
// excess, pop customers off the back of every overloaded truck (highest
// excess first) into a max-heap ordered by demand, then push customers
// back onto under-utilized trucks (lowest excess first) so long as doing
// so does not push that truck's excess positive. Any customers left on
// the heap once every truck has non-positive excess are dumped onto the
// truck with the lowest excess. The route is then rebuilt from the
// resulting trucks and its fitness recomputed.
//
// Complexity: O(n log n).
func Repair(sol Solution, instance *ProblemInstance) Solution {
	trucks := PartitionByExcess(sol.Route, instance)

	h := &nodeHeap{}
	heap.Init(h)

	for i := range trucks {
		t := &trucks[i]
		if t.Excess <= 0 {
			break
		}
		for t.Excess > 0 && len(t.Route) > 0 {
			last := t.Route[len(t.Route)-1]
			t.Route = t.Route[:len(t.Route)-1]
			t.Load -= last.Demand
			t.Excess -= last.Demand
			heap.Push(h, last)
		}
	}

	for i := len(trucks) - 1; i >= 0; i-- {
		t := &trucks[i]
		if h.Len() == 0 || t.Excess > 0 {
			break
		}
		for h.Len() > 0 && t.Excess+(*h)[0].Demand <= 0 {
			top := heap.Pop(h).(Node)
			t.Route = append(t.Route, top)
			t.Load += top.Demand
			t.Excess += top.Demand
		}
	}

	if h.Len() > 0 {
		minIdx := 0
		for i := 1; i < len(trucks); i++ {
			if trucks[i].Excess < trucks[minIdx].Excess {
				minIdx = i
			}
		}
		for h.Len() > 0 {
			node := heap.Pop(h).(Node)
			trucks[minIdx].Route = append(trucks[minIdx].Route, node)
			trucks[minIdx].Load += node.Demand
			trucks[minIdx].Excess += node.Demand
		}
	}

	route := RebuildRoute(trucks)

	return Solution{Route: route, Fitness: Fitness(route, instance)}
}
