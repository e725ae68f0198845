package vrp

// PartitionByLoad splits a flat route into per-truck customer segments
// along its depot markers, closing the final truck implicitly at the end
// of the route. Trucks are returned sorted by Load descending.
//
// Complexity: O(len(route) + numTrucks²) (insertion sort of the trucks).
func PartitionByLoad(route []Node) []Truck {
	trucks := make([]Truck, 0, 4)
	var curr Truck
	for _, node := range route {
		if node.IsDepot {
			curr.EndingWarehouse = node.Index
			trucks = append(trucks, curr)
			curr = Truck{}

			continue
		}
		curr.Route = append(curr.Route, node)
		curr.Load += node.Demand
	}
	curr.EndingWarehouse = len(route)
	trucks = append(trucks, curr)

	sortTrucksByLoadDesc(trucks)

	return trucks
}

// PartitionByExcess partitions route with PartitionByLoad, assigns each
// truck (in load-descending rank order) the instance's capacity at the
// same rank, computes Excess = Load - Capacity, and re-sorts by Excess
// descending.
//
// If there are more trucks than capacities, the surplus trucks keep a
// zero Capacity (their Excess equals their Load).
//
// Complexity: O(len(route) + numTrucks²).
func PartitionByExcess(route []Node, instance *ProblemInstance) []Truck {
	trucks := PartitionByLoad(route)

	n := len(trucks)
	if len(instance.VehicleCapacities) < n {
		n = len(instance.VehicleCapacities)
	}
	for rank := 0; rank < n; rank++ {
		trucks[rank].Capacity = instance.VehicleCapacities[rank]
		trucks[rank].Excess = trucks[rank].Load - trucks[rank].Capacity
	}
	for rank := n; rank < len(trucks); rank++ {
		trucks[rank].Excess = trucks[rank].Load
	}

	sortTrucksByExcessDesc(trucks)

	return trucks
}

func sortTrucksByLoadDesc(trucks []Truck) {
	for i := 1; i < len(trucks); i++ {
		v := trucks[i]
		j := i - 1
		for j >= 0 && trucks[j].Load < v.Load {
			trucks[j+1] = trucks[j]
			j--
		}
		trucks[j+1] = v
	}
}

func sortTrucksByExcessDesc(trucks []Truck) {
	for i := 1; i < len(trucks); i++ {
		v := trucks[i]
		j := i - 1
		for j >= 0 && trucks[j].Excess < v.Excess {
			trucks[j+1] = trucks[j]
			j--
		}
		trucks[j+1] = v
	}
}

// RebuildRoute concatenates each truck's customer segment back into a
// flat route, inserting a depot marker with the given index between
// (not after the last) consecutive segments. Marker indices are assigned
// 0..len(trucks)-2, matching a problem instance's depot-marker
// convention (index < NumTrucks-1).
//
// Complexity: O(len(route)).
func RebuildRoute(trucks []Truck) []Node {
	var total int
	for _, t := range trucks {
		total += len(t.Route)
	}

	route := make([]Node, 0, total+len(trucks)-1)
	for i, t := range trucks {
		route = append(route, t.Route...)
		if i < len(trucks)-1 {
			route = append(route, Node{Index: i, Demand: 0, IsDepot: true})
		}
	}

	return route
}
