package vrp

// ValidateSolution checks that sol.Route is a structurally valid route
// over instance: every customer index appears exactly once, depot
// markers carry the expected indices in the expected count, and no index
// exceeds the distance matrix bounds.
//
// Errors: ErrEmptyRoute, ErrRouteShapeInvalid.
func ValidateSolution(sol Solution, instance *ProblemInstance) error {
	if len(sol.Route) == 0 {
		return ErrEmptyRoute
	}

	seen := make(map[int]bool, len(sol.Route))
	depotMarkers := 0
	for _, node := range sol.Route {
		if node.Index < 0 || node.Index >= len(instance.Demands) {
			return ErrRouteShapeInvalid
		}
		if seen[node.Index] {
			return ErrRouteShapeInvalid
		}
		seen[node.Index] = true

		if node.IsDepot {
			depotMarkers++
			if node.Index >= instance.NumTrucks-1 {
				return ErrRouteShapeInvalid
			}
		}
	}

	if depotMarkers != instance.NumTrucks-1 {
		return ErrRouteShapeInvalid
	}
	if len(sol.Route) != len(instance.Demands) {
		return ErrRouteShapeInvalid
	}

	return nil
}
