package interfaces

import "context"

// IDistanceProvider answers the road distance in kilometers between two
// branches. Backed by an external geocoding/routing service; the billing core
// treats it as an opaque numeric oracle.

type IDistanceProvider interface {
	DistanceBetweenBranches(ctx context.Context, originBranchID, destinationBranchID string) (float64, error)
}
