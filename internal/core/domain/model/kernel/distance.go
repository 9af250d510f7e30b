package kernel

import (
	"fmt"
	"math/rand/v2"

	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

// Kilometers is a whole number of kilometers between two addresses.
type Kilometers int

const (
	// DistanceMinKm is the minimum distance the demo range produces.
	DistanceMinKm Kilometers = 5
	// DistanceMaxKm is the maximum distance the demo range produces.
	DistanceMaxKm Kilometers = 20
)

// ErrDistanceIsNotConstructed is returned when attempting to use an
// improperly initialized Distance. Distances must be created via NewDistance
// or NewRandomDistance.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"distance must be created via NewDistance or NewRandomDistance constructors")

// Distance is a positive number of kilometers derived from a pickup and a
// delivery address. It is an immutable value object bounded to the demo
// range [DistanceMinKm..DistanceMaxKm]; a real deployment would compute it
// from a geocoding or routing call and widen the bounds accordingly.
// The zero value is invalid and fails validation.
//
// Example:
//
//	d, err := kernel.NewDistance(12)
//	if err != nil {
//	    // out of range
//	}
//	fmt.Println(d) // Output: 12km
type Distance struct { //nolint:recvcheck //using for validation
	km    Kilometers
	guard guard.ConstructorGuard
}

// NewDistance creates a Distance of the given number of kilometers.
// Returns a ValueIsOutOfRangeError when km is outside
// [DistanceMinKm..DistanceMaxKm].
func NewDistance(km Kilometers) (Distance, error) {
	d := Distance{
		guard: guard.NewConstructorGuard(),
	}

	if err := d.setKm(km); err != nil {
		return Distance{}, err
	}

	return d, nil
}

// NewRandomDistance creates a Distance with a random value inside the demo
// range. Useful for tests.
func NewRandomDistance() (Distance, error) {
	km := Kilometers(rand.IntN(int(DistanceMaxKm-DistanceMinKm+1))) + DistanceMinKm //nolint:gosec // it's ok
	return NewDistance(km)
}

// Validate checks that the Distance was created through a constructor.
// Returns ErrDistanceIsNotConstructed for zero-value instances.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Km returns the distance in whole kilometers. Guaranteed to be within the
// demo range for properly constructed instances.
func (d Distance) Km() Kilometers {
	return d.km
}

// String returns a human-readable representation such as "12km".
// Implements fmt.Stringer.
func (d Distance) String() string {
	return fmt.Sprintf("%dkm", d.km)
}

// setKm sets the kilometers with range validation.
// Note: pointer receiver by intent, mirroring the other value objects'
// private setters.
func (d *Distance) setKm(km Kilometers) error {
	if km < DistanceMinKm || km > DistanceMaxKm {
		return errs.NewValueIsOutOfRangeError("distanceKm", km, DistanceMinKm, DistanceMaxKm)
	}

	d.km = km
	return nil
}
