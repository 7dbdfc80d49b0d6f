package pricing

import (
	"errors"
	"math"
)

// ErrNegativeTravelDuration rejects a negative one-way travel duration.
var ErrNegativeTravelDuration = errors.New("one-way travel duration must not be negative")

// TransportationCharge bills the round trip in whole machine-transport hours.
//
// A zero-minute one-way duration is a valid same-location job and yields a
// zero charge; any positive duration bills at least one hour.
func (c Config) TransportationCharge(oneWayMinutes float64) (float64, error) {
	if oneWayMinutes < 0 {
		return 0, ErrNegativeTravelDuration
	}
	roundTripMinutes := oneWayMinutes * 2
	billableHours := math.Ceil(roundTripMinutes / 60)
	return billableHours * c.TransportHourlyRate, nil
}
