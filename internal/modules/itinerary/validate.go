package itinerary

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"tripplanner/internal/types"
)

const dateLayout = "2006-01-02"

// Validate reports a types.ErrValidationGap when the request cannot drive a real plan.
// Budget and theme are optional.
func Validate(req TripRequest) error {
	var missing []string
	if strings.TrimSpace(req.Destination) == "" {
		missing = append(missing, "destination")
	}
	if strings.TrimSpace(req.StartDate) == "" {
		missing = append(missing, "startDate")
	}
	if strings.TrimSpace(req.EndDate) == "" {
		missing = append(missing, "endDate")
	}
	if len(missing) > 0 {
		return errors.Wrapf(types.ErrValidationGap, "missing %s", strings.Join(missing, ", "))
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return errors.Wrapf(types.ErrValidationGap, "startDate %q", req.StartDate)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return errors.Wrapf(types.ErrValidationGap, "endDate %q", req.EndDate)
	}
	if end.Before(start) {
		return errors.Wrap(types.ErrValidationGap, "endDate before startDate")
	}
	return nil
}
