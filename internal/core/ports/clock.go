package ports

import "time"

// Clock abstracts the time source used for event timestamps, keeping them
// deterministic and testable.
type Clock interface {
	Now() time.Time
}
