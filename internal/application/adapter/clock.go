package adapter

import "time"

// Clock provides the current time. Tests replace it to pin "today".
type Clock interface {
	Now() time.Time
}
