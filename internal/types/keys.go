package types

import "time"

// Well-known auxiliary context keys.
var (
	// KeyCurrentTime carries a simulated "now" so replay drivers can pin
	// candle queries to a historical point in time. Absent in live runs.
	KeyCurrentTime = NewTypedKey[time.Time]("current_time")
)
