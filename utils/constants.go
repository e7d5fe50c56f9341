// File: utils/constants.go
package utils

import "time"

// ReminderCacheTTL is the time-to-live for cached per-user reminder lists.
const ReminderCacheTTL = 5 * time.Minute
