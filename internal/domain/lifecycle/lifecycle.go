// Package lifecycle holds shared constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup checks.
const DefaultTimeout = 10 * time.Second
