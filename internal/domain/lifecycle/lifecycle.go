// Package lifecycle centralizes application start/stop timing shared by the
// fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of long-lived
// components such as the HTTP server and database pool.
const DefaultTimeout = 10 * time.Second
