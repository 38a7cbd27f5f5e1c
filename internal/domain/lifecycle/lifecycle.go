// Package lifecycle holds timing constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook, such as pinging the store
// or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
