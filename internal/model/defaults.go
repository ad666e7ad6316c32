package model

import "time"

// Shared defaults used by both the TUI and server binaries.
const (
	DefaultDataDir         = "data"
	DefaultBindHost        = "127.0.0.1"
	DefaultAPIPort         = 3000
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
)
