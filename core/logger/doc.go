// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports development (debug level,
// ISO8601 timestamps) and production settings, with either JSON or console encoding.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a Fiber
// context and attaches it to the log entry, so every log line of one request can be
// correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
