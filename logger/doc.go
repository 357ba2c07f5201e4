// Package logger provides structured logging for flowkit pipelines
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("ingest").WithComponent("pipeline")
//	log.Info("step completed", logger.Fields("step", "transform", "duration_ms", 12))
package logger
