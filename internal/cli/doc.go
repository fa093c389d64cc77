// Package cli turns command-line arguments into a validated app.Config and
// carries the exit code of a failed parse.
//
// Global flags (--config, --log-level, --log-format, --order) come before the
// command; command flags come before the model path:
//
//	simplemodel --order dependency check --strict house.simple
//	simplemodel state --format yaml --publish-url http://localhost:3000 house.md
//	simplemodel docs --html
//
// Values from a run file (see package config) fill every option the command
// line leaves unset.
package cli
