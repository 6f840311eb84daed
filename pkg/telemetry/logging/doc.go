// Package logging builds the structured loggers used by configspace.
//
// Loggers are plain *slog.Logger values. The package only turns a level and
// format into a handler, so callers can pass the result anywhere a
// *slog.Logger is accepted.
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "text",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sp := space.New(space.Options{Logger: logger})
//
// # Formats
//
//   - json: one JSON object per line
//   - text: logfmt-style key=value pairs
//   - console: same as text, for interactive use
package logging
