// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logging builds the process-wide slog logger.

	logger := logging.New(cfg.Env, os.Stdout)
	slog.SetDefault(logger)

Handlers per environment:

  - local: PrettyHandler, colored level and message with attributes as JSON
  - dev:   JSON, debug level
  - prod:  JSON, info level

Use Err to attach errors consistently:

	slog.Error("schema creation failed", logging.Err(err))
*/
package logging
