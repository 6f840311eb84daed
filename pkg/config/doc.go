// Package config loads the tool configuration for configspace.
//
// The configuration covers telemetry (logging and metrics) and the limits a
// configuration space enforces when condition trees are registered. It does
// not describe hyperparameters or conditions themselves.
//
// # Loading
//
//	cfg, err := config.LoadConfigWithEnvOverrides("configspace.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Loading reads YAML, applies defaults, applies CONFIGSPACE_* environment
// overrides and validates the result. All validation failures are reported
// together in a ValidationError.
//
// # Example
//
//	telemetry:
//	  logging:
//	    level: "debug"
//	    format: "text"
//	  metrics:
//	    enabled: true
//	    namespace: "configspace"
//	space:
//	  max_condition_depth: 8
package config
