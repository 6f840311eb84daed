// Configspace checks the tool configuration used by configspace libraries.
//
// Usage:
//
//	# Validate a configuration file (environment overrides applied)
//	configspace validate-config --config configspace.yaml
//
//	# Same, as JSON
//	configspace validate-config -c configspace.yaml --format json
//
//	# Show version information
//	configspace version
package main

func main() {
	Execute()
}
