// Package config loads the Filebox CLI configuration.
//
// Sources are applied in order, later overriding earlier:
//
//  1. hard-coded defaults
//  2. a JSON file named by -c/-config
//  3. individual command-line flags (-b, -t, -d)
package config
