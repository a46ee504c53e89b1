// Package envread abstracts environment-variable lookup so directory
// resolution can be driven by an injected environment in tests.
package envread

import "os"

// Reader looks up a single environment variable. The boolean reports
// whether the variable is set at all; a set-but-empty variable yields
// ("", true).
type Reader func(name string) (string, bool)

// System reads the live process environment. Each call reflects the
// current state; nothing is cached.
func System() Reader {
	return os.LookupEnv
}

// Static builds a Reader backed by the given map. Variables absent from
// the map are reported as unset.
func Static(vars map[string]string) Reader {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}
