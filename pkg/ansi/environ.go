package ansi

import (
	"os"
	"slices"
)

// Environ is a read-only view of environment variables. It has the same
// method set as termenv.Environ so one value can drive both.
type Environ interface {
	Environ() []string
	Getenv(key string) string
}

type osEnviron struct{}

func (osEnviron) Environ() []string        { return os.Environ() }
func (osEnviron) Getenv(key string) string { return os.Getenv(key) }

// OSEnviron returns an Environ backed by the live process environment.
func OSEnviron() Environ {
	return osEnviron{}
}

// MapEnviron is a fixed environment snapshot.
type MapEnviron map[string]string

// Environ returns the snapshot as sorted KEY=value pairs.
func (m MapEnviron) Environ() []string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	slices.Sort(pairs)
	return pairs
}

// Getenv returns the value of key, or "" when it is not set.
func (m MapEnviron) Getenv(key string) string {
	return m[key]
}
