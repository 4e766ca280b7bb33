package dynarray

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dynarray'.
func tracer() tracing.Trace {
	return tracing.Select("dynarray")
}
