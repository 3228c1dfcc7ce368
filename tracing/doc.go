// Package tracing integrates observability back-ends with drainly.  All
// instrumentation lives in a separate package so that hosts which do not
// require tracing can exclude it from their build; when the provider is
// never initialised every span is a no-op.
package tracing
