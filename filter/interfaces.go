package filter

import (
	"github.com/s0up4200/datacite/metadata"
)

// Filter defines the basic interface for DOI filters
type Filter interface {
	// Evaluate checks if a DOI matches the filter criteria
	Evaluate(doi metadata.DOIData) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Match is Evaluate with the evaluation error, if any
	Match(doi metadata.DOIData) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Func adapts a plain function to Filter
type Func func(doi metadata.DOIData) bool

// Evaluate calls f
func (f Func) Evaluate(doi metadata.DOIData) bool {
	return f(doi)
}

// All matches every DOI
var All Filter = Func(func(metadata.DOIData) bool { return true })
