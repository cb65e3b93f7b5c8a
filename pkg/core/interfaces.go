package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Validator is implemented by scene entities that can reject degenerate
// parameters before rendering starts
type Validator interface {
	Validate() error
}
