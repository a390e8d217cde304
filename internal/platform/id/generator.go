package id

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}
