package types

// Requirement is the decomposed form of a pip requirement string such
// as "uWSGI>=2.0.17;python_version<'3.8'". Decomposition is best-effort
// slicing: malformed input produces degenerate fields, never an error.
type Requirement struct {
	Name        string
	VersionSpec string
	Marker      string
}

// HasVersion reports whether the requirement carries a concrete
// version constraint.
func (r Requirement) HasVersion() bool {
	return r.VersionSpec != ""
}
