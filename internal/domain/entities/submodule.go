package entities

// Submodule is one registered dependency inside a project: a relative path
// bound to a source repository and a tracked branch.
type Submodule struct {
	Name   string
	Branch string
	// Path is relative to the project root; nested submodules carry the
	// full path through their parents.
	Path string
}

// RegistrationOutcome distinguishes a fresh submodule add from an update of
// an already-registered path.
type RegistrationOutcome int

const (
	// RegistrationAdded means the submodule was newly registered.
	RegistrationAdded RegistrationOutcome = iota
	// RegistrationUpdated means the path was already registered and a
	// recursive submodule update ran instead.
	RegistrationUpdated
)

func (o RegistrationOutcome) String() string {
	if o == RegistrationUpdated {
		return "updated"
	}
	return "added"
}

// SearchResult is one repository returned by the remote search collaborator.
type SearchResult struct {
	FullName    string
	Description string
	Stars       int
}
