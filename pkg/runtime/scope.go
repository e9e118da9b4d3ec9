package runtime

import "fmt"

// ScopeID is an integer handle into a ScopeSet. Handles replace literal
// parent pointers so the scope tree has no ownership entanglement: the set
// owns every record and children never outlive it.
type ScopeID int

// NoParent marks the root scope.
const NoParent ScopeID = -1

type scopeRecord struct {
	vars   map[string]Value
	parent ScopeID
}

// ScopeSet is an arena of scope records linked by parent handles. Lookup
// and assignment walk the chain toward the root; definition touches exactly
// one scope. The set is mutated by a single evaluator and needs no locking.
type ScopeSet struct {
	records []scopeRecord
}

// NewScopeSet constructs an arena holding only the root scope.
func NewScopeSet() *ScopeSet {
	s := &ScopeSet{}
	s.NewScope(NoParent)
	return s
}

// Root returns the handle of the root scope.
func (s *ScopeSet) Root() ScopeID { return 0 }

// NewScope appends a child of parent and returns its handle.
func (s *ScopeSet) NewScope(parent ScopeID) ScopeID {
	s.records = append(s.records, scopeRecord{vars: map[string]Value{}, parent: parent})
	return ScopeID(len(s.records) - 1)
}

// Define binds name in exactly the given scope. Redeclaring a name already
// bound there is an error; an equal name in an enclosing scope is not.
func (s *ScopeSet) Define(id ScopeID, name string, v Value) error {
	rec := &s.records[id]
	if _, ok := rec.vars[name]; ok {
		return fmt.Errorf("variable named %s already exists, did you mean to reassign it?", name)
	}
	rec.vars[name] = v
	return nil
}

// Assign overwrites the nearest binding of name, walking from id to the
// root. An unbound name is an error.
func (s *ScopeSet) Assign(id ScopeID, name string, v Value) error {
	for cur := id; cur != NoParent; cur = s.records[cur].parent {
		if _, ok := s.records[cur].vars[name]; ok {
			s.records[cur].vars[name] = v
			return nil
		}
	}
	return fmt.Errorf("attempt to reassign variable %q which doesn't exist", name)
}

// Lookup resolves name by walking from id to the root.
func (s *ScopeSet) Lookup(id ScopeID, name string) (Value, bool) {
	for cur := id; cur != NoParent; cur = s.records[cur].parent {
		if v, ok := s.records[cur].vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}
