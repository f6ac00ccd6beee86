package evaluator

// Scope is one frame of the lexical binding chain. Frames are shared:
// every closure that captured a frame and every object whose members live
// in one holds the same *Scope, so a frame stays alive as long as its
// longest-lived holder. Parent links are one-directional and never form
// cycles. All access is sequential within the single evaluation thread,
// so no locking is needed.
type Scope struct {
	bindings map[string]RuntimeValue
	parent   *Scope
}

// NewScope creates a frame. parent may be nil for a root frame or an
// object's own scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{bindings: make(map[string]RuntimeValue), parent: parent}
}

// Define binds name in this frame only. It reports false when name is
// already bound here; shadowing an outer frame's binding is allowed.
func (s *Scope) Define(name string, value RuntimeValue) bool {
	if _, ok := s.bindings[name]; ok {
		return false
	}
	s.bindings[name] = value
	return true
}

// Resolve looks name up in this frame, walking the parent chain unless
// localOnly is set. It never fails; absence is reported via ok.
func (s *Scope) Resolve(name string, localOnly bool) (RuntimeValue, bool) {
	if value, ok := s.bindings[name]; ok {
		return value, true
	}
	if localOnly || s.parent == nil {
		return nil, false
	}
	return s.parent.Resolve(name, false)
}

// Assign mutates the first frame in the chain that already defines name.
// It reports false when no frame does.
func (s *Scope) Assign(name string, value RuntimeValue) bool {
	if _, ok := s.bindings[name]; ok {
		s.bindings[name] = value
		return true
	}
	if s.parent != nil {
		return s.parent.Assign(name, value)
	}
	return false
}

// Put binds or overwrites name in this frame unconditionally. Property
// writes on objects use it: object members are create-or-overwrite, not
// subject to the duplicate-binding rule.
func (s *Scope) Put(name string, value RuntimeValue) {
	s.bindings[name] = value
}
