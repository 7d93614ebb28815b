package value

// Environment is one lexical scope: a flat variable map plus a parent
// link, walked outward on lookup until the global environment (parent
// == nil) is reached (spec.md §4.6's `global_env`/`current_env` pair).
// Grounded on go-mix's interpreter environment chain, generalized from
// go-mix's single interpreter-wide scope stack to the per-closure
// parent-linked chain this dialect's closures need to capture.
type Environment struct {
	parent *Environment
	vars   map[string]Value
}

// NewEnvironment returns a fresh scope chained under parent (nil for
// the global environment).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[string]Value)}
}

// Get looks up name starting in e and walking outward through parents,
// returning ok=false if no enclosing scope declares it.
func (e *Environment) Get(name string) (Value, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in e's own scope (used for `local` declarations
// and function parameters), shadowing any outer binding of the same
// name.
func (e *Environment) Define(name string, v Value) {
	e.vars[name] = v
}

// Assign walks outward from e looking for an existing binding of name
// and overwrites it in place, returning ok=false if no enclosing scope
// declares it (the caller then falls back to defining it as a new
// global, per spec.md §4.6's "undeclared assignment targets the
// global table").
func (e *Environment) Assign(name string, v Value) bool {
	for scope := e; scope != nil; scope = scope.parent {
		if _, ok := scope.vars[name]; ok {
			scope.vars[name] = v
			return true
		}
	}
	return false
}

// Global walks to the outermost (global) scope in the chain.
func (e *Environment) Global() *Environment {
	scope := e
	for scope.parent != nil {
		scope = scope.parent
	}
	return scope
}
