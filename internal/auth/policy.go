package auth

// PolicyStore maps a GraphQL root operation name to the set of roles
// allowed to invoke it. It is populated once at startup by plain
// Register calls and never mutated afterwards, so lookups need no
// synchronization.
//
// An operation with no entry is public. An entry containing RoleAny
// admits any authenticated principal.
type PolicyStore struct {
	policies map[string][]Role
}

func NewPolicyStore() *PolicyStore {
	return &PolicyStore{policies: make(map[string][]Role)}
}

// Register declares the allowed roles for operation. Calling Register
// again for the same operation replaces the earlier declaration.
func (s *PolicyStore) Register(operation string, roles ...Role) {
	s.policies[operation] = roles
}

// PolicyFor returns the declared role set for operation. The second
// return is false when the operation has no policy, i.e. is public.
func (s *PolicyStore) PolicyFor(operation string) ([]Role, bool) {
	roles, ok := s.policies[operation]
	return roles, ok
}
