package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusiness, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfAssignable reports whether a visitor may pick this role when registering.
func (r Role) IsSelfAssignable() bool {
	return r == RoleCustomer || r == RoleBusiness
}

// Satisfies reports whether a holder of r may act where any of required is expected. Admin satisfies every role.
func (r Role) Satisfies(required ...Role) bool {
	if r == RoleAdmin {
		return true
	}
	for _, want := range required {
		if r == want {
			return true
		}
	}
	return false
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
