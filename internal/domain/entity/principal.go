package entity

// PrincipalKind distinguishes customers from staff.
type PrincipalKind string

const (
	PrincipalUser  PrincipalKind = "user"
	PrincipalStaff PrincipalKind = "staff"
)

// Principal is the actor a request is made on behalf of.
type Principal struct {
	ID   int64
	Kind PrincipalKind
	Role Role // staff only
}

// IsStaff reports whether the principal is a staff member.
func (p Principal) IsStaff() bool {
	return p.Kind == PrincipalStaff
}
