package model

// Role identifies which principal collection an authenticated actor belongs to.
type Role string

const (
	RoleClient    Role = "client"
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the three known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleCandidate, RoleAdmin:
		return true
	}
	return false
}
