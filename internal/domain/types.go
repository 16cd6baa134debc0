package domain

// ID is used across domain entities.
type ID int64

// Role is an account role.
type Role string

const (
	RolePassenger Role = "passenger"
	RoleOperator  Role = "operator"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RolePassenger, RoleOperator, RoleAdmin:
		return true
	}
	return false
}

// RequestContext carries the authenticated caller identity.
type RequestContext struct {
	UserID ID   `json:"userId"`
	Role   Role `json:"role"`
}

func (rc RequestContext) Authenticated() bool { return rc.UserID > 0 }

func (rc RequestContext) IsAdmin() bool { return rc.Role == RoleAdmin }
