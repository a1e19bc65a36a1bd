package entities

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Known() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Principal identifies the authenticated caller of an operation.
// Identity is issued upstream; the service only consumes it.
type Principal struct {
	ID   int64
	Role Role
}
