package models

// Role is the account type picked on the registration form.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleSeller   Role = "Seller"
)

// Roles lists the selectable roles in display order.
func Roles() []Role {
	return []Role{RoleCustomer, RoleSeller}
}

// ParseRole maps a submitted value to a Role. Anything that is not a known
// role, including the empty string, falls back to RoleCustomer.
func ParseRole(s string) Role {
	for _, r := range Roles() {
		if string(r) == s {
			return r
		}
	}
	return RoleCustomer
}

// LoginRequest is the body of POST /api/users/auth/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the part of the login reply the front end reads.
type LoginResponse struct {
	AuthToken string `json:"auth_token"`
}

// RegisterRequest is the body of POST /api/users/. Image holds the chosen
// file name only; it is null when no file was picked.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Image    *string `json:"image"`
	Role     Role    `json:"role"`
}

// StatusSuccess is the status value the backend returns for a created account.
const StatusSuccess = "success"

type RegisterResponse struct {
	Status string `json:"status"`
}

func (r RegisterResponse) Succeeded() bool { return r.Status == StatusSuccess }
