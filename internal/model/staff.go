package model

// Staff roles.  Front desk staff create and update reservations; only
// managers may view the daily report.
const (
	RoleFrontDesk = "Front Desk"
	RoleManager   = "Manager"
)

// Staff is static reference data describing one staff member.
type Staff struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Contact string `json:"contact"`
}
