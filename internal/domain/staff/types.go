package staff

import "vetclinic-scheduling/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid staff role")

// Role is the clinic-level role a staff member holds through their
// membership. Eligibility checks receive the set of roles allowed to
// take an appointment.
type Role string

const (
	RoleVeterinary          Role = "veterinary"
	RoleAssistantVeterinary Role = "assistant_veterinary"
	RoleReceptionist        Role = "receptionist"
	RoleAdmin               Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleVeterinary, RoleAssistantVeterinary, RoleReceptionist, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// PractitionerRoles are the roles allowed to be assigned to an
// appointment as practitioner.
func PractitionerRoles() []Role {
	return []Role{RoleVeterinary, RoleAssistantVeterinary}
}
