package model

// Role is a permission tag attached to users and to restricted actions.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleGeneralManager   Role = "general_manager"
	RoleManager          Role = "manager"
	RoleSupervisor       Role = "supervisor"
	RoleTeamLeader       Role = "team_leader"
	RoleOperator         Role = "operator"
	RoleTechnician       Role = "technician"
	RoleQCInspector      Role = "qc_inspector"
	RoleMaintenanceStaff Role = "maintenance_staff"
	RoleViewer           Role = "viewer"
)

// ElevatedRole bypasses every permission requirement.
const ElevatedRole = RoleAdmin

var knownRoles = map[Role]struct{}{
	RoleAdmin:            {},
	RoleGeneralManager:   {},
	RoleManager:          {},
	RoleSupervisor:       {},
	RoleTeamLeader:       {},
	RoleOperator:         {},
	RoleTechnician:       {},
	RoleQCInspector:      {},
	RoleMaintenanceStaff: {},
	RoleViewer:           {},
}

// IsKnownRole reports whether r is one of the factory roles.
func IsKnownRole(r string) bool {
	_, ok := knownRoles[Role(r)]
	return ok
}

// Allowed reports whether an actor with role may use something that requires required.
// An empty requirement means any actor.
func Allowed(required, role string) bool {
	return required == "" || required == role || Role(role) == ElevatedRole
}
