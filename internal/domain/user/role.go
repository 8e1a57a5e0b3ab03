package user

type Role string

const (
	RoleOwner        Role = "owner"        // Tenant owner - full access
	RoleManager      Role = "manager"      // Facility manager
	RoleReceptionist Role = "receptionist" // Front desk - bookings and waitlist
	RoleStaff        Role = "staff"        // Service employee
	RoleClient       Role = "client"       // End customer
)

var RoleValues = []string{
	string(RoleOwner),
	string(RoleManager),
	string(RoleReceptionist),
	string(RoleStaff),
	string(RoleClient),
}

type Permission string

const (
	// Appointment Management
	PermissionAppointmentViewOwn Permission = "appointment.view_own"
	PermissionAppointmentViewAll Permission = "appointment.view_all"
	PermissionAppointmentManage  Permission = "appointment.manage"
	PermissionAppointmentBulk    Permission = "appointment.bulk_generate"

	// Waitlist Management
	PermissionWaitlistJoin    Permission = "waitlist.join"
	PermissionWaitlistViewAll Permission = "waitlist.view_all"

	// Directory Management
	PermissionEmployeeManage Permission = "employee.manage"
	PermissionClientManage   Permission = "client.manage"
	PermissionCatalogManage  Permission = "catalog.manage"
	PermissionShiftManage    Permission = "shift.manage"

	// Tenant Management
	PermissionTenantManage Permission = "tenant.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionAppointmentViewOwn,
		PermissionAppointmentViewAll,
		PermissionAppointmentManage,
		PermissionAppointmentBulk,
		PermissionWaitlistJoin,
		PermissionWaitlistViewAll,
		PermissionEmployeeManage,
		PermissionClientManage,
		PermissionCatalogManage,
		PermissionShiftManage,
		PermissionTenantManage,
	},
	RoleManager: {
		PermissionAppointmentViewOwn,
		PermissionAppointmentViewAll,
		PermissionAppointmentManage,
		PermissionAppointmentBulk,
		PermissionWaitlistViewAll,
		PermissionEmployeeManage,
		PermissionClientManage,
		PermissionCatalogManage,
		PermissionShiftManage,
	},
	RoleReceptionist: {
		PermissionAppointmentViewOwn,
		PermissionAppointmentViewAll,
		PermissionAppointmentManage,
		PermissionWaitlistViewAll,
		PermissionClientManage,
	},
	RoleStaff: {
		PermissionAppointmentViewOwn,
	},
	RoleClient: {
		PermissionAppointmentViewOwn,
		PermissionWaitlistJoin,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
