package routeguard

// Routes adalah tabel policy statis portal. Root memakai RequiresAuth agar
// pengunjung anonim jatuh ke /login lewat rule 2; pendaratan per-role
// diputuskan handler root lewat Landing.
var Routes = map[string]Policy{
	PathRoot:       {RequiresAuth: true, Role: AnyRole},
	PathLogin:      {RequiresAuth: false, Role: AnyRole},
	PathDashboard:  {RequiresAuth: true, Role: EmployeeOnly},
	PathAttendance: {RequiresAuth: true, Role: EmployeeOnly},
	PathAdmin:      {RequiresAuth: true, Role: AdminOnly},
}

// PolicyFor mengembalikan policy route; default: terproteksi, role bebas.
func PolicyFor(path string) Policy {
	if p, ok := Routes[path]; ok {
		return p
	}
	return Policy{RequiresAuth: true, Role: AnyRole}
}
