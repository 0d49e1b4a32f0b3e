package models

import "strings"

// StaffRole is a closed enumeration stored by its stable key, never by the
// display label, so renaming a label can't break stored-data matching.
type StaffRole string

const (
	RoleDriver StaffRole = "DRIVER"
	RoleHelper StaffRole = "HELPER"
)

func (r StaffRole) Valid() bool {
	return r == RoleDriver || r == RoleHelper
}

// Label returns the human-facing name used by the frontend.
func (r StaffRole) Label() string {
	switch r {
	case RoleDriver:
		return "Motorista"
	case RoleHelper:
		return "Ajudante"
	default:
		return string(r)
	}
}

// ParseStaffRole accepts both the stable key and the legacy display label
// that older exports stored.
func ParseStaffRole(s string) (StaffRole, bool) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "driver", "motorista":
		return RoleDriver, true
	case "helper", "ajudante":
		return RoleHelper, true
	default:
		return "", false
	}
}

// Staff is a driver or helper. Driver-only fields (VehicleType, Plate,
// KmRate) are empty/zero for helpers; a driver without a negotiated KmRate
// simply earns 0 per km.
type Staff struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        StaffRole `json:"role"`
	Active      bool      `json:"active"`
	Phone       string    `json:"phone,omitempty"`
	VehicleType string    `json:"vehicleType,omitempty"`
	Plate       string    `json:"plate,omitempty"`
	KmRate      float64   `json:"kmRate,omitempty"`
}

func (s Staff) IsDriver() bool { return s.Role == RoleDriver }
func (s Staff) IsHelper() bool { return s.Role == RoleHelper }

// Directory indexes staff by id for weak-reference lookups. A missing id is
// not an error; callers treat it as a removed member.
type Directory map[string]Staff

func BuildDirectory(staff []Staff) Directory {
	dir := make(Directory, len(staff))
	for _, s := range staff {
		dir[s.ID] = s
	}
	return dir
}
