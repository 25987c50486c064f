package constants

import "fmt"

// Rol adları (JWT "role" claim ile birebir)
const (
	RoleAdmin   = "admin"
	RoleTutor   = "tutor"
	RoleAsistan = "asistan"
	RoleKurul   = "kurul"
	RoleOgrenci = "ogrenci"
	RoleSporcu  = "sporcu"
)

// Rol hata mesajı şablonları
const (
	ErrOnlyAdminsCanAccess = "❌ %s özelliğine sadece admin erişebilir."
	ErrOnlyStaffCanAccess  = "❌ %s özelliğine sadece admin, tutor veya asistan erişebilir."
	ErrOnlyBoardCanAccess  = "❌ %s özelliğine sadece yönetim kurulu veya admin erişebilir."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorBoard(feature string) string {
	return fmt.Sprintf(ErrOnlyBoardCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTutor,
		RoleAsistan,
		RoleKurul,
		RoleOgrenci,
		RoleSporcu,
	}

	// puan/yoklama verebilen kadro
	StaffRoles = []string{
		RoleAdmin,
		RoleTutor,
		RoleAsistan,
	}

	BoardAndAdmin = []string{
		RoleKurul,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	// ledger'da öğrenci sayılan roller
	StudentRoles = []string{
		RoleOgrenci,
		RoleSporcu,
	}
)

func IsStudentRole(role string) bool {
	for _, r := range StudentRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}
