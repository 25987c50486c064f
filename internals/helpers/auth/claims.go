package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"egitimportal_backend/internals/constants"
	helper "egitimportal_backend/internals/helpers"
)

/* ============================================
   JWT claim okuyucular (Locals ← auth middleware)
============================================ */

// GetUserID: auth middleware'in Locals("user_id")'e yazdığı kimlik.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil, helper.ErrUnauthorized("Oturum bulunamadı")
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, helper.ErrUnauthorized("Oturum bulunamadı")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, helper.ErrUnauthorized("Oturum kimliği geçersiz")
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("userRole").(string); ok {
		return role
	}
	return ""
}

// GetOrgID: token'daki aktif kurum (tenant) kimliği.
func GetOrgID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("org_id")
	if raw == nil {
		return uuid.Nil, helper.ErrUnauthorized("Kurum bilgisi bulunamadı")
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, helper.ErrUnauthorized("Kurum bilgisi bulunamadı")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, helper.ErrUnauthorized("Kurum kimliği geçersiz")
	}
	return id, nil
}

/* ============================================
   Rol kontrolleri
============================================ */

func EnsureAdmin(c *fiber.Ctx, feature string) error {
	if GetUserRole(c) != constants.RoleAdmin {
		return helper.ErrForbidden(constants.RoleErrorAdmin(feature))
	}
	return nil
}

func EnsureStaff(c *fiber.Ctx, feature string) error {
	if !constants.IsStaffRole(GetUserRole(c)) {
		return helper.ErrForbidden(constants.RoleErrorStaff(feature))
	}
	return nil
}

func EnsureBoard(c *fiber.Ctx, feature string) error {
	role := GetUserRole(c)
	for _, r := range constants.BoardAndAdmin {
		if role == r {
			return nil
		}
	}
	return helper.ErrForbidden(constants.RoleErrorBoard(feature))
}

/* ============================================
   Param yardımcıları
============================================ */

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, helper.ErrValidation("ID geçersiz")
	}
	return id, nil
}
