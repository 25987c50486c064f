// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egitimportal_backend/internals/features/users/auth/service"
	helper "egitimportal_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New()
	}
	return &AuthController{DB: db, Validator: v}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var p service.LoginInput
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	res, err := service.Login(ctl.DB, p)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Giriş başarılı", res)
}

// POST /api/auth/login-google
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var p service.GoogleLoginInput
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	res, err := service.LoginGoogle(ctl.DB, p)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Giriş başarılı", res)
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Get("Authorization"))
	token := ""
	if parts := strings.SplitN(raw, " ", 2); len(parts) == 2 {
		token = strings.TrimSpace(parts[1])
	}
	if token == "" {
		token = strings.TrimSpace(c.Cookies("access_token"))
	}
	if err := service.Logout(ctl.DB, token); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Çıkış yapıldı", nil)
}
