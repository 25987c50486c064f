package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BindAndValidate: body parse + validator.v10 struct doğrulaması.
// Hata durumunda doğrudan AppError döner; controller'lar JsonAppError'a verir.
func BindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return ErrValidation("İstek gövdesi geçersiz")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
				return ErrValidation("Doğrulama başarısız: " + ve[0].Field() + " (" + ve[0].Tag() + ")")
			}
			return ErrValidation("Doğrulama başarısız")
		}
	}
	return nil
}
