package helper

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidateStruct menjalankan validator.v10 dan membalas 422 + field map
// saat gagal. Return nil artinya payload lolos.
func ValidateStruct(c *fiber.Ctx, payload any) error {
	if err := Validator().Struct(payload); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			fieldErrors := make(map[string][]string, len(ve))
			for _, fe := range ve {
				fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
			}
			return JsonValidationError(c, fieldErrors)
		}
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	return nil
}
