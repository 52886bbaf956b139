package validator

import (
	"ctchen222/tictactoe-minimax/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterValidations(validate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// RegisterValidations adds the project's custom tags to v. The HTTP layer calls
// it on gin's binding engine so request structs can use them too.
//
//	mark: the field is "X", "O" or "" (marks are case-insensitive)
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("mark", validateMark)
}

func validateMark(fl validator.FieldLevel) bool {
	_, err := game.ParseCell(fl.Field().String())
	return err == nil
}
