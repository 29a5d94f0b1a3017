package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// arweave addresses and transaction ids are 32 bytes, base64url without padding
var arweaveIdRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{43}$`)

// IsValidAddress returns is an arweave wallet address valid or not
func IsValidAddress(address string) bool {
	return arweaveIdRegex.MatchString(address)
}

// IsValidTxId returns is an arweave transaction (or contract) id valid or not
func IsValidTxId(id string) bool {
	return arweaveIdRegex.MatchString(id)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	_ = v.RegisterValidation("arweave_id", func(fl validator.FieldLevel) bool {
		return arweaveIdRegex.MatchString(fl.Field().String())
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
