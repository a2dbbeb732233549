package handlers

import (
	"fmt"
	"sync"

	"returnfilers/pkg/theme"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator.
// Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("hex6", validateHex6)
	})
	return err
}

// validateHex6 accepts a six-digit hex color with or without the leading '#'
func validateHex6(fl validator.FieldLevel) bool {
	return theme.IsValidHex(fl.Field().String())
}
