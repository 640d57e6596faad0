package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/pkg/validation"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the period and provider rules to gin's validator engine
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("period", validatePeriod); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("provider", validateProvider)
	})
	return registerErr
}

func validatePeriod(fl validator.FieldLevel) bool {
	return validation.IsValidPeriodHours(int(fl.Field().Int()))
}

func validateProvider(fl validator.FieldLevel) bool {
	return weather.ProviderFromString(fl.Field().String()).IsValid()
}
