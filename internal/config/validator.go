package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/benkyo-app/benkyo/internal/srs"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterStructValidation(validateSRSConfig, srs.Config{})

	return validate, trans, nil
}

// validateSRSConfig checks the scheduler tuning for values the algorithm
// cannot operate with. Field tags cannot express the cross-field constraint
// between the minimum and initial ease factors.
func validateSRSConfig(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(srs.Config)

	if cfg.InitialInterval < 0 {
		sl.ReportError(cfg.InitialInterval, "initial_interval", "InitialInterval", "gte", "0")
	}
	if cfg.MinEaseFactor <= 0 {
		sl.ReportError(cfg.MinEaseFactor, "min_ease_factor", "MinEaseFactor", "gt", "0")
	}
	if cfg.InitialEaseFactor < cfg.MinEaseFactor {
		sl.ReportError(cfg.InitialEaseFactor, "initial_ease_factor", "InitialEaseFactor", "gtefield", "min_ease_factor")
	}
	if cfg.MaxInterval < 1 {
		sl.ReportError(cfg.MaxInterval, "max_interval", "MaxInterval", "gte", "1")
	}
	if cfg.EasyBonus <= 0 {
		sl.ReportError(cfg.EasyBonus, "easy_bonus", "EasyBonus", "gt", "0")
	}
	if cfg.IntervalModifier <= 0 {
		sl.ReportError(cfg.IntervalModifier, "interval_modifier", "IntervalModifier", "gt", "0")
	}
}
