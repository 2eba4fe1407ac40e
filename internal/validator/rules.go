package validator

import (
	"log"
	"strings"
	"unicode"

	"yaadjobs_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the platform's domain rules into the
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Misregistered rules are a startup error, not a runtime one.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("trn", validateTRN)
	mustRegister("parish", validateParish)
	mustRegister("user-role", validateUserRole)
	mustRegister("job-type", validateJobType)
	mustRegister("application-status", validateApplicationStatus)
}

// validateTRN accepts a 9-digit tax registration number,
// with or without the conventional xxx-xxx-xxx grouping.
func validateTRN(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty
	}

	digits := strings.ReplaceAll(value, "-", "")
	if len(digits) != 9 {
		return false
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func validateParish(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Parish(value).Valid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.SignupRoles[models.UserRole(value)]
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.JobType(value).Valid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ApplicationStatus(value).Valid()
}
