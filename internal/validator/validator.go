// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("filter_time", validateFilterTime)
		_ = v.RegisterValidation("filter_type", validateFilterType)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "IN", "OUT":
		return true
	}
	return false
}

func validateFilterTime(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "ALL", "TODAY", "THIS_MONTH":
		return true
	}
	return false
}

func validateFilterType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "ALL", "IN", "OUT":
		return true
	}
	return false
}
