package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/devfolio/devfolio-api/internal/portfolio"
)

// RegisterValidators installs the custom binding rules. Call once at startup,
// before routes are served.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("role", validRole)
	}
}

// validRole accepts the role enum; empty values are handled by omitempty.
func validRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	return role == portfolio.RoleUser || role == portfolio.RoleAdmin
}
