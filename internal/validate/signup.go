package validate

import (
	"strings"

	"eventplanner/dto"
	"eventplanner/model"
)

// SignupFields checks signup input before any store or hash work.
func SignupFields(req dto.SignupRequestDTO) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required for signup"
	}
	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email and password are required"
	}
	if req.Password == "" {
		errs["password"] = "Email and password are required"
	} else if len(req.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if req.Role != model.RoleUser && req.Role != model.RoleAdmin {
		errs["role"] = "Role must be user or admin"
	}

	return errs
}
