package session

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/verilearn/verilearn/core"
)

var (
	validRoleTag  = "valid_role"
	validRoleText = "role must be student or teacher"

	pwdAttrSimTag  = "pwd_attr_similarity"
	pwdAttrSimText = "password is too similar to name or email"
)

// a password sharing this much of its characters with a user attribute is rejected
const pwdMaxSim = 0.7

// register custom validators
func init() {
	_ = core.Validate.RegisterValidation(validRoleTag, validRoleValidation)
	core.Validate.RegisterStructValidation(registrationStructValidation, Registration{})
	core.RegisterCustomTranslation(validRoleTag, validRoleText)
	core.RegisterCustomTranslation(pwdAttrSimTag, pwdAttrSimText)
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return core.TranslateValidationErrors(core.Validate.Struct(c))
}

// Registration is the account creation payload.
type Registration struct {
	Name     string `json:"name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,valid_role"`
}

func (r *Registration) Validate() error {
	r.Name = core.CleanString(r.Name)
	r.Email = core.CleanString(r.Email, true /* lower */)
	return core.TranslateValidationErrors(core.Validate.Struct(r))
}

// Custom Validators

// validRoleValidation only allows the closed role set.
func validRoleValidation(fl validator.FieldLevel) bool {
	return Role(fl.Field().String()).Valid()
}

// registrationStructValidation rejects passwords too similar to the
// accompanying name or email.
func registrationStructValidation(sl validator.StructLevel) {
	reg := sl.Current().Interface().(Registration)
	if reg.Password == "" {
		return
	}

	getRatio := func(pass, usrAttr string) float64 {
		if usrAttr == "" {
			return 0
		}
		return difflib.NewMatcher(strings.Split(pass, ""), strings.Split(usrAttr, "")).QuickRatio()
	}
	pwd := strings.ToLower(reg.Password)
	if getRatio(pwd, strings.ToLower(reg.Name)) >= pwdMaxSim ||
		getRatio(pwd, strings.ToLower(reg.Email)) >= pwdMaxSim {
		sl.ReportError(reg.Password, "password", "Password", pwdAttrSimTag, "")
	}
}
