package profile

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UpdateProfileRequest is the body of PUT /personal. Name, title
// and email are always required; the rest merge shallowly, nil
// meaning "leave unchanged".
type UpdateProfileRequest struct {
	Name     string  `json:"name" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Bio      *string `json:"bio"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	Social   *Social `json:"social"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
	)
}
