package message

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateMessageRequest is the public contact-form body
type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"message" binding:"required"`
}

func (r CreateMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Subject, validation.Required.Error("subject is required")),
		validation.Field(&r.Body, validation.Required.Error("message is required")),
	)
}

// CreateMessageResponse acknowledges a submission with the new id
type CreateMessageResponse struct {
	ID int64 `json:"id"`
}
