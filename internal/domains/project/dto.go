package project

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateProjectRequest is the body of POST /projects
type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github"`
	Live         string   `json:"live"`
	Featured     bool     `json:"featured"`
	Published    bool     `json:"published"`
}

func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
	)
}

// UpdateProjectRequest is the body of PUT /projects/{id}.
// Pointer fields: nil means "leave unchanged" (shallow merge).
type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	Technologies *[]string `json:"technologies"`
	GitHub       *string   `json:"github"`
	Live         *string   `json:"live"`
	Featured     *bool     `json:"featured"`
	Published    *bool     `json:"published"`
}

func (r UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		// Present fields must not blank out the required ones
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Required.Error("title must not be empty"))),
		validation.Field(&r.Description, validation.When(r.Description != nil, validation.Required.Error("description must not be empty"))),
	)
}
