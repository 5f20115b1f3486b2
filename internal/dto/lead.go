package dto

// SubmitLeadRequest carries the public widget form. Everything except
// the language is a bare presence check.
type SubmitLeadRequest struct {
	Name              string `form:"name" validate:"required"`
	Email             string `form:"email" validate:"required"`
	Phone             string `form:"phone" validate:"required"`
	DropdownSelection string `form:"dropdown_selection" validate:"required"`
	Message           string `form:"message" validate:"required"`
	Language          string `form:"language"`
}
