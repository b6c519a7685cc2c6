package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalogo-backend/internal/shared"
)

// CreateCategoryRequest carries the POST /categorias body.
type CreateCategoryRequest struct {
	Nome shared.OptionalString `json:"nome"`
}

// Validate requires a non-blank nome after trimming.
func (r *CreateCategoryRequest) Validate() error {
	if r.Nome.Invalid {
		return ErrNameRequired
	}
	if err := validation.Validate(r.Nome.Trimmed(), validation.Required); err != nil {
		return ErrNameRequired
	}
	return nil
}

// ToEntity builds the candidate row with the name trimmed.
func (r *CreateCategoryRequest) ToEntity() *Category {
	return &Category{Nome: r.Nome.Trimmed()}
}

// UpdateCategoryRequest carries the PUT /categorias/:id body. Unlike the other
// entities, nome is required on every update.
type UpdateCategoryRequest struct {
	Nome shared.OptionalString `json:"nome"`
}

func (r *UpdateCategoryRequest) Validate() error {
	if r.Nome.Invalid {
		return ErrNameRequired
	}
	if err := validation.Validate(r.Nome.Trimmed(), validation.Required); err != nil {
		return ErrNameRequired
	}
	return nil
}

func (r *UpdateCategoryRequest) ApplyTo(stored *Category) *Category {
	merged := *stored
	merged.Nome = r.Nome.Trimmed()
	return &merged
}
