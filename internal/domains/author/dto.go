package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalogo-backend/internal/shared"
)

// CreateAuthorRequest carries the POST /autores body. Optional wrappers keep
// absent, null and wrong-typed fields apart so validation can report them
// instead of the JSON decoder.
type CreateAuthorRequest struct {
	Nome     shared.OptionalString `json:"nome"`
	Email    shared.OptionalString `json:"email"`
	Telefone shared.OptionalString `json:"telefone"`
	Bio      shared.OptionalString `json:"bio"`
}

// Validate requires nome and email. Values are taken as sent, without
// trimming, so a blank-padded name still counts.
func (r *CreateAuthorRequest) Validate() error {
	if r.Nome.Invalid || r.Email.Invalid {
		return ErrMissingFields
	}
	err := validation.Errors{
		"nome":  validation.Validate(r.Nome.Value, validation.Required),
		"email": validation.Validate(r.Email.Value, validation.Required),
	}.Filter()
	if err != nil {
		return ErrMissingFields
	}
	return nil
}

// ToEntity builds the candidate row. Empty or null optionals become NULL.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Nome:     r.Nome.Value,
		Email:    r.Email.Value,
		Telefone: optionalColumn(r.Telefone),
		Bio:      optionalColumn(r.Bio),
	}
}

// UpdateAuthorRequest carries the PUT /autores/:id body. Every field is
// optional; merge semantics live in ApplyTo.
type UpdateAuthorRequest struct {
	Nome     shared.OptionalString `json:"nome"`
	Email    shared.OptionalString `json:"email"`
	Telefone shared.OptionalString `json:"telefone"`
	Bio      shared.OptionalString `json:"bio"`
}

// ApplyTo merges the request over the stored row: nome and email replace only
// when sent non-empty, telefone and bio replace whenever sent (null or empty
// clears). Absent fields keep their stored value.
func (r *UpdateAuthorRequest) ApplyTo(stored *Author) *Author {
	merged := *stored
	if usableString(r.Nome) {
		merged.Nome = r.Nome.Value
	}
	if usableString(r.Email) {
		merged.Email = r.Email.Value
	}
	if r.Telefone.Present && !r.Telefone.Invalid {
		merged.Telefone = optionalColumn(r.Telefone)
	}
	if r.Bio.Present && !r.Bio.Invalid {
		merged.Bio = optionalColumn(r.Bio)
	}
	return &merged
}

func usableString(o shared.OptionalString) bool {
	return o.Present && !o.Null && !o.Invalid && o.Value != ""
}

func optionalColumn(o shared.OptionalString) *string {
	if !o.Present || o.Null || o.Invalid || o.Value == "" {
		return nil
	}
	v := o.Value
	return &v
}
