package publisher

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalogo-backend/internal/shared"
)

// CreatePublisherRequest carries the POST /editoras body.
type CreatePublisherRequest struct {
	Nome     shared.OptionalString `json:"nome"`
	Endereco shared.OptionalString `json:"endereco"`
	Telefone shared.OptionalString `json:"telefone"`
}

// Validate requires a non-blank nome after trimming.
func (r *CreatePublisherRequest) Validate() error {
	if r.Nome.Invalid {
		return ErrNameRequired
	}
	if err := validation.Validate(r.Nome.Trimmed(), validation.Required); err != nil {
		return ErrNameRequired
	}
	return nil
}

// ToEntity builds the candidate row. Nome is trimmed; endereco and telefone
// are trimmed or stored as NULL when blank.
func (r *CreatePublisherRequest) ToEntity() *Publisher {
	return &Publisher{
		Nome:     r.Nome.Trimmed(),
		Endereco: trimmedColumn(r.Endereco),
		Telefone: trimmedColumn(r.Telefone),
	}
}

// UpdatePublisherRequest carries the PUT /editoras/:id body. Nome is required
// on every update; endereco and telefone are optional.
type UpdatePublisherRequest struct {
	Nome     shared.OptionalString `json:"nome"`
	Endereco shared.OptionalString `json:"endereco"`
	Telefone shared.OptionalString `json:"telefone"`
}

func (r *UpdatePublisherRequest) Validate() error {
	if r.Nome.Invalid {
		return ErrNameRequired
	}
	if err := validation.Validate(r.Nome.Trimmed(), validation.Required); err != nil {
		return ErrNameRequired
	}
	return nil
}

// ApplyTo merges the request over the stored row. Nome always replaces;
// endereco and telefone replace when sent (null or blank clears) and are kept
// when absent.
func (r *UpdatePublisherRequest) ApplyTo(stored *Publisher) *Publisher {
	merged := *stored
	merged.Nome = r.Nome.Trimmed()
	if r.Endereco.Present && !r.Endereco.Invalid {
		merged.Endereco = trimmedColumn(r.Endereco)
	}
	if r.Telefone.Present && !r.Telefone.Invalid {
		merged.Telefone = trimmedColumn(r.Telefone)
	}
	return &merged
}

func trimmedColumn(o shared.OptionalString) *string {
	v := o.Trimmed()
	if !o.Present || o.Null || o.Invalid || v == "" {
		return nil
	}
	return &v
}
