package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalogo-backend/internal/shared"
)

// CreateBookRequest carries the POST /livros body. Numeric fields accept JSON
// numbers or numeric strings; the optional wrappers track which they were.
type CreateBookRequest struct {
	Titulo      shared.OptionalString `json:"titulo"`
	Resumo      shared.OptionalString `json:"resumo"`
	Ano         shared.OptionalInt    `json:"ano"`
	Paginas     shared.OptionalInt    `json:"paginas"`
	ISBN        shared.OptionalString `json:"isbn"`
	CategoriaID shared.OptionalInt    `json:"categoria_id"`
	EditoraID   shared.OptionalInt    `json:"editora_id"`
	AutorID     shared.OptionalInt    `json:"autor_id"`
}

// Validate checks fields in a fixed order and reports only the first failure:
// titulo, isbn, ano, categoria_id, editora_id, autor_id, then the optional
// resumo and paginas, which may be absent or null but not malformed.
func (r *CreateBookRequest) Validate() error {
	if err := requiredString(r.Titulo, ErrTituloMissing); err != nil {
		return err
	}
	if err := requiredString(r.ISBN, ErrISBNMissing); err != nil {
		return err
	}
	if err := requiredNumber(r.Ano, ErrAnoInvalid); err != nil {
		return err
	}
	if err := requiredNumber(r.CategoriaID, ErrCategoriaID); err != nil {
		return err
	}
	if err := requiredNumber(r.EditoraID, ErrEditoraID); err != nil {
		return err
	}
	if err := requiredNumber(r.AutorID, ErrAutorID); err != nil {
		return err
	}
	return wellFormedOptionals(r.Resumo, r.Paginas)
}

// ToEntity builds the candidate row. Titulo and isbn are trimmed; resumo is
// trimmed or NULL when blank; paginas zero or absent becomes NULL.
func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Titulo:      r.Titulo.Trimmed(),
		Resumo:      optionalText(r.Resumo),
		Ano:         r.Ano.Value,
		Paginas:     optionalCount(r.Paginas),
		ISBN:        r.ISBN.Trimmed(),
		CategoriaID: int64(r.CategoriaID.Value),
		EditoraID:   int64(r.EditoraID.Value),
		AutorID:     int64(r.AutorID.Value),
	}
}

// UpdateBookRequest carries the PUT /livros/:id body. Every field is optional
// and validated only when sent.
type UpdateBookRequest struct {
	Titulo      shared.OptionalString `json:"titulo"`
	Resumo      shared.OptionalString `json:"resumo"`
	Ano         shared.OptionalInt    `json:"ano"`
	Paginas     shared.OptionalInt    `json:"paginas"`
	ISBN        shared.OptionalString `json:"isbn"`
	CategoriaID shared.OptionalInt    `json:"categoria_id"`
	EditoraID   shared.OptionalInt    `json:"editora_id"`
	AutorID     shared.OptionalInt    `json:"autor_id"`
}

// Validate applies the create rules to the fields that were sent, in the same
// order, first failure first.
func (r *UpdateBookRequest) Validate() error {
	if r.Titulo.Present {
		if err := requiredString(r.Titulo, ErrTituloMissing); err != nil {
			return err
		}
	}
	if r.ISBN.Present {
		if err := requiredString(r.ISBN, ErrISBNMissing); err != nil {
			return err
		}
	}
	if r.Ano.Present {
		if err := requiredNumber(r.Ano, ErrAnoInvalid); err != nil {
			return err
		}
	}
	if r.CategoriaID.Present {
		if err := requiredNumber(r.CategoriaID, ErrCategoriaID); err != nil {
			return err
		}
	}
	if r.EditoraID.Present {
		if err := requiredNumber(r.EditoraID, ErrEditoraID); err != nil {
			return err
		}
	}
	if r.AutorID.Present {
		if err := requiredNumber(r.AutorID, ErrAutorID); err != nil {
			return err
		}
	}
	return wellFormedOptionals(r.Resumo, r.Paginas)
}

// ApplyTo merges the request over the stored row. Sent scalars replace
// (trimmed); resumo and paginas clear when sent null or blank; absent fields
// keep their stored value.
func (r *UpdateBookRequest) ApplyTo(stored *Book) *Book {
	merged := *stored
	if r.Titulo.Present {
		merged.Titulo = r.Titulo.Trimmed()
	}
	if r.Resumo.Present {
		merged.Resumo = optionalText(r.Resumo)
	}
	if r.Ano.Present {
		merged.Ano = r.Ano.Value
	}
	if r.Paginas.Present {
		merged.Paginas = optionalCount(r.Paginas)
	}
	if r.ISBN.Present {
		merged.ISBN = r.ISBN.Trimmed()
	}
	if r.CategoriaID.Present {
		merged.CategoriaID = int64(r.CategoriaID.Value)
	}
	if r.EditoraID.Present {
		merged.EditoraID = int64(r.EditoraID.Value)
	}
	if r.AutorID.Present {
		merged.AutorID = int64(r.AutorID.Value)
	}
	return &merged
}

func requiredString(o shared.OptionalString, reject error) error {
	if o.Invalid {
		return reject
	}
	if err := validation.Validate(o.Trimmed(), validation.Required); err != nil {
		return reject
	}
	return nil
}

// requiredNumber rejects absent, null, non-numeric and zero values.
func requiredNumber(o shared.OptionalInt, reject error) error {
	if !o.Usable() || o.Value == 0 {
		return reject
	}
	return nil
}

// wellFormedOptionals rejects resumo sent as a non-string and paginas sent as
// something that does not parse as a whole number.
func wellFormedOptionals(resumo shared.OptionalString, paginas shared.OptionalInt) error {
	if resumo.Invalid {
		return ErrResumoInvalid
	}
	if paginas.Invalid {
		return ErrPaginasInvalid
	}
	return nil
}

func optionalText(o shared.OptionalString) *string {
	v := o.Trimmed()
	if !o.Present || o.Null || o.Invalid || v == "" {
		return nil
	}
	return &v
}

func optionalCount(o shared.OptionalInt) *int {
	if !o.Usable() || o.Value == 0 {
		return nil
	}
	v := o.Value
	return &v
}
