package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCreateBody = `{
	"titulo": "Dom Casmurro",
	"resumo": "Romance de Machado de Assis",
	"ano": 1899,
	"paginas": 256,
	"isbn": "978-85-359-0277-5",
	"categoria_id": 1,
	"editora_id": 2,
	"autor_id": 3
}`

func decodeCreateBook(t *testing.T, body string) *CreateBookRequest {
	t.Helper()
	var req CreateBookRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func decodeUpdateBook(t *testing.T, body string) *UpdateBookRequest {
	t.Helper()
	var req UpdateBookRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestCreateBookValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"valid", validCreateBody, nil},
		{"missing titulo", `{"isbn": "x", "ano": 2000, "categoria_id": 1, "editora_id": 1, "autor_id": 1}`, ErrTituloMissing},
		{"blank titulo", `{"titulo": " ", "isbn": "x", "ano": 2000, "categoria_id": 1, "editora_id": 1, "autor_id": 1}`, ErrTituloMissing},
		{"missing isbn", `{"titulo": "T", "ano": 2000, "categoria_id": 1, "editora_id": 1, "autor_id": 1}`, ErrISBNMissing},
		{"missing ano", `{"titulo": "T", "isbn": "x", "categoria_id": 1, "editora_id": 1, "autor_id": 1}`, ErrAnoInvalid},
		{"ano zero", `{"titulo": "T", "isbn": "x", "ano": 0, "categoria_id": 1, "editora_id": 1, "autor_id": 1}`, ErrAnoInvalid},
		{"ano word", `{"titulo": "T", "isbn": "x", "ano": "mil", "categoria_id": 1, "editora_id": 1, "autor_id": 1}`, ErrAnoInvalid},
		{"missing categoria", `{"titulo": "T", "isbn": "x", "ano": 2000, "editora_id": 1, "autor_id": 1}`, ErrCategoriaID},
		{"categoria not numeric", `{"titulo": "T", "isbn": "x", "ano": 2000, "categoria_id": "abc", "editora_id": 1, "autor_id": 1}`, ErrCategoriaID},
		{"missing editora", `{"titulo": "T", "isbn": "x", "ano": 2000, "categoria_id": 1, "autor_id": 1}`, ErrEditoraID},
		{"missing autor", `{"titulo": "T", "isbn": "x", "ano": 2000, "categoria_id": 1, "editora_id": 1}`, ErrAutorID},
		{"paginas word", `{"titulo": "T", "isbn": "x", "ano": 2000, "paginas": "abc", "categoria_id": 1, "editora_id": 1, "autor_id": 1}`, ErrPaginasInvalid},
		{"resumo not a string", `{"titulo": "T", "isbn": "x", "ano": 2000, "resumo": 42, "categoria_id": 1, "editora_id": 1, "autor_id": 1}`, ErrResumoInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decodeCreateBook(t, tt.body).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// The first invalid field in declaration order decides the message, no matter
// how many others are also invalid.
func TestCreateBookValidateFirstFailureWins(t *testing.T) {
	err := decodeCreateBook(t, `{"ano": "x"}`).Validate()
	assert.ErrorIs(t, err, ErrTituloMissing)

	err = decodeCreateBook(t, `{"titulo": "T", "ano": "x"}`).Validate()
	assert.ErrorIs(t, err, ErrISBNMissing)

	err = decodeCreateBook(t, `{"titulo": "T", "isbn": "x"}`).Validate()
	assert.ErrorIs(t, err, ErrAnoInvalid)
}

func TestCreateBookCoercesNumericStrings(t *testing.T) {
	req := decodeCreateBook(t, `{
		"titulo": " Dom Casmurro ",
		"ano": "1899",
		"isbn": " 978-85-359-0277-5 ",
		"categoria_id": "1",
		"editora_id": "2",
		"autor_id": "3"
	}`)
	require.NoError(t, req.Validate())

	b := req.ToEntity()
	assert.Equal(t, "Dom Casmurro", b.Titulo)
	assert.Equal(t, 1899, b.Ano)
	assert.Equal(t, "978-85-359-0277-5", b.ISBN)
	assert.Equal(t, int64(1), b.CategoriaID)
	assert.Equal(t, int64(2), b.EditoraID)
	assert.Equal(t, int64(3), b.AutorID)
	assert.Nil(t, b.Resumo)
	assert.Nil(t, b.Paginas)
}

func TestCreateBookPaginasZeroBecomesNull(t *testing.T) {
	req := decodeCreateBook(t, `{
		"titulo": "T", "isbn": "x", "ano": 2000, "paginas": 0,
		"categoria_id": 1, "editora_id": 1, "autor_id": 1
	}`)
	require.NoError(t, req.Validate())
	assert.Nil(t, req.ToEntity().Paginas)
}

func TestUpdateBookValidateOnlySentFields(t *testing.T) {
	assert.NoError(t, decodeUpdateBook(t, `{}`).Validate())
	assert.NoError(t, decodeUpdateBook(t, `{"resumo": "Novo resumo"}`).Validate())

	assert.ErrorIs(t, decodeUpdateBook(t, `{"titulo": ""}`).Validate(), ErrTituloMissing)
	assert.ErrorIs(t, decodeUpdateBook(t, `{"isbn": "  "}`).Validate(), ErrISBNMissing)
	assert.ErrorIs(t, decodeUpdateBook(t, `{"ano": null}`).Validate(), ErrAnoInvalid)
	assert.ErrorIs(t, decodeUpdateBook(t, `{"categoria_id": "abc"}`).Validate(), ErrCategoriaID)
}

// Optional fields may be omitted or sent as null, but a malformed value is
// rejected instead of silently ignored.
func TestUpdateBookRejectsMalformedOptionalFields(t *testing.T) {
	assert.NoError(t, decodeUpdateBook(t, `{"paginas": null}`).Validate())
	assert.NoError(t, decodeUpdateBook(t, `{"paginas": "128"}`).Validate())

	assert.ErrorIs(t, decodeUpdateBook(t, `{"paginas": "abc"}`).Validate(), ErrPaginasInvalid)
	assert.ErrorIs(t, decodeUpdateBook(t, `{"resumo": 42}`).Validate(), ErrResumoInvalid)
	assert.ErrorIs(t, decodeUpdateBook(t, `{"resumo": {"texto": "x"}}`).Validate(), ErrResumoInvalid)
}

func TestUpdateBookApplyTo(t *testing.T) {
	resumo := "Resumo antigo"
	paginas := 300
	stored := &Book{
		ID:          7,
		Titulo:      "Memórias Póstumas",
		Resumo:      &resumo,
		Ano:         1881,
		Paginas:     &paginas,
		ISBN:        "978-85-0000-000-1",
		CategoriaID: 1,
		EditoraID:   2,
		AutorID:     3,
	}

	t.Run("absent fields keep stored values", func(t *testing.T) {
		merged := decodeUpdateBook(t, `{"titulo": " Novo Título "}`).ApplyTo(stored)
		assert.Equal(t, "Novo Título", merged.Titulo)
		assert.Equal(t, 1881, merged.Ano)
		assert.Equal(t, "978-85-0000-000-1", merged.ISBN)
		assert.Equal(t, &resumo, merged.Resumo)
		assert.Equal(t, int64(1), merged.CategoriaID)
	})

	t.Run("null resumo and paginas clear", func(t *testing.T) {
		merged := decodeUpdateBook(t, `{"resumo": null, "paginas": null}`).ApplyTo(stored)
		assert.Nil(t, merged.Resumo)
		assert.Nil(t, merged.Paginas)
	})

	t.Run("sent references replace", func(t *testing.T) {
		merged := decodeUpdateBook(t, `{"categoria_id": 9, "autor_id": "8"}`).ApplyTo(stored)
		assert.Equal(t, int64(9), merged.CategoriaID)
		assert.Equal(t, int64(8), merged.AutorID)
		assert.Equal(t, int64(2), merged.EditoraID)
	})

	t.Run("stored row is not mutated", func(t *testing.T) {
		_ = decodeUpdateBook(t, `{"titulo": "Outro", "resumo": null}`).ApplyTo(stored)
		assert.Equal(t, "Memórias Póstumas", stored.Titulo)
		assert.Equal(t, &resumo, stored.Resumo)
	})
}
