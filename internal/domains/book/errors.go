package book

import "catalogo-backend/internal/shared/apperr"

var (
	ErrNotFound       = apperr.NotFound("Livro não encontrado")
	ErrTituloMissing  = apperr.Structural("Título do livro é obrigatório")
	ErrISBNMissing    = apperr.Structural("ISBN do livro é obrigatório")
	ErrAnoInvalid     = apperr.Structural("Ano deve ser um número válido")
	ErrCategoriaID    = apperr.Structural("ID da categoria é obrigatório e deve ser um número")
	ErrEditoraID      = apperr.Structural("ID da editora é obrigatório e deve ser um número")
	ErrAutorID        = apperr.Structural("ID do autor é obrigatório e deve ser um número")
	ErrResumoInvalid  = apperr.Structural("Resumo deve ser um texto")
	ErrPaginasInvalid = apperr.Structural("Número de páginas deve ser um número válido")
	ErrISBNTaken      = apperr.Conflict("Já existe um livro com este ISBN")
	ErrISBNTakenOther = apperr.Conflict("Já existe outro livro com este ISBN")

	// Referential rejections reuse the parents' wording but are 400s, since
	// the missing row is the payload's fault, not the URL's.
	ErrCategoriaMissing = apperr.Referential("Categoria não encontrada")
	ErrEditoraMissing   = apperr.Referential("Editora não encontrada")
	ErrAutorMissing     = apperr.Referential("Autor não encontrado")
)
