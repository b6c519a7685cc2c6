package category

import "catalogo-backend/internal/shared/apperr"

var (
	ErrNotFound       = apperr.NotFound("Categoria não encontrada")
	ErrNameRequired   = apperr.Structural("Nome da categoria é obrigatório")
	ErrNameTaken      = apperr.Conflict("Já existe uma categoria com este nome")
	ErrNameTakenOther = apperr.Conflict("Já existe outra categoria com este nome")
	ErrHasBooks       = apperr.Conflict("Não é possível deletar categoria que possui livros associados")
)
