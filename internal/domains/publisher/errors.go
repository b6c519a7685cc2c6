package publisher

import "catalogo-backend/internal/shared/apperr"

var (
	ErrNotFound       = apperr.NotFound("Editora não encontrada")
	ErrNameRequired   = apperr.Structural("Nome da editora é obrigatório")
	ErrNameTaken      = apperr.Conflict("Já existe uma editora com este nome")
	ErrNameTakenOther = apperr.Conflict("Já existe outra editora com este nome")
	ErrHasBooks       = apperr.Conflict("Não é possível deletar editora que possui livros associados")
)
