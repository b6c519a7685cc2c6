package author

import "catalogo-backend/internal/shared/apperr"

var (
	ErrNotFound        = apperr.NotFound("Autor não encontrado")
	ErrMissingFields   = apperr.Structural("Nome e email são obrigatórios")
	ErrEmailTaken      = apperr.Conflict("Já existe um autor com este email")
	ErrEmailTakenOther = apperr.Conflict("Já existe outro autor com este email")
	ErrHasBooks        = apperr.Conflict("Não é possível deletar autor que possui livros associados")
)
