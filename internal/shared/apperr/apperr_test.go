package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"structural", Structural("campo faltando"), http.StatusBadRequest},
		{"referential", Referential("Categoria não encontrada"), http.StatusBadRequest},
		{"not found", NotFound("Autor não encontrado"), http.StatusNotFound},
		{"conflict", Conflict("Já existe"), http.StatusConflict},
		{"internal", Internal(errors.New("connection refused")), http.StatusInternalServerError},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "Já existe", MessageOf(Conflict("Já existe")))
	assert.Equal(t, InternalMessage, MessageOf(Internal(errors.New("boom"))))
	assert.Equal(t, InternalMessage, MessageOf(errors.New("boom")))
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(nil))

	typed := NotFound("Livro não encontrado")
	assert.Same(t, error(typed), Normalize(typed))

	wrapped := fmt.Errorf("pipeline: %w", typed)
	assert.Equal(t, KindNotFound, KindOf(Normalize(wrapped)))

	raw := errors.New("dial tcp: refused")
	normalized := Normalize(raw)
	assert.Equal(t, KindInternal, KindOf(normalized))
	assert.ErrorIs(t, normalized, raw)
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("scan failed")
	err := Internal(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, InternalMessage, err.Message)
	assert.Contains(t, err.Error(), "scan failed")
}
