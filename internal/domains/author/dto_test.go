package author

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCreate(t *testing.T, body string) *CreateAuthorRequest {
	t.Helper()
	var req CreateAuthorRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func decodeUpdate(t *testing.T, body string) *UpdateAuthorRequest {
	t.Helper()
	var req UpdateAuthorRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestCreateAuthorValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"both present", `{"nome": "Machado de Assis", "email": "machado@exemplo.com"}`, nil},
		{"missing nome", `{"email": "machado@exemplo.com"}`, ErrMissingFields},
		{"missing email", `{"nome": "Machado de Assis"}`, ErrMissingFields},
		{"empty nome", `{"nome": "", "email": "machado@exemplo.com"}`, ErrMissingFields},
		{"null email", `{"nome": "Machado", "email": null}`, ErrMissingFields},
		{"numeric nome", `{"nome": 7, "email": "machado@exemplo.com"}`, ErrMissingFields},
		{"blank-padded nome passes", `{"nome": "  ", "email": "machado@exemplo.com"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decodeCreate(t, tt.body).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCreateAuthorToEntity(t *testing.T) {
	req := decodeCreate(t, `{"nome": "Clarice", "email": "clarice@exemplo.com", "telefone": "", "bio": "Romancista"}`)
	a := req.ToEntity()

	assert.Equal(t, "Clarice", a.Nome)
	assert.Equal(t, "clarice@exemplo.com", a.Email)
	assert.Nil(t, a.Telefone, "empty telefone is stored as NULL")
	require.NotNil(t, a.Bio)
	assert.Equal(t, "Romancista", *a.Bio)
}

func TestUpdateAuthorApplyTo(t *testing.T) {
	tel := "11 91234-5678"
	bio := "Contista"
	stored := &Author{
		ID:       3,
		Nome:     "Lygia",
		Email:    "lygia@exemplo.com",
		Telefone: &tel,
		Bio:      &bio,
	}

	t.Run("absent fields keep stored values", func(t *testing.T) {
		merged := decodeUpdate(t, `{"nome": "Lygia Fagundes Telles"}`).ApplyTo(stored)
		assert.Equal(t, "Lygia Fagundes Telles", merged.Nome)
		assert.Equal(t, "lygia@exemplo.com", merged.Email)
		assert.Equal(t, &tel, merged.Telefone)
		assert.Equal(t, &bio, merged.Bio)
	})

	t.Run("empty nome keeps stored value", func(t *testing.T) {
		merged := decodeUpdate(t, `{"nome": "", "email": ""}`).ApplyTo(stored)
		assert.Equal(t, "Lygia", merged.Nome)
		assert.Equal(t, "lygia@exemplo.com", merged.Email)
	})

	t.Run("null telefone clears", func(t *testing.T) {
		merged := decodeUpdate(t, `{"telefone": null}`).ApplyTo(stored)
		assert.Nil(t, merged.Telefone)
		assert.Equal(t, &bio, merged.Bio)
	})

	t.Run("sent values replace", func(t *testing.T) {
		merged := decodeUpdate(t, `{"email": "novo@exemplo.com", "bio": "Nova bio"}`).ApplyTo(stored)
		assert.Equal(t, "novo@exemplo.com", merged.Email)
		require.NotNil(t, merged.Bio)
		assert.Equal(t, "Nova bio", *merged.Bio)
	})

	t.Run("stored row is not mutated", func(t *testing.T) {
		_ = decodeUpdate(t, `{"nome": "Outra", "telefone": null}`).ApplyTo(stored)
		assert.Equal(t, "Lygia", stored.Nome)
		assert.Equal(t, &tel, stored.Telefone)
	})
}
