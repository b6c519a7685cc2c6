package publisher

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePublisherValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"valid", `{"nome": "Companhia das Letras"}`, nil},
		{"missing", `{}`, ErrNameRequired},
		{"blank", `{"nome": "  "}`, ErrNameRequired},
		{"null", `{"nome": null}`, ErrNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreatePublisherRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCreatePublisherToEntity(t *testing.T) {
	var req CreatePublisherRequest
	body := `{"nome": " Record ", "endereco": "  Rua X, 100  ", "telefone": ""}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	p := req.ToEntity()
	assert.Equal(t, "Record", p.Nome)
	require.NotNil(t, p.Endereco)
	assert.Equal(t, "Rua X, 100", *p.Endereco)
	assert.Nil(t, p.Telefone, "blank telefone is stored as NULL")
}

func TestUpdatePublisherApplyTo(t *testing.T) {
	endereco := "Av. Central, 50"
	telefone := "21 3333-4444"
	stored := &Publisher{ID: 4, Nome: "Rocco", Endereco: &endereco, Telefone: &telefone}

	t.Run("absent optionals keep stored values", func(t *testing.T) {
		var req UpdatePublisherRequest
		require.NoError(t, json.Unmarshal([]byte(`{"nome": "Rocco Editora"}`), &req))
		merged := req.ApplyTo(stored)
		assert.Equal(t, "Rocco Editora", merged.Nome)
		assert.Equal(t, &endereco, merged.Endereco)
		assert.Equal(t, &telefone, merged.Telefone)
	})

	t.Run("null endereco clears", func(t *testing.T) {
		var req UpdatePublisherRequest
		require.NoError(t, json.Unmarshal([]byte(`{"nome": "Rocco", "endereco": null}`), &req))
		merged := req.ApplyTo(stored)
		assert.Nil(t, merged.Endereco)
		assert.Equal(t, &telefone, merged.Telefone)
	})

	t.Run("blank telefone clears", func(t *testing.T) {
		var req UpdatePublisherRequest
		require.NoError(t, json.Unmarshal([]byte(`{"nome": "Rocco", "telefone": "   "}`), &req))
		merged := req.ApplyTo(stored)
		assert.Nil(t, merged.Telefone)
	})
}
