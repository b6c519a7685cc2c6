package category

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"valid", `{"nome": "Romance"}`, nil},
		{"missing", `{}`, ErrNameRequired},
		{"empty", `{"nome": ""}`, ErrNameRequired},
		{"blank", `{"nome": "   "}`, ErrNameRequired},
		{"null", `{"nome": null}`, ErrNameRequired},
		{"wrong type", `{"nome": 12}`, ErrNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateCategoryRequest
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

func TestCreateCategoryToEntityTrims(t *testing.T) {
	var req CreateCategoryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"nome": "  Ficção Científica  "}`), &req))
	assert.Equal(t, "Ficção Científica", req.ToEntity().Nome)
}

func TestUpdateCategoryApplyTo(t *testing.T) {
	stored := &Category{ID: 2, Nome: "Poesia"}

	var req UpdateCategoryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"nome": " Poesia Moderna "}`), &req))
	require.NoError(t, req.Validate())

	merged := req.ApplyTo(stored)
	assert.Equal(t, "Poesia Moderna", merged.Nome)
	assert.Equal(t, int64(2), merged.ID)
	assert.Equal(t, "Poesia", stored.Nome)
}

func TestUpdateCategoryRequiresName(t *testing.T) {
	var req UpdateCategoryRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.ErrorIs(t, req.Validate(), ErrNameRequired)
}
