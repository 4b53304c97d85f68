package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductJSONShape(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	product := Product{
		ID:              1,
		Name:            "Suco de Laranja",
		Price:           decimal.New(1234, -2),
		PreparationTime: 10,
		CategoryID:      3,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	raw, err := json.Marshal(product)
	require.NoError(t, err)

	body := string(raw)
	// Price is an unquoted fixed-point number; optional fields are null.
	assert.Contains(t, body, `"price":12.34`)
	assert.Contains(t, body, `"description":null`)
	assert.Contains(t, body, `"image_url":null`)
	assert.Contains(t, body, `"category_id":3`)
}

func TestProductInputPriceDecoding(t *testing.T) {
	var input ProductInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"X","price":12.34,"preparation_time":10,"category_id":3}`), &input))

	require.NotNil(t, input.Price)
	assert.True(t, input.Price.Equal(decimal.RequireFromString("12.34")))
	require.NotNil(t, input.PreparationTime)
	assert.Equal(t, 10, *input.PreparationTime)
}
