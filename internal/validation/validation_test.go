package validation

import (
	"strings"
	"testing"

	"catalog_service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validProductInput() *domain.ProductInput {
	return &domain.ProductInput{
		Name:            "Suco de Laranja",
		Price:           decPtr("12.34"),
		PreparationTime: intPtr(10),
		CategoryID:      3,
	}
}

func fieldNames(fields []FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateCategoryInput(t *testing.T) {
	tests := []struct {
		name      string
		input     *domain.CategoryInput
		badFields []string
	}{
		{
			name:  "valid",
			input: &domain.CategoryInput{Name: "Bebidas", Description: strPtr("d")},
		},
		{
			name:  "valid without description",
			input: &domain.CategoryInput{Name: "Bebidas"},
		},
		{
			name:      "empty name",
			input:     &domain.CategoryInput{Name: ""},
			badFields: []string{"name"},
		},
		{
			name:      "name too long",
			input:     &domain.CategoryInput{Name: strings.Repeat("a", 101)},
			badFields: []string{"name"},
		},
		{
			name:  "name at max length",
			input: &domain.CategoryInput{Name: strings.Repeat("a", 100)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ValidateCategoryInput(tt.input)
			if len(tt.badFields) == 0 {
				assert.Empty(t, fields)
				return
			}
			assert.ElementsMatch(t, tt.badFields, fieldNames(fields))
		})
	}
}

func TestValidateProductInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.ProductInput)
		badFields []string
	}{
		{
			name:   "valid",
			mutate: func(*domain.ProductInput) {},
		},
		{
			name:   "zero price",
			mutate: func(in *domain.ProductInput) { in.Price = decPtr("0") },
		},
		{
			name:   "integral price",
			mutate: func(in *domain.ProductInput) { in.Price = decPtr("12") },
		},
		{
			name:      "missing name",
			mutate:    func(in *domain.ProductInput) { in.Name = "" },
			badFields: []string{"name"},
		},
		{
			name:      "name too long",
			mutate:    func(in *domain.ProductInput) { in.Name = strings.Repeat("a", 151) },
			badFields: []string{"name"},
		},
		{
			name:      "missing price",
			mutate:    func(in *domain.ProductInput) { in.Price = nil },
			badFields: []string{"price"},
		},
		{
			name:      "negative price",
			mutate:    func(in *domain.ProductInput) { in.Price = decPtr("-0.01") },
			badFields: []string{"price"},
		},
		{
			name:      "price with 3 decimal places",
			mutate:    func(in *domain.ProductInput) { in.Price = decPtr("19.999") },
			badFields: []string{"price"},
		},
		{
			name:      "image_url too long",
			mutate:    func(in *domain.ProductInput) { in.ImageURL = strPtr(strings.Repeat("a", 501)) },
			badFields: []string{"image_url"},
		},
		{
			name:      "missing preparation_time",
			mutate:    func(in *domain.ProductInput) { in.PreparationTime = nil },
			badFields: []string{"preparation_time"},
		},
		{
			name:      "negative preparation_time",
			mutate:    func(in *domain.ProductInput) { in.PreparationTime = intPtr(-1) },
			badFields: []string{"preparation_time"},
		},
		{
			name:      "zero category_id",
			mutate:    func(in *domain.ProductInput) { in.CategoryID = 0 },
			badFields: []string{"category_id"},
		},
		{
			name:      "negative category_id",
			mutate:    func(in *domain.ProductInput) { in.CategoryID = -1 },
			badFields: []string{"category_id"},
		},
		{
			name: "multiple violations reported together",
			mutate: func(in *domain.ProductInput) {
				in.Name = ""
				in.Price = decPtr("19.999")
				in.CategoryID = 0
			},
			badFields: []string{"name", "price", "category_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProductInput()
			tt.mutate(input)

			fields := ValidateProductInput(input)
			if len(tt.badFields) == 0 {
				assert.Empty(t, fields)
				return
			}
			assert.ElementsMatch(t, tt.badFields, fieldNames(fields))
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	fields := ValidateProductInput(&domain.ProductInput{})
	require.NotEmpty(t, fields)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Error
	}
	assert.Equal(t, "is required", byField["name"])
	assert.Equal(t, "is required", byField["price"])
	assert.Equal(t, "is required", byField["preparation_time"])
	assert.Equal(t, "must be greater than 0", byField["category_id"])
}
