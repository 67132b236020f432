package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonNegativeAmount(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"zero is allowed", 0.0, false},
		{"positive amount", 245.50, false},
		{"one cent below zero", -0.01, true},
		{"negative amount", -10.0, true},
		{"not a number", "12.00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NonNegativeAmount("total_cost", tt.value)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestPositiveQuantity(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"zero rejected", 0.0, true},
		{"smallest positive quantity", 0.01, false},
		{"whole quantity", 4.0, false},
		{"negative rejected", -1.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PositiveQuantity("quantity", tt.value)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestConfidenceScore(t *testing.T) {
	hundred := 100.0
	tooHigh := 100.01

	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"nil is allowed", nil, false},
		{"nil pointer is allowed", (*float64)(nil), false},
		{"zero", 0.0, false},
		{"upper bound inclusive", &hundred, false},
		{"just above upper bound", &tooHigh, true},
		{"negative", -0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConfidenceScore("confidence_score", tt.value)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestPositiveInt(t *testing.T) {
	assert.Nil(t, PositiveInt("line_number", 1))
	assert.NotNil(t, PositiveInt("line_number", 0))
	assert.NotNil(t, PositiveInt("line_number", -3))
	assert.NotNil(t, PositiveInt("line_number", "1"))
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator()
	v.Field("total_cost", -0.01, NonNegativeAmount)
	v.Field("quantity", 0.0, PositiveQuantity)
	v.Field("invoice_number", "INV-1", Required)

	assert.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "total_cost")
	assert.Contains(t, v.ErrorMessage(), "quantity")
}
