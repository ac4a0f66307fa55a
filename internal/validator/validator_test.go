package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type shelfInput struct {
	Label    *string `json:"label" validate:"required,min=1"`
	Capacity int     `json:"capacity" validate:"gte=0"`
	Used     int     `json:"used,omitempty" validate:"ltefield=Capacity"`
}

func ptr(s string) *string { return &s }

func TestValidator_FirstErrorWins(t *testing.T) {
	v := New()
	v.Check(false, "name", "first")
	v.Check(false, "name", "second")
	v.Check(false, "year", "third")

	assert.False(t, v.Valid())
	assert.Equal(t, "first", v.Errors["name"])

	key, msg, ok := v.First()
	assert.True(t, ok)
	assert.Equal(t, "name", key)
	assert.Equal(t, "first", msg)
}

func TestValidator_Empty(t *testing.T) {
	v := New()
	v.Check(true, "name", "never recorded")

	assert.True(t, v.Valid())
	_, _, ok := v.First()
	assert.False(t, ok)
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name     string
		input    shelfInput
		wantKeys []string
		wantMsg  string
	}{
		{
			name:  "valid",
			input: shelfInput{Label: ptr("fiction"), Capacity: 10, Used: 3},
		},
		{
			name:     "missing label",
			input:    shelfInput{Capacity: 10},
			wantKeys: []string{"label"},
			wantMsg:  "label missing",
		},
		{
			name:     "empty label",
			input:    shelfInput{Label: ptr(""), Capacity: 10},
			wantKeys: []string{"label"},
			wantMsg:  "label missing",
		},
		{
			name:     "field order is kept",
			input:    shelfInput{Capacity: -1, Used: 5},
			wantKeys: []string{"label", "capacity", "used"},
			wantMsg:  "label missing",
		},
		{
			name:     "default message",
			input:    shelfInput{Label: ptr("fiction"), Capacity: -1, Used: -2},
			wantKeys: []string{"capacity"},
			wantMsg:  "must be greater than or equal to 0",
		},
		{
			name:     "cross field rule",
			input:    shelfInput{Label: ptr("fiction"), Capacity: 2, Used: 3},
			wantKeys: []string{"used"},
			wantMsg:  "must be less than or equal to Capacity",
		},
	}

	messages := map[string]string{
		"label.required": "label missing",
		"label.min":      "label missing",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Struct(tt.input, messages)

			if tt.wantKeys == nil {
				assert.True(t, v.Valid())
				return
			}

			assert.Equal(t, tt.wantKeys, v.keys)
			_, msg, _ := v.First()
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestIn(t *testing.T) {
	assert.True(t, In("info", "debug", "info"))
	assert.False(t, In("trace", "debug", "info"))
}
