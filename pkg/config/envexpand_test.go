package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("SLEUTH_TEST_DSN", "postgres://localhost:5432/warehouse")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "expands template variable",
			input: "dsn: {{.SLEUTH_TEST_DSN}}",
			want:  "dsn: postgres://localhost:5432/warehouse",
		},
		{
			name:  "missing variable expands to empty",
			input: "key: {{.SLEUTH_TEST_DOES_NOT_EXIST}}",
			want:  "key: ",
		},
		{
			name:  "dollar signs pass through untouched",
			input: `pattern: "^secret.*$"`,
			want:  `pattern: "^secret.*$"`,
		},
		{
			name:  "malformed template returns input unchanged",
			input: "key: {{.UNCLOSED",
			want:  "key: {{.UNCLOSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
