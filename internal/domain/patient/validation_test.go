package patient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIntake(t *testing.T) {
	ok := Intake{Name: "Jane Doe", Email: "jane@example.com", Phone: "+1 555 123 4567"}
	require.NoError(t, ValidateIntake(ok))

	tests := []struct {
		name string
		in   Intake
		want string
	}{
		{"short name", Intake{Name: " J ", Email: "bad", Phone: ""}, "Name is required (min 2 chars)"},
		{"bad email", Intake{Name: "Jo", Email: "jane@example", Phone: ""}, "Enter a valid email"},
		{"few digits", Intake{Name: "Jo", Email: "jo@example.com", Phone: "555-12-3"}, "Enter a valid phone (min 7 digits)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIntake(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestNormalize(t *testing.T) {
	in := Intake{Name: "  Jane  ", Email: "jane@example.com", Phone: " 555 "}.Normalize()
	assert.Equal(t, "Jane", in.Name)
	assert.Equal(t, " 555 ", in.Phone)
}
