package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutputMode(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputMode
		wantErr bool
	}{
		{in: "names", want: ModeNames},
		{in: "short", want: ModeShort},
		{in: "details", want: ModeDetails},
		{in: "dict", want: ModeDict},
		{in: "", want: ModeDetails},
		{in: "csv", wantErr: true},
		{in: "Short", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("mode "+tt.in, func(t *testing.T) {
			got, err := ParseOutputMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
