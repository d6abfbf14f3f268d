package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampMessageLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		want    int
		wantErr bool
	}{
		{name: "default", limit: 0, want: DefaultMessageLimit},
		{name: "within range", limit: 20, want: 20},
		{name: "at max", limit: MaxMessageLimit, want: MaxMessageLimit},
		{name: "above max", limit: 1000, want: MaxMessageLimit},
		{name: "negative", limit: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClampMessageLimit(tt.limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
