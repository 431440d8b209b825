package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name        string `json:"name" validate:"required"`
	YoutubeLink string `json:"youtubeLink" validate:"required,youtube"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		in         payload
		wantFields []string
	}{
		{
			name: "valid",
			in:   payload{Name: "Falamansa - Xote dos Milagres", YoutubeLink: "https://www.youtube.com/watch?v=chwyjJbcs1Y"},
		},
		{
			name:       "empty name",
			in:         payload{YoutubeLink: "https://www.youtube.com/watch?v=chwyjJbcs1Y"},
			wantFields: []string{"name"},
		},
		{
			name:       "invalid link",
			in:         payload{Name: "name", YoutubeLink: "invalidurl"},
			wantFields: []string{"youtubeLink"},
		},
		{
			name:       "other host",
			in:         payload{Name: "name", YoutubeLink: "https://vimeo.com/1234"},
			wantFields: []string{"youtubeLink"},
		},
		{
			name:       "both",
			in:         payload{},
			wantFields: []string{"name", "youtubeLink"},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var verr *Error
			require.True(t, errors.As(err, &verr), tt.name)
			var got []string
			for _, f := range verr.Fields {
				got = append(got, f.Field)
				assert.NotEmpty(t, f.Message)
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}
