package book

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		raw  string
		want *bool
	}{
		{raw: "", want: nil},
		{raw: "   ", want: nil},
		{raw: "1", want: ptr(true)},
		{raw: "0", want: ptr(false)},
		{raw: "2", want: ptr(true)},
		{raw: "-1", want: ptr(true)},
		{raw: "0.0", want: ptr(false)},
		{raw: "true", want: ptr(false)},
		{raw: "abc", want: ptr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseFlag(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestFilterFromQuery(t *testing.T) {
	f := FilterFromQuery(url.Values{"name": {"dicoding"}, "reading": {"1"}})

	assert.Equal(t, "dicoding", f.Name)
	require.NotNil(t, f.Reading)
	assert.True(t, *f.Reading)
	assert.Nil(t, f.Finished)
}

func ptr(v bool) *bool { return &v }
