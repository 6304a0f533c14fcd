package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefines(t *testing.T) {
	d := NewDefines("a", "1", "b", "2", "dangling")

	assert.Equal(t, Defines{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, d)
}

func TestDefinesFromMap_SortedByKey(t *testing.T) {
	d := DefinesFromMap(map[string]string{"zeta": "z", "alpha": "a", "mid": "m"})

	assert.Equal(t, []string{"alpha=a", "mid=m", "zeta=z"}, d.Strings())
}

func TestDefines_SetKeepsPosition(t *testing.T) {
	d := NewDefines("a", "1", "b", "2")

	updated := d.Set("a", "3")

	assert.Equal(t, []string{"a=3", "b=2"}, updated.Strings())
	// The receiver is left untouched.
	assert.Equal(t, []string{"a=1", "b=2"}, d.Strings())
}

func TestDefines_Merge(t *testing.T) {
	base := NewDefines("skipTests", "true", "env", "dev")
	override := NewDefines("env", "ci", "extra", "yes")

	merged := base.Merge(override)

	assert.Equal(t, []string{"skipTests=true", "env=ci", "extra=yes"}, merged.Strings())
}

func TestDefines_Get(t *testing.T) {
	d := NewDefines("a", "1")

	v, ok := d.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = d.Get("missing")
	assert.False(t, ok)
}

func TestParseDefine(t *testing.T) {
	tests := []struct {
		input   string
		want    Define
		wantErr bool
	}{
		{"skipTests=true", Define{Key: "skipTests", Value: "true"}, false},
		{"argLine=-Da=b", Define{Key: "argLine", Value: "-Da=b"}, false},
		{"empty=", Define{Key: "empty", Value: ""}, false},
		{"skipTests", Define{Key: "skipTests", Value: "true"}, false},
		{"=value", Define{}, true},
		{"", Define{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDefine(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDefine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDefines(t *testing.T) {
	d, err := ParseDefines([]string{"b=2", "a=1", "b=3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b=3", "a=1"}, d.Strings())

	_, err = ParseDefines([]string{"ok=1", "=bad"})
	assert.ErrorIs(t, err, ErrInvalidDefine)
}
