package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/prompt"
)

func TestTerminal_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "long no", input: "No\n", def: true, want: false},
		{name: "empty selects default", input: "\n", def: true, want: true},
		{name: "eof after default", input: "", def: false, want: false},
		{name: "repeats until recognized", input: "maybe\nyes\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := prompt.NewWithIO(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Override the locks?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Override the locks?")
		})
	}
}

func TestTerminal_Confirm_Hint(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewWithIO(strings.NewReader("\n\n"), &out)

	_, err := p.Confirm("a?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Y/n]")

	_, err = p.Confirm("b?", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[y/N]")
}

func TestTerminal_Confirm_Unrecognized(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewWithIO(strings.NewReader("maybe"), &out)

	_, err := p.Confirm("Proceed?", true)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Please answer yes or no.")
}

func TestTerminal_AssumeYes(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewWithIO(strings.NewReader("n\n"), &out)
	p.SetAssumeYes(true)

	got, err := p.Confirm("Load archive?", false)
	require.NoError(t, err)
	assert.True(t, got)
}
