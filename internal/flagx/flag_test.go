package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		owned []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-w", "8", "-a", "localhost:1"},
			owned: []string{"-w"},
			want:  []string{"-w", "8"},
		},
		{
			name:  "equals form",
			args:  []string{"-config=audit.json", "-w", "8"},
			owned: []string{"-config"},
			want:  []string{"-config=audit.json"},
		},
		{
			name:  "flag without value followed by another flag",
			args:  []string{"-v", "-w", "4"},
			owned: []string{"-v", "-w"},
			want:  []string{"-v", "-w", "4"},
		},
		{
			name:  "nothing owned",
			args:  []string{"-x", "1"},
			owned: []string{"-w"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.owned))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"server", "-w", "4", "-c", "audit.json"}
	assert.Equal(t, "audit.json", ConfigFileFlag())

	os.Args = []string{"server", "-config=other.json"}
	assert.Equal(t, "other.json", ConfigFileFlag())

	os.Args = []string{"server"}
	assert.Equal(t, "", ConfigFileFlag())
}
