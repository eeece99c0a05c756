package flagx

import (
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
			args:  []string{"-a", "http://api:8080", "-x", "1"},
			owned: []string{"-a"},
			want:  []string{"-a", "http://api:8080"},
		},
		{
			name:  "equals form",
			args:  []string{"--config=alt.json", "-a", "http://api"},
			owned: []string{"-c", "--config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "unknown flags and positionals dropped",
			args:  []string{"-x", "1", "--y=2", "positional"},
			owned: []string{"-c"},
			want:  []string{},
		},
		{
			name:  "flag at end without value",
			args:  []string{"-v"},
			owned: []string{"-v"},
			want:  []string{"-v"},
		},
		{
			name:  "next flag is not taken as value",
			args:  []string{"-l", "-v", "debug"},
			owned: []string{"-l", "-v"},
			want:  []string{"-l", "-v", "debug"},
		},
		{
			name:  "equals value may start with dash",
			args:  []string{"-a=-odd"},
			owned: []string{"-a"},
			want:  []string{"-a=-odd"},
		},
		{
			name:  "repeated flags keep order",
			args:  []string{"-c", "one.json", "-c", "two.json"},
			owned: []string{"-c"},
			want:  []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:  "empty",
			args:  []string{},
			owned: []string{"-c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.owned))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/mobiehub.json", ConfigPath([]string{"-c", "/etc/mobiehub.json"}))
	assert.Equal(t, "/tmp/long.json", ConfigPath([]string{"-a", "http://x", "-config", "/tmp/long.json"}))
	assert.Equal(t, "eq.json", ConfigPath([]string{"--config=eq.json"}))
	assert.Equal(t, "/2.json", ConfigPath([]string{"-c", "/1.json", "-config", "/2.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1"}))
	assert.Empty(t, ConfigPath(nil))
}
