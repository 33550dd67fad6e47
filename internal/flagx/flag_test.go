package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	// the option flags the config package actually defines
	optionFlags := []string{"-a", "-s", "-t", "-l"}

	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "base URL kept, config file flag dropped",
			args:         []string{"-a", "http://backend:9000", "-c", "conf.json"},
			allowedFlags: optionFlags,
			want:         []string{"-a", "http://backend:9000"},
		},
		{
			name:         "equals form survives as one argument",
			args:         []string{"-config=conf.json", "-t", "10"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=conf.json"},
		},
		{
			name:         "all option flags kept in order",
			args:         []string{"-a", "http://backend:9000", "-s", "/tmp/state.db", "-t", "10", "-l", "debug"},
			allowedFlags: optionFlags,
			want:         []string{"-a", "http://backend:9000", "-s", "/tmp/state.db", "-t", "10", "-l", "debug"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--verbose", "upload", "-l", "warn"},
			allowedFlags: optionFlags,
			want:         []string{"-l", "warn"},
		},
		{
			name:         "go test flags filtered out",
			args:         []string{"-test.v", "-test.run", "TestFilterArgs", "-t", "10"},
			allowedFlags: optionFlags,
			want:         []string{"-t", "10"},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-s"},
			allowedFlags: optionFlags,
			want:         []string{"-s"},
		},
		{
			name:         "flag followed by another flag has no value",
			args:         []string{"-l", "-a", "http://backend:9000"},
			allowedFlags: optionFlags,
			want:         []string{"-l", "-a", "http://backend:9000"},
		},
		{
			name:         "value starting with a dash needs the equals form",
			args:         []string{"-config=--weird.json"},
			allowedFlags: []string{"-config"},
			want:         []string{"-config=--weird.json"},
		},
		{
			name:         "state path with spaces remains a single value",
			args:         []string{"-s", "/home/user/cvdesk state.db"},
			allowedFlags: optionFlags,
			want:         []string{"-s", "/home/user/cvdesk state.db"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-l", "info", "-l", "debug"},
			allowedFlags: optionFlags,
			want:         []string{"-l", "info", "-l", "debug"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: optionFlags,
			want:         []string{},
		},
		{
			name:         "nothing allowed drops everything",
			args:         []string{"-a", "http://backend:9000"},
			allowedFlags: []string{},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"cvdesk", "-c", "/etc/cvdesk/conf.json"}
		assert.Equal(t, "/etc/cvdesk/conf.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"cvdesk", "-config", "/etc/cvdesk/conf.json"}
		assert.Equal(t, "/etc/cvdesk/conf.json", JsonConfigFlags())
	})

	t.Run("option flags do not leak into the selector", func(t *testing.T) {
		os.Args = []string{"cvdesk", "-a", "http://backend:9000", "-l", "debug"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("both forms present, last one wins", func(t *testing.T) {
		os.Args = []string{"cvdesk", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}
