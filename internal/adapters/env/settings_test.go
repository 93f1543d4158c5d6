package env

import "testing"

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Settings
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: Settings{Host: DefaultHost, Port: DefaultPort, Dev: true},
		},
		{
			name: "overrides",
			env: map[string]string{
				"MULTIPAGE_HOST":    "0.0.0.0",
				"MULTIPAGE_PORT":    "8080",
				"MULTIPAGE_DEV":     "0",
				"MULTIPAGE_VERBOSE": "1",
			},
			want: Settings{Host: "0.0.0.0", Port: 8080, Dev: false, Verbose: true},
		},
		{
			name: "invalid port ignored",
			env:  map[string]string{"MULTIPAGE_PORT": "abc"},
			want: Settings{Host: DefaultHost, Port: DefaultPort, Dev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"MULTIPAGE_HOST", "MULTIPAGE_PORT", "MULTIPAGE_DEV", "MULTIPAGE_VERBOSE"} {
				t.Setenv(key, tt.env[key])
			}
			if got := FromEnv(); got != tt.want {
				t.Errorf("FromEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettingsAddress(t *testing.T) {
	s := Settings{Host: "localhost", Port: 5173}
	if got := s.Address(); got != "localhost:5173" {
		t.Errorf("Address() = %q", got)
	}
}
