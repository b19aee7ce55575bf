package main

import (
	"testing"
)

func TestParsePort(t *testing.T) {
	valid := map[string]int{
		"1":     1,
		"4444":  4444,
		"65535": 65535,
	}

	for arg, want := range valid {
		got, err := parsePort(arg)
		if err != nil {
			t.Errorf("parsePort(%q): %v", arg, err)
		} else if got != want {
			t.Errorf("parsePort(%q) = %d, want %d", arg, got, want)
		}
	}

	for _, arg := range []string{"0", "-1", "65536", "http", ""} {
		if _, err := parsePort(arg); err == nil {
			t.Errorf("parsePort(%q) should fail", arg)
		}
	}
}

func TestParsePlayers(t *testing.T) {
	valid := map[string]int{
		"1": 1,
		"2": 2,
		"9": 9,
	}

	for arg, want := range valid {
		got, err := parsePlayers(arg)
		if err != nil {
			t.Errorf("parsePlayers(%q): %v", arg, err)
		} else if got != want {
			t.Errorf("parsePlayers(%q) = %d, want %d", arg, got, want)
		}
	}

	for _, arg := range []string{"0", "-2", "two", ""} {
		if _, err := parsePlayers(arg); err == nil {
			t.Errorf("parsePlayers(%q) should fail", arg)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"tls pair", Config{tlsCert: "cert.pem", tlsKey: "key.pem"}, false},
		{"cert without key", Config{tlsCert: "cert.pem"}, true},
		{"key without cert", Config{tlsKey: "key.pem"}, true},
		{"web port in range", Config{webPort: 8080}, false},
		{"web port too high", Config{webPort: 65536}, true},
		{"web port negative", Config{webPort: -1}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.validate()
			if (err != nil) != c.wantErr {
				t.Errorf("validate() = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestNewCmdSubcommands(t *testing.T) {
	cmd := newCmd(&Config{})

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"serve", "host", "join", "chat"} {
		if !names[want] {
			t.Errorf("missing %q subcommand", want)
		}
	}
}
