package main

import (
	"testing"
)

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"add":      false,
		"get":      false,
		"delete":   false,
		"names":    false,
		"digests":  false,
		"versions": false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"url", "ca-cert", "timeout", "max-response-size", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not registered", name)
		}
	}
}

func TestVersionString(t *testing.T) {
	setVersion("1.2.3", "abcdef")
	if rootCmd.Version != "1.2.3 (commit: abcdef)" {
		t.Errorf("version = %q", rootCmd.Version)
	}
}
