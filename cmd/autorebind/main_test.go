// Package main provides tests for the autorebind tool's command-line parsing.
package main

import (
	"reflect"
	"testing"

	"github.com/alecthomas/kong"
)

// TestCLIParsing tests the parsing of command-line arguments into the CLI
// struct.
//
// t: the testing context.
func TestCLIParsing(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    CLI
		wantErr bool
	}{
		{
			name: "default paths",
			args: []string{},
			want: CLI{Paths: []string{"."}},
		},
		{
			name: "specific paths",
			args: []string{"lib", "apps"},
			want: CLI{Paths: []string{"lib", "apps"}},
		},
		{
			name: "sweep idents",
			args: []string{"--var", "results", "--var", "alerts"},
			want: CLI{Paths: []string{"."}, Var: []string{"results", "alerts"}},
		},
		{
			name: "config table",
			args: []string{"--config", "rebind.yml", "--dry-run"},
			want: CLI{Paths: []string{"."}, Config: "rebind.yml", DryRun: true},
		},
		{
			name: "exclude glob",
			args: []string{"--exclude-glob", "priv/*"},
			want: CLI{Paths: []string{"."}, ExcludeGlob: []string{"priv/*"}},
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI
			parser, err := kong.New(&cli)
			if err != nil {
				t.Fatalf("kong.New failed: %v", err)
			}
			_, err = parser.Parse(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected parse error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if !reflect.DeepEqual(cli, tt.want) {
				t.Errorf("parsed CLI = %+v, want %+v", cli, tt.want)
			}
		})
	}
}

// TestRunConflictingDiscovery covers the discovery-mode validation in Run.
func TestRunConflictingDiscovery(t *testing.T) {
	if err := Run(CLI{Config: "rebind.yml", FromLint: true}); err == nil {
		t.Fatal("expected an error for conflicting discovery flags")
	}
}
