package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "default one step", args: nil, want: 1},
		{name: "explicit", args: []string{" 3 "}, want: 3},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "not a number", args: []string{"two"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSteps(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("parseSteps(%v) = %d, %v; want %d", tc.args, got, err, tc.want)
			}
		})
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion("1771776034"); err != nil || v != 1771776034 {
		t.Fatalf("unexpected version %d, %v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected negative version to fail")
	}
	if _, err := parseTarget("abc"); err == nil {
		t.Fatalf("expected invalid target to fail")
	}
}

func TestResolveMigrationsDir_UsesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", dir)

	got, err := resolveMigrationsDir()
	if err != nil {
		t.Fatalf("resolve migrations dir: %v", err)
	}
	want, _ := filepath.Abs(dir)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResolveMigrationsDir_SkipsFiles(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MIGRATIONS_DIR", file)
	t.Setenv("MIGRATIONS_PATH", "")

	// falls through to ./db/migrations relative to the package dir, which does not exist
	if _, err := resolveMigrationsDir(); err == nil {
		t.Fatalf("expected error when no candidate is a directory")
	}
}
