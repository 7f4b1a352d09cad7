package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestMigrateCommandHelp(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"migrate", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Apply the database schema") {
		t.Errorf("Expected migrate help output, got %q", buf.String())
	}
}
