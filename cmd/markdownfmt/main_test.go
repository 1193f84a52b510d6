package main

import (
	"bytes"
	"testing"
)

func newTestCmd(stdin string) (*mainCmd, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &mainCmd{
		Stdin:  bytes.NewBufferString(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return cmd, &stdout, &stderr
}

func TestRunFormatsStdin(t *testing.T) {
	cmd, stdout, stderr := newTestCmd("#   messy heading\n")
	cmd.Run(nil)
	if cmd.exitCode != 0 {
		t.Fatalf("exitCode = %d, stderr = %q", cmd.exitCode, stderr.String())
	}
	want := "# messy heading\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunUnderlineHeadings(t *testing.T) {
	cmd, stdout, _ := newTestCmd("# Title\n")
	cmd.Run([]string{"-u"})
	want := "Title\n===\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunUnknownFlagReportsError(t *testing.T) {
	cmd, _, stderr := newTestCmd("")
	cmd.Run([]string{"-not-a-flag"})
	if cmd.exitCode == 0 {
		t.Errorf("expected non-zero exit code for unknown flag")
	}
	if stderr.Len() == 0 {
		t.Errorf("expected usage/error output on stderr")
	}
}
