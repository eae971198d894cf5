package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)
	w.Print("hello %s", "world")
	if got := buf.String(); got != "hello world" {
		t.Errorf("Print wrote %q", got)
	}
}

func TestPrintln(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)
	w.Println("line %d", 1)
	if got := buf.String(); got != "line 1\n" {
		t.Errorf("Println wrote %q", got)
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)
	w.Error("something went wrong")
	got := buf.String()
	if !strings.Contains(got, "error:") {
		t.Errorf("Error output %q missing prefix", got)
	}
	if !strings.Contains(got, "something went wrong") {
		t.Errorf("Error output %q missing message", got)
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)
	w.Warn("heads up")
	got := buf.String()
	if !strings.Contains(got, "warning:") {
		t.Errorf("Warn output %q missing prefix", got)
	}
}

func TestSuccess(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)
	w.Success("done")
	got := buf.String()
	if !strings.Contains(got, "✓") {
		t.Errorf("Success output %q missing checkmark", got)
	}
	if !strings.Contains(got, "done") {
		t.Errorf("Success output %q missing message", got)
	}
}

func TestPlainMode(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)
	w.plain = true
	w.Error("boom")
	if got := buf.String(); got != "error: boom\n" {
		t.Errorf("plain Error wrote %q", got)
	}
}

func TestDivider(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)
	w.plain = true
	w.Divider()
	if got := buf.String(); !strings.Contains(got, "─") {
		t.Errorf("Divider wrote %q", got)
	}
}
