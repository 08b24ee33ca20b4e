package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestAskTrimsAnswer(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("  /tmp/source  \n"), &out)

	answer, err := session.Ask("Source directory: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "/tmp/source" {
		t.Fatalf("expected trimmed answer, got %q", answer)
	}
	if !strings.Contains(out.String(), "Source directory: ") {
		t.Fatalf("expected prompt to be written, got %q", out.String())
	}
}

func TestAskAcceptsFinalLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("value"), &out)

	answer, err := session.Ask("? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "value" {
		t.Fatalf("expected %q, got %q", "value", answer)
	}
}

func TestAskRequiredRepromptsOnEmpty(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("\n\n/data\n"), &out)

	answer, err := session.AskRequired("Destination directory: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "/data" {
		t.Fatalf("expected /data, got %q", answer)
	}
	if strings.Count(out.String(), "A value is required.") != 2 {
		t.Fatalf("expected two re-prompts, got %q", out.String())
	}
}

func TestAskYesNoRepromptsOnInvalidAnswer(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("maybe\nYES\n"), &out)

	answer, err := session.AskYesNo("Overwrite existing files?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !answer {
		t.Fatalf("expected yes")
	}
	if !strings.Contains(out.String(), "Please answer yes or no.") {
		t.Fatalf("expected re-prompt message, got %q", out.String())
	}
}

func TestAskYesNoAcceptsShortForms(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("n\n"), &out)

	answer, err := session.AskYesNo("Preserve folder structure?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer {
		t.Fatalf("expected no")
	}
}

func TestAskReturnsErrorOnClosedInput(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader(""), &out)

	if _, err := session.Ask("? "); err == nil {
		t.Fatalf("expected error on exhausted input")
	}
}
