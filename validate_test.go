package ex2rst

import (
	"bytes"
	"testing"
)

func TestValidateSourceAcceptsScript(t *testing.T) {
	data := []byte("\"\"\"Doc.\"\"\"\nx = 1\nprint(x)\n")
	if err := ValidateSource(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateSourceRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateSource(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateSourceRejectsNUL(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateSource(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateSourceRejectsControlHeavy(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 100)
	data = append(data, bytes.Repeat([]byte{0x01}, 5)...)
	if err := ValidateSource(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateSourceToleratesSparseControls(t *testing.T) {
	// One escape byte in a real script should not trip the binary check.
	data := bytes.Repeat([]byte("print('ok')\n"), 20)
	data = append(data, 0x1b)
	if err := ValidateSource(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
