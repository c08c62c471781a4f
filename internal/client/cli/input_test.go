package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  Acme Labs  \n"), "Manufacturer", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Acme Labs" {
		t.Fatalf("got %q", got)
	}
	if out.String() != "Manufacturer\n> " {
		t.Fatalf("unexpected prompt %q", out.String())
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("partial"), "p", &out)
	if err != nil || got != "partial" {
		t.Fatalf("got %q, %v", got, err)
	}

	if _, err := GetSimpleText(rdr(""), "p", &out); err == nil {
		t.Fatal("expected EOF error")
	}
}

func TestGetToken(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()

	readPassword = func(int) ([]byte, error) { return []byte(" tok-1 \n"), nil }
	var out bytes.Buffer
	got, err := GetToken(&out)
	if err != nil || got != "tok-1" {
		t.Fatalf("got %q, %v", got, err)
	}

	readPassword = func(int) ([]byte, error) { return []byte("  "), nil }
	if _, err := GetToken(&out); err == nil {
		t.Fatal("expected error for empty token")
	}

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	if _, err := GetToken(&out); err == nil {
		t.Fatal("expected error")
	}
}
