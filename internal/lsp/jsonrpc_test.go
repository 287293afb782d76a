package lsp

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestJSONRPCFramingMultipleMessages(t *testing.T) {
	var buf bytes.Buffer
	msg1 := []byte(`{"jsonrpc":"2.0","method":"one"}`)
	msg2 := []byte(`{"jsonrpc":"2.0","method":"двa"}`)

	if err := writeMessage(&buf, msg1); err != nil {
		t.Fatalf("write message 1: %v", err)
	}
	if err := writeMessage(&buf, msg2); err != nil {
		t.Fatalf("write message 2: %v", err)
	}

	reader := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	got1, err := readMessage(reader)
	if err != nil {
		t.Fatalf("read message 1: %v", err)
	}
	got2, err := readMessage(reader)
	if err != nil {
		t.Fatalf("read message 2: %v", err)
	}
	if string(got1) != string(msg1) {
		t.Fatalf("unexpected message 1: %s", string(got1))
	}
	if string(got2) != string(msg2) {
		t.Fatalf("unexpected message 2: %s", string(got2))
	}
}

func TestJSONRPCHeaderErrors(t *testing.T) {
	cases := []string{
		"Content-Type: application/json\r\n\r\n{}",
		"Content-Length: abc\r\n\r\n{}",
		"Content-Length: -4\r\n\r\n{}",
	}
	for _, raw := range cases {
		_, err := readMessage(bufio.NewReader(strings.NewReader(raw)))
		if !errors.Is(err, errBadFrame) {
			t.Fatalf("%q: expected errBadFrame, got %v", raw, err)
		}
	}
	_, err := readMessage(bufio.NewReader(strings.NewReader("X-Other: 1\r\n\r\n")))
	if !errors.Is(err, errMissingLength) {
		t.Fatalf("expected errMissingLength, got %v", err)
	}
}

func TestJSONRPCResyncAfterBadLength(t *testing.T) {
	good := []byte(`{"jsonrpc":"2.0","method":"initialized"}`)
	var buf bytes.Buffer
	buf.WriteString("Content-Length: abc\r\n\r\n{\"broken\":true}")
	if err := writeMessage(&buf, good); err != nil {
		t.Fatalf("write: %v", err)
	}

	reader := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	if _, err := readMessage(reader); !errors.Is(err, errBadFrame) {
		t.Fatalf("expected errBadFrame, got %v", err)
	}
	got, err := readMessage(reader)
	if err != nil {
		t.Fatalf("read after bad frame: %v", err)
	}
	if string(got) != string(good) {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestJSONRPCOversizedFrameIsSkipped(t *testing.T) {
	prev := maxMessageSize
	maxMessageSize = 8
	t.Cleanup(func() { maxMessageSize = prev })

	small := []byte(`{"a":1}`)
	var buf bytes.Buffer
	if err := writeMessage(&buf, []byte(`{"jsonrpc":"2.0","method":"too-big"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writeMessage(&buf, small); err != nil {
		t.Fatalf("write: %v", err)
	}

	reader := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	if _, err := readMessage(reader); !errors.Is(err, errBadFrame) {
		t.Fatalf("expected errBadFrame, got %v", err)
	}
	got, err := readMessage(reader)
	if err != nil || string(got) != string(small) {
		t.Fatalf("next message = %q, %v", got, err)
	}
}
