package lsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxMessageSize bounds a single payload so a corrupt header cannot make
// the server allocate arbitrary memory.
var maxMessageSize = 64 << 20

const contentLengthHeader = "content-length:"

// errBadFrame marks a dropped frame; the reader is positioned so that the
// next readMessage can pick up the following header.
var errBadFrame = errors.New("bad frame")

var errMissingLength = fmt.Errorf("%w: missing Content-Length header", errBadFrame)

// readMessage reads one Content-Length framed payload. A header is matched
// at the end of its line, so a line that starts with the unread body of a
// broken frame still yields the next message.
func readMessage(r *bufio.Reader) ([]byte, error) {
	contentLength := -1
	var lengthErr error
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		idx := strings.LastIndex(strings.ToLower(line), contentLengthHeader)
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(line[idx+len(contentLengthHeader):])
		length, err := strconv.Atoi(value)
		if err != nil || length < 0 {
			lengthErr = fmt.Errorf("%w: invalid Content-Length %q", errBadFrame, value)
			continue
		}
		contentLength, lengthErr = length, nil
	}
	if lengthErr != nil {
		return nil, lengthErr
	}
	if contentLength < 0 {
		return nil, errMissingLength
	}
	if contentLength > maxMessageSize {
		// длина известна, поэтому тело можно пропустить целиком
		if _, err := io.CopyN(io.Discard, r, int64(contentLength)); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Content-Length %d exceeds %d", errBadFrame, contentLength, maxMessageSize)
	}
	payload := make([]byte, contentLength)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func writeMessage(w io.Writer, payload []byte) error {
	header := "Content-Length: " + strconv.Itoa(len(payload)) + "\r\n\r\n"
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}
