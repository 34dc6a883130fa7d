package tempo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// ErrUndecodable reports file content that is neither valid UTF-8 nor
// decodable GB18030 text.
var ErrUndecodable = errors.New("undecodable text input")

// ReadDocument loads a Markdown file for rendering. Input that is not
// valid UTF-8 is retried as GB18030 before giving up; a byte-order mark
// and CRLF line endings are normalized away.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	text, err := DecodeDocument(data)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", path, err)
	}
	return text, nil
}

// DecodeDocument converts raw file bytes to normalized document text.
func DecodeDocument(data []byte) (string, error) {
	switch err := ValidateInput(data); {
	case err == nil:
	case errors.Is(err, ErrInvalidUTF8):
		decoded, derr := simplifiedchinese.GB18030.NewDecoder().Bytes(data)
		if derr != nil {
			return "", fmt.Errorf("%w: %v", ErrUndecodable, derr)
		}
		if verr := ValidateInput(decoded); verr != nil {
			return "", ErrUndecodable
		}
		data = decoded
	default:
		return "", err
	}
	text := strings.TrimPrefix(string(data), "\ufeff")
	return strings.ReplaceAll(text, "\r\n", "\n"), nil
}
