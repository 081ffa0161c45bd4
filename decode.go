package ytdl

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodePolicy decides what happens to captured output that is not valid UTF-8.
type DecodePolicy int

const (
	// DecodeStrict fails Execute with ErrMalformedOutput.
	DecodeStrict DecodePolicy = iota
	// DecodeLossy replaces each invalid sequence with U+FFFD.
	DecodeLossy
)

func (p DecodePolicy) String() string {
	if p == DecodeLossy {
		return "lossy"
	}
	return "strict"
}

// decode turns raw bytes from one of the process streams into text.
func (p DecodePolicy) decode(stream string, raw []byte) (string, error) {
	if p == DecodeLossy {
		out, err := unicode.UTF8.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decoding %s: %w", stream, err)
		}
		return string(out), nil
	}

	if _, _, err := transform.Bytes(encoding.UTF8Validator, raw); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMalformedOutput, stream, err)
	}
	return string(raw), nil
}
