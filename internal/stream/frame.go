// Package stream reads and writes the newline-delimited "data: <json>"
// framing used between the model endpoint, the server and the client.
package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Type is the kind of a frame.
type Type string

const (
	TypeText  Type = "text"
	TypeName  Type = "name"
	TypeDone  Type = "done"
	TypeError Type = "error"
)

// Frame is one record of a stream. Content is the appended text for
// TypeText, the chat title for TypeName and the message for TypeError.
type Frame struct {
	Type    Type   `json:"type"`
	Content string `json:"content,omitempty"`
}

var dataPrefix = []byte("data:")

// DecodeError reports a data line whose payload is not a frame.
type DecodeError struct {
	line []byte
	err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode frame: %v", e.err)
}

func (e *DecodeError) Unwrap() error { return e.err }

// Line returns the offending line.
func (e *DecodeError) Line() []byte { return e.line }

// Decoder reads frames from r.
type Decoder struct {
	reader *bufio.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{reader: bufio.NewReader(r)}
}

// Next returns the next frame. Blank lines, comments and non-data fields
// are skipped. At the end of input Next returns io.EOF.
func (d *Decoder) Next(ctx context.Context) (Frame, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Frame{}, err
		}
		line, err := d.reader.ReadBytes('\n')
		if len(line) == 0 && err != nil {
			return Frame{}, err
		}

		line = bytes.TrimSpace(line)
		if !bytes.HasPrefix(line, dataPrefix) {
			if err != nil {
				return Frame{}, err
			}
			continue
		}

		payload := bytes.TrimSpace(line[len(dataPrefix):])
		var f Frame
		if jerr := json.Unmarshal(payload, &f); jerr != nil {
			return Frame{}, &DecodeError{line: append([]byte(nil), line...), err: jerr}
		}
		if f.Type == "" {
			return Frame{}, &DecodeError{line: append([]byte(nil), line...), err: errors.New("missing type")}
		}
		return f, nil
	}
}

// Encoder writes frames to w, one data record per frame.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes v as one data record. v is usually a Frame.
func (e *Encoder) Encode(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	buf := make([]byte, 0, len(payload)+8)
	buf = append(buf, "data: "...)
	buf = append(buf, payload...)
	buf = append(buf, '\n', '\n')
	if _, err := e.w.Write(buf); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
