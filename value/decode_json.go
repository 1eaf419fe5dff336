package value

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/erraggy/jsonschemadoc/schemaerrors"
)

// DecodeJSON decodes a single JSON document, preserving object member order
// and number literals. Syntax errors are returned as
// *schemaerrors.MalformedDocumentError carrying the line and column.
func DecodeJSON(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, &schemaerrors.MalformedDocumentError{Offset: -1, Message: "empty document"}
	}

	// The token stream does not check delimiters or separators, so the
	// document is validated up front; this also yields the error offset.
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return Value{}, jsonSyntaxError(data, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return Value{}, jsonSyntaxError(data, err)
	}
	v, err := decodeJSONToken(dec, tok)
	if err != nil {
		return Value{}, jsonSyntaxError(data, err)
	}
	return v, nil
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
	case string:
		return String(t), nil
	case json.Number:
		return Number(string(t)), nil
	case float64:
		return Number(fmt.Sprint(t)), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeJSONObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return ObjectValue(obj), nil
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", tok)
		}
		vt, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		val, err := decodeJSONToken(dec, vt)
		if err != nil {
			return Value{}, err
		}
		obj.Set(key, val)
	}
}

func decodeJSONArray(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return Array(items...), nil
		}
		item, err := decodeJSONToken(dec, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

// jsonSyntaxError converts a decoder failure into a MalformedDocumentError,
// locating it in data when the decoder reports an offset.
func jsonSyntaxError(data []byte, err error) error {
	var malformed *schemaerrors.MalformedDocumentError
	if errors.As(err, &malformed) {
		return err
	}
	out := &schemaerrors.MalformedDocumentError{Offset: -1, Cause: err}
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		out.Offset = syntaxErr.Offset
		if out.Offset >= int64(len(data)) || strings.Contains(syntaxErr.Error(), "unexpected end of JSON input") {
			out.Offset = int64(len(data))
			out.Message = "unexpected end of input"
		}
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		out.Offset = int64(len(data))
		out.Message = "unexpected end of input"
		out.Cause = nil
	}
	if out.Offset >= 0 {
		out.Line, out.Column = lineColumn(data, out.Offset)
	}
	return out
}

// lineColumn converts a byte offset into a 1-based line and column.
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte{'\n'}) + 1
	col := int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
