// Package codec converts between NDJSON text and the models.Value tree.
// Grammar-level JSON parsing is delegated to encoding/json; this package
// adds the NDJSON policy: one complete document per line, blank lines are
// errors, and the first bad line fails the whole decode.
package codec

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcncl/ndjson/internal/errors"
	"github.com/mcncl/ndjson/internal/models"
	"github.com/mcncl/ndjson/internal/splitter"
)

// DecodeBytes splits a raw buffer into candidate lines and decodes them.
func DecodeBytes(data []byte) ([]models.Value, error) {
	return DecodeAll(splitter.Split(data))
}

// DecodeString decodes NDJSON text.
func DecodeString(text string) ([]models.Value, error) {
	return DecodeBytes([]byte(text))
}

// DecodeLines decodes pre-split input, such as lines read from a file. Each
// element may still carry its line terminator.
func DecodeLines(raw []string) ([]models.Value, error) {
	return DecodeAll(splitter.FromLines(raw))
}

// DecodeDocument parses an entire buffer as one JSON document, newlines and
// all. Used when converting a regular JSON array into NDJSON; the error here
// is a plain grammar violation, not a LineError.
func DecodeDocument(data []byte) (models.Value, error) {
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return nil, errors.ErrEmptyInput
	}

	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	v, err := decodeValue(decoder)
	if err != nil {
		return nil, describeViolation(err)
	}
	if _, err := decoder.Token(); !stderrors.Is(err, io.EOF) {
		return nil, errors.ErrTrailingData
	}
	return v, nil
}

// DecodeAll decodes candidate lines in order. The contract is all-or-nothing:
// on the first failing line no further lines are attempted and a
// *errors.LineError carrying that line's 1-based number is returned. On
// success values[i] is the decoded form of the (i+1)-th candidate line.
func DecodeAll(lines []splitter.Line) ([]models.Value, error) {
	values := make([]models.Value, 0, len(lines))
	for _, line := range lines {
		v, err := decodeLine(line.Text)
		if err != nil {
			return nil, errors.NewLineError(line.Number, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// decodeLine parses exactly one JSON document from text. Empty or
// whitespace-only content, incomplete documents, and trailing non-whitespace
// data are all violations.
func decodeLine(text string) (models.Value, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.ErrEmptyLine
	}

	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber() // Ensure numbers keep their decimal text

	v, err := decodeValue(decoder)
	if err != nil {
		return nil, describeViolation(err)
	}

	// Anything left past the first document is trailing garbage. The decoder
	// swallows whitespace itself, so a non-EOF result here means real data.
	if _, err := decoder.Token(); !stderrors.Is(err, io.EOF) {
		return nil, errors.ErrTrailingData
	}
	return v, nil
}

// decodeValue consumes one complete value from the token stream, building
// the models tree. Objects keep their members in arrival order, which a
// plain map decode would lose.
func decodeValue(decoder *json.Decoder) (models.Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		default:
			return nil, fmt.Errorf("unexpected %q", t.String())
		}
	case bool:
		return models.Bool(t), nil
	case json.Number:
		return models.Number(t), nil
	case string:
		return models.String(t), nil
	case nil:
		return models.Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", token)
	}
}

func decodeObject(decoder *json.Decoder) (models.Value, error) {
	obj := models.Object{}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", token)
		}
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		obj = append(obj, models.Member{Key: key, Value: value})
	}
	// Consume the closing '}'.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(decoder *json.Decoder) (models.Value, error) {
	arr := models.Array{}
	for decoder.More() {
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	// Consume the closing ']'.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// describeViolation rewrites decoder errors into stable violation text. An
// EOF mid-document means the line ended before the value was complete; a
// syntax error keeps its byte offset within the line.
func describeViolation(err error) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.ErrIncompleteValue
	}
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return fmt.Errorf("syntax error at offset %d: %w", syntaxErr.Offset, err)
	}
	return err
}
