package codec

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mcncl/ndjson/internal/models"
)

// EncodeAll serializes values to NDJSON text: one compact JSON document per
// value, a '\n' after every line including the last. An empty input yields an
// empty string. Encoding cannot fail: the value union is closed and every
// variant has a defined encoding, and the JSON encoder escapes control
// characters, so no unescaped newline can ever appear inside a line.
func EncodeAll(values []models.Value) string {
	var sb strings.Builder
	for _, v := range values {
		encodeValue(&sb, v)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// EncodeArray serializes values as a single JSON array document instead of
// one document per line.
func EncodeArray(values []models.Value) string {
	var sb strings.Builder
	encodeValue(&sb, models.Array(values))
	return sb.String()
}

// encodeValue writes one compact document. Objects and arrays are walked by
// hand so member order survives; a round-trip through a Go map would sort
// keys. String escaping is delegated to encoding/json.
func encodeValue(sb *strings.Builder, v models.Value) {
	switch t := v.(type) {
	case models.Null, nil:
		sb.WriteString("null")
	case models.Bool:
		sb.WriteString(strconv.FormatBool(bool(t)))
	case models.Number:
		sb.WriteString(string(t))
	case models.String:
		encodeString(sb, string(t))
	case models.Array:
		sb.WriteByte('[')
		for i, elem := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			encodeValue(sb, elem)
		}
		sb.WriteByte(']')
	case models.Object:
		sb.WriteByte('{')
		for i, member := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			encodeString(sb, member.Key)
			sb.WriteByte(':')
			encodeValue(sb, member.Value)
		}
		sb.WriteByte('}')
	}
}

func encodeString(sb *strings.Builder, s string) {
	// json.Marshal of a Go string never errors; invalid UTF-8 is replaced.
	b, _ := json.Marshal(s)
	sb.Write(b)
}
