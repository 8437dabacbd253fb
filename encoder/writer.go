package encoder

import (
	"bytes"
	"encoding/json"

	"github.com/ONSdigital/dp-datadoc-generator/models"
	"github.com/pkg/errors"
)

// Indent is the indentation used for written documents
const Indent = "    "

// Marshal writes a dumped record as indented JSON. Keys keep their order and
// every value JSON has no type for is passed through Encode.
func Marshal(tree interface{}) ([]byte, error) {
	resolved, err := resolve(tree)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(resolved); err != nil {
		return nil, errors.Wrap(err, "failed to encode json")
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func resolve(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case nil, string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x, nil
	case models.Mapping:
		out := make(models.Mapping, len(x))
		for i, f := range x {
			val, err := resolve(f.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "%s", f.Key)
			}
			out[i] = models.Field{Key: f.Key, Value: val}
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, item := range x {
			val, err := resolve(item)
			if err != nil {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			out[i] = val
		}
		return out, nil
	}
	return Encode(v)
}
