package schema

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed datadoc.schema.json
var documentSchema []byte

// ErrInvalidDocument is returned when a document does not match the schema
var ErrInvalidDocument = errors.New("metadata document failed schema validation")

// Validate checks a JSON metadata document against the Datadoc schema. Every
// violation is listed in the returned error.
func Validate(body []byte) error {
	compiled, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewBytesLoader(documentSchema))
	if err != nil {
		return errors.Wrap(err, "failed to compile metadata document schema")
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.Wrap(err, "failed to validate metadata document")
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return errors.Wrap(ErrInvalidDocument, strings.Join(violations, "; "))
}
