package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON []byte

var documentSchema = mustSchema()

func mustSchema() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("compiling resume schema: %v", err))
	}
	return s
}

// Decode parses a serialized document. Fields missing from data keep their
// default values, so documents written by older versions still load.
func Decode(data []byte) (model.Resume, error) {
	res, err := documentSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return model.Resume{}, fmt.Errorf("parsing document: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, len(res.Errors()))
		for i, e := range res.Errors() {
			msgs[i] = e.String()
		}
		return model.Resume{}, fmt.Errorf("document does not match schema: %s", strings.Join(msgs, "; "))
	}

	doc := model.Default()
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Resume{}, fmt.Errorf("decoding document: %w", err)
	}
	return doc.Clone(), nil
}

func encode(doc model.Resume) ([]byte, error) {
	return json.Marshal(doc)
}

func encodeIndent(doc model.Resume) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
