package catalog

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Document is the on-disk catalog override format
type Document struct {
	Facts []FactDocument `json:"facts" validate:"required,min=1,dive" jsonschema:"required,minItems=1,description=Collectible facts; replaces the built-in catalog"`
}

// FactDocument is one authored fact inside a Document
type FactDocument struct {
	Category string `json:"category" validate:"required" jsonschema:"required,description=Category key; unknown keys fall back to the generic glyph and title"`
	Glyph    string `json:"glyph,omitempty" jsonschema:"description=Glyph drawn on the board; defaults to the category glyph"`
	Message  string `json:"message" validate:"required,max=240" jsonschema:"required,maxLength=240"`
	Points   int    `json:"points" validate:"min=1,max=100" jsonschema:"required,minimum=1,maximum=100"`
	Color    string `json:"color" validate:"required,len=7,startswith=#,hexcolor" jsonschema:"required,pattern=^#[0-9a-fA-F]{6}$"`
}

var validate = validator.New()

// Parse decodes and validates a catalog document
func Parse(data []byte) ([]Fact, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "catalog: decode")
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, errors.Wrap(err, "catalog: validate")
	}

	facts := make([]Fact, 0, len(doc.Facts))
	for _, fd := range doc.Facts {
		cat := ParseCategory(fd.Category)
		glyph := fd.Glyph
		if glyph == "" {
			glyph = cat.Glyph()
		}
		facts = append(facts, Fact{
			Category: cat,
			Glyph:    glyph,
			Message:  fd.Message,
			Points:   fd.Points,
			Color:    fd.Color,
		})
	}
	return facts, nil
}

// LoadFile reads a catalog override from path
// An empty path returns the built-in catalog
func LoadFile(path string) ([]Fact, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: read %s", path)
	}
	facts, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: %s", path)
	}
	return facts, nil
}
