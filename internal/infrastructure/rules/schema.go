package rules

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// JSONSchema describes the rule table accepted by rules.toml and the
// built-in defaults.
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "json",
		ExpandedStruct: true,
		Mapper:         mapListTypes,
	}
	rule := r.Reflect(&entity.UnifyRule{})
	defs := rule.Definitions
	rule.Version, rule.ID, rule.Definitions = "", "", nil

	schema := &jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   "https://github.com/bnema/chatdeck/rules.schema.json",
		Title:                "chatdeck unify rules",
		Description:          `Map of host (or "*") to unification rule.`,
		Type:                 "object",
		AdditionalProperties: rule,
		Definitions:          defs,
	}
	return json.MarshalIndent(schema, "", "  ")
}

var (
	selectorListType = reflect.TypeOf(entity.SelectorList{})
	textListType     = reflect.TypeOf(entity.TextList{})
)

// mapListTypes lets list fields accept either one string or an array.
func mapListTypes(t reflect.Type) *jsonschema.Schema {
	switch t {
	case selectorListType, textListType:
		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			},
		}
	}
	return nil
}
