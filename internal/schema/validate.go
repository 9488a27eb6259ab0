package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"shuvoedward/Bible_reader/internal/validator"

	"github.com/tidwall/gjson"
)

const rootPath = "value"

// Validate checks raw JSON against s and reports every mismatch.
func Validate(s *Schema, raw []byte) error {
	if !gjson.ValidBytes(raw) {
		return &ValidationError{Fields: []FieldError{{Path: rootPath, Message: "must be valid JSON"}}}
	}

	v := validator.New()
	s.walk(v, "", gjson.ParseBytes(raw))

	return fromValidator(v)
}

// Decode validates raw against s and unmarshals it into T.
func Decode[T any](s *Schema, raw []byte) (T, error) {
	var out T

	if err := Validate(s, raw); err != nil {
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &ValidationError{Fields: []FieldError{{Path: rootPath, Message: err.Error()}}}
	}

	return out, nil
}

// Check validates an already typed value by its JSON encoding.
func Check(s *Schema, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("schema: encode value: %w", err)
	}
	return Validate(s, raw)
}

func (s *Schema) walk(v *validator.Validator, path string, r gjson.Result) {
	key := path
	if key == "" {
		key = rootPath
	}

	if !r.Exists() {
		if !s.optional {
			v.AddError(key, "is required")
		}
		return
	}

	if r.Type == gjson.Null {
		if !s.nullable {
			v.AddError(key, "must not be null")
		}
		return
	}

	switch s.kind {
	case KindString:
		s.walkString(v, key, r)

	case KindNumber, KindInteger:
		if r.Type != gjson.Number {
			if s.kind == KindInteger {
				v.AddError(key, "must be an integer")
			} else {
				v.AddError(key, "must be a number")
			}
			return
		}
		if s.kind == KindInteger && r.Num != math.Trunc(r.Num) {
			v.AddError(key, "must be an integer")
			return
		}
		if s.min != nil && r.Num < *s.min {
			v.AddError(key, "must be at least "+formatBound(*s.min))
		}
		if s.max != nil && r.Num > *s.max {
			v.AddError(key, "must be at most "+formatBound(*s.max))
		}

	case KindBool:
		if r.Type != gjson.True && r.Type != gjson.False {
			v.AddError(key, "must be a boolean")
		}

	case KindObject:
		if !r.IsObject() {
			v.AddError(key, "must be an object")
			return
		}
		members := r.Map()
		for _, f := range s.fields {
			f.Schema.walk(v, joinPath(path, f.Name), members[f.Name])
		}

	case KindArray:
		if !r.IsArray() {
			v.AddError(key, "must be an array")
			return
		}
		items := r.Array()
		if s.min != nil && float64(len(items)) < *s.min {
			v.AddError(key, "must contain at least "+formatBound(*s.min)+" items")
		}
		if s.max != nil && float64(len(items)) > *s.max {
			v.AddError(key, "must contain at most "+formatBound(*s.max)+" items")
		}
		for i, item := range items {
			s.elem.walk(v, path+"["+strconv.Itoa(i)+"]", item)
		}
	}
}

func (s *Schema) walkString(v *validator.Validator, key string, r gjson.Result) {
	if r.Type != gjson.String {
		v.AddError(key, "must be a string")
		return
	}

	length := float64(utf8.RuneCountInString(r.Str))
	if s.min != nil && length < *s.min {
		v.AddError(key, "must be at least "+formatBound(*s.min)+" characters long")
	}
	if s.max != nil && length > *s.max {
		v.AddError(key, "must be at most "+formatBound(*s.max)+" characters long")
	}

	switch s.format {
	case FormatEmail:
		v.Check(validator.Matches(r.Str, validator.EmailRX), key, "must be a valid email")
	case FormatURL:
		v.Check(validator.IsURL(r.Str), key, "must be a valid url")
	}

	if len(s.enum) > 0 && !validator.PermittedValue(r.Str, s.enum...) {
		v.AddError(key, fmt.Sprintf("must be one of %v", s.enum))
	}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func formatBound(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
