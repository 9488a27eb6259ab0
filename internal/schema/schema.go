// Package schema describes the expected shape of JSON values and checks raw
// payloads against those descriptions.
//
// A Schema is a declaration only; the walking logic lives in validate.go. The
// same declaration validates procedure inputs before a call is made and
// upstream responses before they are trusted.
package schema

type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindInteger
	KindBool
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBool:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

type Format int

const (
	FormatNone Format = iota
	FormatEmail
	FormatURL
)

// Field is a named member of an object schema.
type Field struct {
	Name   string
	Schema *Schema
}

// Schema is immutable; every modifier returns a copy.
type Schema struct {
	kind     Kind
	optional bool
	nullable bool
	format   Format
	min      *float64
	max      *float64
	enum     []string
	fields   []Field
	elem     *Schema
}

func String() *Schema  { return &Schema{kind: KindString} }
func Number() *Schema  { return &Schema{kind: KindNumber} }
func Integer() *Schema { return &Schema{kind: KindInteger} }
func Bool() *Schema    { return &Schema{kind: KindBool} }

// Object declares a record with the given fields. Fields not listed are
// ignored during validation.
func Object(fields ...Field) *Schema {
	return &Schema{kind: KindObject, fields: fields}
}

// Array declares a list whose elements all satisfy elem.
func Array(elem *Schema) *Schema {
	return &Schema{kind: KindArray, elem: elem}
}

// Enum declares a string restricted to the given values.
func Enum(values ...string) *Schema {
	return &Schema{kind: KindString, enum: values}
}

// F is shorthand for building a Field.
func F(name string, s *Schema) Field {
	return Field{Name: name, Schema: s}
}

func (s *Schema) Kind() Kind       { return s.kind }
func (s *Schema) IsOptional() bool { return s.optional }
func (s *Schema) Fields() []Field  { return s.fields }
func (s *Schema) Elem() *Schema    { return s.elem }

func (s *Schema) clone() *Schema {
	c := *s
	c.fields = append([]Field(nil), s.fields...)
	c.enum = append([]string(nil), s.enum...)
	return &c
}

func (s *Schema) Optional() *Schema {
	c := s.clone()
	c.optional = true
	return c
}

func (s *Schema) Nullable() *Schema {
	c := s.clone()
	c.nullable = true
	return c
}

func (s *Schema) Email() *Schema {
	c := s.clone()
	c.format = FormatEmail
	return c
}

func (s *Schema) URL() *Schema {
	c := s.clone()
	c.format = FormatURL
	return c
}

// Min bounds string length, array length or numeric value from below.
func (s *Schema) Min(n float64) *Schema {
	c := s.clone()
	c.min = &n
	return c
}

// Max bounds string length, array length or numeric value from above.
func (s *Schema) Max(n float64) *Schema {
	c := s.clone()
	c.max = &n
	return c
}

// Extend returns an object schema with extra fields. A field with an
// existing name replaces the original declaration.
func (s *Schema) Extend(fields ...Field) *Schema {
	c := s.clone()
	for _, f := range fields {
		replaced := false
		for i := range c.fields {
			if c.fields[i].Name == f.Name {
				c.fields[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			c.fields = append(c.fields, f)
		}
	}
	return c
}

// Describe renders the schema as a JSON-friendly tree, used by the procedure
// directory.
func (s *Schema) Describe() map[string]any {
	d := map[string]any{"type": s.kind.String()}
	if s.optional {
		d["optional"] = true
	}
	if s.nullable {
		d["nullable"] = true
	}
	switch s.format {
	case FormatEmail:
		d["format"] = "email"
	case FormatURL:
		d["format"] = "url"
	}
	if s.min != nil {
		d["min"] = *s.min
	}
	if s.max != nil {
		d["max"] = *s.max
	}
	if len(s.enum) > 0 {
		d["enum"] = s.enum
	}
	if s.kind == KindObject {
		props := make(map[string]any, len(s.fields))
		for _, f := range s.fields {
			props[f.Name] = f.Schema.Describe()
		}
		d["fields"] = props
	}
	if s.kind == KindArray && s.elem != nil {
		d["items"] = s.elem.Describe()
	}
	return d
}
