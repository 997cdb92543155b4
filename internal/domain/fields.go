package domain

// FieldType describes how a payload value is checked and coerced.
type FieldType int

const (
	// FieldString must be a string that is non-empty after trimming.
	FieldString FieldType = iota
	// FieldText must be a string; empty is allowed.
	FieldText
	// FieldNumber must be convertible to a float64.
	FieldNumber
	// FieldInteger must be convertible to an int64 without loss.
	FieldInteger
	// FieldDate must be a YYYY-MM-DD string.
	FieldDate
)

// Field is one row of an entity kind's field table. The field name doubles
// as the column name, so the table is also the column allow-list used when
// building INSERT and UPDATE statements.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// Kind describes one entity kind: its table, its fields and the wording used
// in responses.
type Kind struct {
	// Name is the singular machine name, e.g. "student".
	Name string
	// Label is the human-facing singular, e.g. "Student".
	Label string
	// Plural is the key list responses are wrapped in, e.g. "students".
	Plural string
	// Table is the backing SQL table.
	Table string
	// Path is the canonical collection URL, e.g. "/api/students".
	Path string
	// Fields lists every writable column in declaration order. The "id"
	// column is implicit and never writable.
	Fields []Field
	// SearchColumns are matched by the q filter on list requests.
	SearchColumns []string
	// ConflictMessage is returned when a uniqueness constraint fails.
	ConflictMessage string
}

// IDColumn is the store-assigned primary key shared by every table.
const IDColumn = "id"

// Field looks up a field by name.
func (k Kind) Field(name string) (Field, bool) {
	for _, f := range k.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Columns returns the id column followed by every field column, in the
// order records scan them.
func (k Kind) Columns() []string {
	cols := make([]string, 0, len(k.Fields)+1)
	cols = append(cols, IDColumn)
	for _, f := range k.Fields {
		cols = append(cols, f.Name)
	}
	return cols
}

// Filter keeps only the allow-listed keys of a payload. Unknown keys are
// dropped silently.
func (k Kind) Filter(payload map[string]any) map[string]any {
	filtered := make(map[string]any, len(payload))
	for _, f := range k.Fields {
		if v, ok := payload[f.Name]; ok {
			filtered[f.Name] = v
		}
	}
	return filtered
}

// NotFoundMessage is the client-facing 404 message, e.g. "Student not found".
func (k Kind) NotFoundMessage() string {
	return k.Label + " not found"
}

// DeletedMessage is the client-facing delete confirmation.
func (k Kind) DeletedMessage() string {
	return k.Label + " deleted"
}

// Values holds validated, coerced field values keyed by column name. Only
// allow-listed columns ever appear in it.
type Values map[string]any

// Columns returns the names present in v, ordered by the kind's field table.
func (v Values) Columns(k Kind) []string {
	cols := make([]string, 0, len(v))
	for _, f := range k.Fields {
		if _, ok := v[f.Name]; ok {
			cols = append(cols, f.Name)
		}
	}
	return cols
}

// Nullable reports whether the field's column accepts NULL. Only optional
// date columns do; every other column is NOT NULL with a default.
func (f Field) Nullable() bool {
	return !f.Required && f.Type == FieldDate
}
