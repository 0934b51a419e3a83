package entity

// FieldType identifies the declared type of a schema field. The set is
// closed: the field mapper dispatches on these values and rejects anything
// else at schema-validation time.
type FieldType string

// Recognized field types.
const (
	TypeString      FieldType = "string"
	TypeTextarea    FieldType = "textarea"
	TypeNumber      FieldType = "number"
	TypeCurrency    FieldType = "currency"
	TypeBoolean     FieldType = "boolean"
	TypeDate        FieldType = "date"
	TypeDateTime    FieldType = "datetime"
	TypeSelect      FieldType = "select"
	TypeMultiSelect FieldType = "multiselect"
	TypeEmail       FieldType = "email"
	TypeURL         FieldType = "url"
	TypePhone       FieldType = "phone"
)

// validFieldTypes is the set of recognized field types.
var validFieldTypes = map[FieldType]bool{
	TypeString:      true,
	TypeTextarea:    true,
	TypeNumber:      true,
	TypeCurrency:    true,
	TypeBoolean:     true,
	TypeDate:        true,
	TypeDateTime:    true,
	TypeSelect:      true,
	TypeMultiSelect: true,
	TypeEmail:       true,
	TypeURL:         true,
	TypePhone:       true,
}

// IsValidFieldType reports whether ft is a recognized field type.
func IsValidFieldType(ft FieldType) bool {
	return validFieldTypes[ft]
}

// FieldSpec declares the behavior of a single schema field: its type, whether
// it is required, the allowed options for select kinds, and numeric bounds.
type FieldSpec struct {
	Type        FieldType `yaml:"type" json:"type"`
	Label       string    `yaml:"label,omitempty" json:"label,omitempty"`
	Required    bool      `yaml:"required,omitempty" json:"required,omitempty"`
	Options     []string  `yaml:"options,omitempty" json:"options,omitempty"`
	Default     any       `yaml:"default,omitempty" json:"default,omitempty"`
	Min         *float64  `yaml:"min,omitempty" json:"min,omitempty"`
	Max         *float64  `yaml:"max,omitempty" json:"max,omitempty"`
	Step        *float64  `yaml:"step,omitempty" json:"step,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// Field is a named FieldSpec. Schemas carry fields as an ordered list so
// form rendering and validation reporting follow declaration order.
type Field struct {
	Name      string `yaml:"name" json:"name"`
	FieldSpec `yaml:",inline"`
}

// Schema is the declarative definition of one entity type. IDPrefix drives
// record ID generation ("RFI" produces "RFI-001", "RFI-002", ...).
// A Schema is immutable once its entity type is in use.
type Schema struct {
	IDPrefix string  `yaml:"id_prefix" json:"id_prefix"`
	Fields   []Field `yaml:"fields" json:"fields"`
}

// Spec returns the FieldSpec declared under name, and whether it exists.
func (s Schema) Spec(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.FieldSpec, true
		}
	}
	return FieldSpec{}, false
}

// FieldNames returns the field names in declaration order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Check verifies that the schema itself is well-formed: a non-empty ID
// prefix, unique field names, recognized field types, and options present
// on select and multiselect fields.
func (s Schema) Check() error {
	if s.IDPrefix == "" {
		return ErrEmptyIDPrefix
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return ErrEmptyFieldName
		}
		if seen[f.Name] {
			return ErrDuplicateField
		}
		seen[f.Name] = true
		if !IsValidFieldType(f.Type) {
			return ErrUnknownFieldType
		}
		if (f.Type == TypeSelect || f.Type == TypeMultiSelect) && len(f.Options) == 0 {
			return ErrMissingOptions
		}
	}
	return nil
}
