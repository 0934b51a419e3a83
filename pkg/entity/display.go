package entity

// FilterRef names a record field offered as an equality filter in a list
// view, with its user-facing label.
type FilterRef struct {
	Field string `yaml:"field" json:"field"`
	Label string `yaml:"label" json:"label"`
}

// DisplayConfig is presentation-only metadata for one entity's list view:
// which fields are shown, searched, and filtered. The engine reads it but
// never mutates it.
type DisplayConfig struct {
	Title           string     `yaml:"title" json:"title"`
	ItemName        string     `yaml:"item_name" json:"item_name"`
	TitleField      string     `yaml:"title_field" json:"title_field"`
	KeyFields       []string   `yaml:"key_fields,omitempty" json:"key_fields,omitempty"`
	DetailFields    []string   `yaml:"detail_fields,omitempty" json:"detail_fields,omitempty"`
	SearchFields    []string   `yaml:"search_fields,omitempty" json:"search_fields,omitempty"`
	PrimaryFilter   *FilterRef `yaml:"primary_filter,omitempty" json:"primary_filter,omitempty"`
	SecondaryFilter *FilterRef `yaml:"secondary_filter,omitempty" json:"secondary_filter,omitempty"`
}

// FormField describes one input of a create/edit form.
type FormField struct {
	Key         string    `yaml:"key" json:"key"`
	Type        FieldType `yaml:"type" json:"type"`
	Label       string    `yaml:"label" json:"label"`
	Required    bool      `yaml:"required,omitempty" json:"required,omitempty"`
	Options     []string  `yaml:"options,omitempty" json:"options,omitempty"`
	MinValue    *float64  `yaml:"min_value,omitempty" json:"min_value,omitempty"`
	Default     any       `yaml:"default,omitempty" json:"default,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// FormConfig lists the inputs of a create/edit form in render order. When an
// entity declares no FormConfig the controller derives one from its schema.
type FormConfig struct {
	Fields []FormField `yaml:"fields" json:"fields"`
}
