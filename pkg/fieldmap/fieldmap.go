// Package fieldmap translates a schema field's declared type into parse,
// format, and default behavior through one closed dispatch table. It is the
// single extension point for new field types and carries no dependency on
// any rendering toolkit.
package fieldmap

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

// DateFormat is the wire format for date values.
const DateFormat = "2006-01-02"

// Codec bundles the three behaviors of one field type. Parse never fails:
// unparseable input coerces to the type's default, matching how form
// widgets behave. Typed values stay JSON-friendly (string, float64, bool,
// []string) so records round-trip through any storage backend.
type Codec struct {
	Parse   func(spec entity.FieldSpec, raw string) any
	Format  func(spec entity.FieldSpec, v any) string
	Default func(spec entity.FieldSpec) any
}

// codecs is the closed dispatch table. Adding a field type means adding an
// entry here and to entity's validFieldTypes, nothing else.
var codecs = map[entity.FieldType]Codec{
	entity.TypeString:      {parseString, formatString, defaultString},
	entity.TypeTextarea:    {parseString, formatString, defaultString},
	entity.TypeEmail:       {parseString, formatString, defaultString},
	entity.TypeURL:         {parseString, formatString, defaultString},
	entity.TypePhone:       {parseString, formatString, defaultString},
	entity.TypeNumber:      {parseNumber, formatNumber, defaultNumber},
	entity.TypeCurrency:    {parseCurrency, formatCurrency, defaultCurrency},
	entity.TypeBoolean:     {parseBoolean, formatBoolean, defaultBoolean},
	entity.TypeSelect:      {parseSelect, formatString, defaultSelect},
	entity.TypeMultiSelect: {parseMultiSelect, formatMultiSelect, defaultMultiSelect},
	entity.TypeDate:        {parseDate, formatString, defaultDate},
	entity.TypeDateTime:    {parseDateTime, formatString, defaultDateTime},
}

// Parse coerces raw form input into the typed value for the field.
// Unrecognized field types fall back to string passthrough.
func Parse(spec entity.FieldSpec, raw string) any {
	if c, ok := codecs[spec.Type]; ok {
		return c.Parse(spec, raw)
	}
	return raw
}

// Format renders a typed value as its display string.
func Format(spec entity.FieldSpec, v any) string {
	if c, ok := codecs[spec.Type]; ok {
		return c.Format(spec, v)
	}
	return stringify(v)
}

// Default returns the field's default value: the schema-declared default
// when present, otherwise the type default.
func Default(spec entity.FieldSpec) any {
	if c, ok := codecs[spec.Type]; ok {
		return c.Default(spec)
	}
	return ""
}

// ParseInputs builds a candidate record from raw form inputs, parsing each
// key declared in the schema through its codec. Keys absent from raw are
// skipped; keys absent from the schema pass through as plain strings, in
// keeping with the permissive record model.
func ParseInputs(schema entity.Schema, raw map[string]string) entity.Record {
	rec := make(entity.Record, len(raw))
	for key, val := range raw {
		if spec, ok := schema.Spec(key); ok {
			rec[key] = Parse(spec, val)
		} else {
			rec[key] = val
		}
	}
	return rec
}

// DefaultRecord returns a record carrying every schema field's default,
// used to prefill an empty create form.
func DefaultRecord(schema entity.Schema) entity.Record {
	rec := make(entity.Record, len(schema.Fields))
	for _, f := range schema.Fields {
		rec[f.Name] = Default(f.FieldSpec)
	}
	return rec
}

// String kinds: passthrough.

func parseString(_ entity.FieldSpec, raw string) any { return raw }

func formatString(_ entity.FieldSpec, v any) string { return stringify(v) }

func defaultString(spec entity.FieldSpec) any {
	if s, ok := spec.Default.(string); ok {
		return s
	}
	return ""
}

// Numbers.

func parseNumber(spec entity.FieldSpec, raw string) any {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return defaultNumber(spec)
	}
	return clamp(spec, n)
}

func formatNumber(_ entity.FieldSpec, v any) string {
	if n, ok := toFloat(v); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return stringify(v)
}

func defaultNumber(spec entity.FieldSpec) any {
	if n, ok := toFloat(spec.Default); ok {
		return clamp(spec, n)
	}
	if spec.Min != nil && *spec.Min > 0 {
		return *spec.Min
	}
	return float64(0)
}

// Currency: a number with a floor of 0 and fixed 2-decimal display.

func parseCurrency(spec entity.FieldSpec, raw string) any {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(raw, "$"), ",", ""))
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return defaultCurrency(spec)
	}
	if n < 0 {
		n = 0
	}
	return clamp(spec, n)
}

func formatCurrency(_ entity.FieldSpec, v any) string {
	if n, ok := toFloat(v); ok {
		return strconv.FormatFloat(n, 'f', 2, 64)
	}
	return stringify(v)
}

func defaultCurrency(spec entity.FieldSpec) any {
	if n, ok := toFloat(spec.Default); ok && n >= 0 {
		return clamp(spec, n)
	}
	return float64(0)
}

// Booleans: truthy/falsy coercion.

var truthy = map[string]bool{
	"true": true, "1": true, "yes": true, "y": true, "on": true,
}

func parseBoolean(_ entity.FieldSpec, raw string) any {
	return truthy[strings.ToLower(strings.TrimSpace(raw))]
}

func formatBoolean(_ entity.FieldSpec, v any) string {
	if b, ok := v.(bool); ok && b {
		return "Yes"
	}
	return "No"
}

func defaultBoolean(spec entity.FieldSpec) any {
	if b, ok := spec.Default.(bool); ok {
		return b
	}
	return false
}

// Select: the value must be one of the declared options; anything else
// coerces to the first option.

func parseSelect(spec entity.FieldSpec, raw string) any {
	for _, opt := range spec.Options {
		if raw == opt {
			return raw
		}
	}
	return defaultSelect(spec)
}

func defaultSelect(spec entity.FieldSpec) any {
	if s, ok := spec.Default.(string); ok {
		for _, opt := range spec.Options {
			if s == opt {
				return s
			}
		}
	}
	if len(spec.Options) > 0 {
		return spec.Options[0]
	}
	return ""
}

// Multiselect: any subset of the options, empty subset allowed. Raw input
// is comma-separated.

func parseMultiSelect(spec entity.FieldSpec, raw string) any {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, opt := range spec.Options {
			if part == opt {
				out = append(out, part)
				break
			}
		}
	}
	return out
}

func formatMultiSelect(_ entity.FieldSpec, v any) string {
	switch vals := v.(type) {
	case []string:
		return strings.Join(vals, ", ")
	case []any:
		parts := make([]string, len(vals))
		for i, x := range vals {
			parts[i] = stringify(x)
		}
		return strings.Join(parts, ", ")
	default:
		return stringify(v)
	}
}

func defaultMultiSelect(_ entity.FieldSpec) any { return []string{} }

// Dates and datetimes. Absent or unparseable input defaults to today/now.

func parseDate(spec entity.FieldSpec, raw string) any {
	t, err := time.Parse(DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return defaultDate(spec)
	}
	return t.Format(DateFormat)
}

func defaultDate(spec entity.FieldSpec) any {
	if s, ok := spec.Default.(string); ok {
		if t, err := time.Parse(DateFormat, s); err == nil {
			return t.Format(DateFormat)
		}
	}
	return time.Now().Format(DateFormat)
}

func parseDateTime(spec entity.FieldSpec, raw string) any {
	dt, err := strfmt.ParseDateTime(strings.TrimSpace(raw))
	if err != nil {
		return defaultDateTime(spec)
	}
	return time.Time(dt).Format(time.RFC3339)
}

func defaultDateTime(spec entity.FieldSpec) any {
	if s, ok := spec.Default.(string); ok {
		if dt, err := strfmt.ParseDateTime(s); err == nil {
			return time.Time(dt).Format(time.RFC3339)
		}
	}
	return time.Now().Format(time.RFC3339)
}

// Shared helpers.

func clamp(spec entity.FieldSpec, n float64) float64 {
	if spec.Min != nil && n < *spec.Min {
		n = *spec.Min
	}
	if spec.Max != nil && n > *spec.Max {
		n = *spec.Max
	}
	return n
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
