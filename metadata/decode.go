package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var null = []byte("null")

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), null)
}

// decodeObject decodes a JSON object into dst after checking that every
// required member is present and not null. dst must be a pointer to an alias
// type so the caller's UnmarshalJSON is not re-entered.
func decodeObject(data []byte, typeName string, dst any, required ...string) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return &DecodeError{Type: typeName, Reason: "expected an object", Err: err}
	}

	for _, name := range required {
		raw, ok := members[name]
		if !ok || isNull(raw) {
			return &DecodeError{Type: typeName, Field: name, Reason: "missing required field"}
		}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return &DecodeError{Type: typeName, Field: fieldOf(err), Reason: "invalid field", Err: err}
	}
	return nil
}

// fieldOf extracts the offending member from a json error when it is known
func fieldOf(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.Type
	}
	return ""
}

// decodeLenient decodes a JSON array, dropping entries that fail to decode
func decodeLenient[T any](data []byte) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	items := make([]T, 0, len(raw))
	for _, entry := range raw {
		if isNull(entry) {
			continue
		}
		var item T
		if err := json.Unmarshal(entry, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// vocabulary is a closed set of string values
type vocabulary[T ~string] struct {
	name   string
	values []T
	index  map[T]struct{}
}

func newVocabulary[T ~string](name string, values ...T) *vocabulary[T] {
	index := make(map[T]struct{}, len(values))
	for _, v := range values {
		index[v] = struct{}{}
	}
	return &vocabulary[T]{name: name, values: values, index: index}
}

func (v *vocabulary[T]) contains(value T) bool {
	_, ok := v.index[value]
	return ok
}

func (v *vocabulary[T]) all() []T {
	return slices.Clone(v.values)
}

func (v *vocabulary[T]) parse(s string) (T, error) {
	if value := T(s); v.contains(value) {
		return value, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %q is not a valid %s", ErrUnknownValue, s, v.name)
}

// tryParse resolves s, returning the zero value for unknown strings
func (v *vocabulary[T]) tryParse(s string) T {
	value, err := v.parse(s)
	if err != nil {
		var zero T
		return zero
	}
	return value
}

func (v *vocabulary[T]) marshal(value T) ([]byte, error) {
	if !v.contains(value) {
		return nil, &ValidationError{Field: v.name, Reason: fmt.Sprintf("has unknown value %q", string(value))}
	}
	return []byte(value), nil
}

// unmarshal rejects the empty string like any other unknown value; optional
// members are left out of the payload, not sent empty
func (v *vocabulary[T]) unmarshal(dst *T, text []byte) error {
	value, err := v.parse(string(text))
	if err != nil {
		return err
	}
	*dst = value
	return nil
}

// validateEnum checks an optional enum member of a DTO
func validateEnum[T interface {
	~string
	Valid() bool
}](typeName, field string, value T) error {
	if value != "" && !value.Valid() {
		return &ValidationError{Type: typeName, Field: field, Reason: fmt.Sprintf("has unknown value %q", string(value))}
	}
	return nil
}

// requireField checks a mandatory string member of a DTO
func requireField(typeName, field, value string) error {
	if value == "" {
		return &ValidationError{Type: typeName, Field: field, Reason: "is required"}
	}
	return nil
}

// requirePair enforces that an identifier and its scheme are set together
func requirePair(typeName, idField, id, schemeField, scheme string) error {
	switch {
	case id != "" && scheme == "":
		return &ValidationError{Type: typeName, Field: schemeField, Reason: "is required when " + idField + " is set"}
	case id == "" && scheme != "":
		return &ValidationError{Type: typeName, Field: schemeField, Reason: "cannot be used without " + idField}
	}
	return nil
}

// validateEach runs Validate on every element and stops at the first failure
func validateEach[T interface{ Validate() error }](items []T) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Year is a four digit year. The API sends it either as a number or as a
// numeric string; it is always written back as a number.
type Year int

// UnmarshalJSON accepts 2016 and "2016"
func (y *Year) UnmarshalJSON(data []byte) error {
	n, err := flexibleNumber(data)
	if err != nil {
		return err
	}
	*y = Year(n)
	return nil
}

// Coordinate is a latitude or longitude in decimal degrees. Like Year it is
// accepted as a number or a numeric string.
type Coordinate float64

// UnmarshalJSON accepts 52.5 and "52.5"
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	text := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", data, err)
	}
	*c = Coordinate(f)
	return nil
}

func flexibleNumber(data []byte) (int, error) {
	if isNull(data) {
		return 0, nil
	}
	text := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid number %s: %w", data, err)
	}
	return n, nil
}
