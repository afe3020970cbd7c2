package dataset

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Collection is an immutable, ordered sequence of records of one category.
type Collection[T Record] struct {
	name    string
	records []T
}

// NewCollection wraps already validated records, e.g. fixtures built in code.
func NewCollection[T Record](name string, records []T) Collection[T] {
	return Collection[T]{name: name, records: slices.Clone(records)}
}

func (c Collection[T]) Name() string { return c.name }
func (c Collection[T]) Len() int     { return len(c.records) }

// Records returns a copy of the records in load order.
func (c Collection[T]) Records() []T {
	return slices.Clone(c.records)
}

// Load reads FileName(name) from src and parses it with Parse.
// The dataset is read once; failures are returned as-is and never retried.
func Load[T Record](ctx context.Context, src Source, name string) (Collection[T], error) {
	if src == nil {
		return Collection[T]{}, ErrNilSource
	}

	rc, err := src.Open(ctx, FileName(name))
	if err != nil {
		return Collection[T]{}, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Collection[T]{}, fmt.Errorf("%w: %s: %v", ErrFailedToReadData, name, err)
	}

	return Parse[T](name, data)
}

// Parse decodes a YAML sequence of mappings into records of type T.
// Each mapping must carry exactly the keys returned by RequiredFields[T].
// An empty document yields an empty collection.
func Parse[T Record](name string, data []byte) (Collection[T], error) {
	required, err := RequiredFields[T]()
	if err != nil {
		return Collection[T]{}, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Collection[T]{}, fmt.Errorf("%w: %s: %v", ErrMalformedDataset, name, err)
	}
	if len(doc.Content) == 0 {
		return Collection[T]{name: name}, nil
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return Collection[T]{}, fmt.Errorf("%w: %s: top level must be a list of records", ErrMalformedDataset, name)
	}

	records := make([]T, 0, len(seq.Content))
	for i, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return Collection[T]{}, &SchemaError{Dataset: name, Index: i, Reason: "record is not a mapping"}
		}

		keys, label := mappingKeys(item)
		missing, extra := diffFields(required, keys)
		if len(missing) > 0 || len(extra) > 0 {
			return Collection[T]{}, &SchemaError{
				Dataset: name,
				Index:   i,
				Record:  label,
				Missing: missing,
				Extra:   extra,
			}
		}

		var rec T
		if err := item.Decode(&rec); err != nil {
			return Collection[T]{}, &SchemaError{Dataset: name, Index: i, Record: label, Reason: err.Error()}
		}
		if n, ok := any(&rec).(normalizer); ok {
			n.normalize()
		}
		records = append(records, rec)
	}

	return Collection[T]{name: name, records: records}, nil
}

// RequiredFields lists the yaml keys declared by T, sorted.
// Fields tagged `yaml:"-"` are derived and excluded.
func RequiredFields[T Record]() ([]string, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotRecordStruct, t)
	}

	fields := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		switch key {
		case "-":
			continue
		case "":
			key = strings.ToLower(f.Name)
		}
		fields = append(fields, key)
	}
	slices.Sort(fields)
	return fields, nil
}

// mappingKeys returns the keys of a mapping node and the scalar value of its
// "name" key, used to identify the record in errors.
func mappingKeys(n *yaml.Node) ([]string, string) {
	keys := make([]string, 0, len(n.Content)/2)
	var label string
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i].Value
		keys = append(keys, k)
		if k == "name" && n.Content[i+1].Kind == yaml.ScalarNode {
			label = n.Content[i+1].Value
		}
	}
	return keys, label
}

func diffFields(required, actual []string) (missing, extra []string) {
	for _, f := range required {
		if !slices.Contains(actual, f) {
			missing = append(missing, f)
		}
	}
	for _, f := range actual {
		if !slices.Contains(required, f) && !slices.Contains(extra, f) {
			extra = append(extra, f)
		}
	}
	slices.Sort(extra)
	return missing, extra
}
