package treeopt

import (
	"fmt"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map"
	"gopkg.in/yaml.v3"

	"github.com/napalu/treeopt/errs"
)

// FlagStore maps fully-qualified option paths to their parsed values. Paths
// keep the order in which the parser first wrote them.
type FlagStore struct {
	values *orderedmap.OrderedMap
}

func newFlagStore() *FlagStore {
	return &FlagStore{values: orderedmap.New()}
}

func (s *FlagStore) set(path string, v Value) {
	s.values.Set(path, v)
}

// Get returns the value stored at path
func (s *FlagStore) Get(path string) (Value, bool) {
	v, ok := s.values.Get(path)
	if !ok {
		return nil, false
	}

	return v.(Value), true
}

func (s *FlagStore) Has(path string) bool {
	_, ok := s.values.Get(path)
	return ok
}

func (s *FlagStore) Len() int {
	return s.values.Len()
}

// Paths returns every stored path in order
func (s *FlagStore) Paths() []string {
	paths := make([]string, 0, s.values.Len())
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		paths = append(paths, pair.Key.(string))
	}

	return paths
}

// Each calls fn for every path in order until fn returns false
func (s *FlagStore) Each(fn func(path string, v Value) bool) {
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key.(string), pair.Value.(Value)) {
			return
		}
	}
}

// Map returns an unordered copy of the store
func (s *FlagStore) Map() map[string]Value {
	m := make(map[string]Value, s.values.Len())
	s.Each(func(path string, v Value) bool {
		m[path] = v
		return true
	})

	return m
}

func lookup[T Value](s *FlagStore, path string) (T, error) {
	var zero T
	v, ok := s.Get(path)
	if !ok {
		return zero, errs.ErrPathNotFound.WithArgs(path)
	}
	t, ok := v.(T)
	if !ok {
		return zero, errs.ErrTypeMismatch.WithArgs(path, v.Kind(), zero.Kind())
	}

	return t, nil
}

func (s *FlagStore) GetBool(path string) (bool, error) {
	v, err := lookup[Bool](s, path)
	return bool(v), err
}

func (s *FlagStore) GetInt(path string) (int64, error) {
	v, err := lookup[Int](s, path)
	return int64(v), err
}

func (s *FlagStore) GetUint(path string) (uint64, error) {
	v, err := lookup[Uint](s, path)
	return uint64(v), err
}

func (s *FlagStore) GetFloat(path string) (float64, error) {
	v, err := lookup[Float](s, path)
	return float64(v), err
}

func (s *FlagStore) GetString(path string) (string, error) {
	v, err := lookup[Str](s, path)
	return string(v), err
}

// Boolean returns the Bool at path. It panics when path is missing or holds another kind.
func (s *FlagStore) Boolean(path string) bool {
	v, err := s.GetBool(path)
	must(err)

	return v
}

// Integer returns the Int at path. It panics when path is missing or holds another kind.
func (s *FlagStore) Integer(path string) int64 {
	v, err := s.GetInt(path)
	must(err)

	return v
}

// UnsignedInteger returns the Uint at path. It panics when path is missing or holds another kind.
func (s *FlagStore) UnsignedInteger(path string) uint64 {
	v, err := s.GetUint(path)
	must(err)

	return v
}

// Real returns the Float at path. It panics when path is missing or holds another kind.
func (s *FlagStore) Real(path string) float64 {
	v, err := s.GetFloat(path)
	must(err)

	return v
}

// String returns the Str at path. It panics when path is missing or holds another kind.
func (s *FlagStore) String(path string) string {
	v, err := s.GetString(path)
	must(err)

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// MarshalYAML renders the store as a mapping of path to typed scalar, in path order
func (s *FlagStore) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	s.Each(func(path string, v Value) bool {
		tag, text := yamlScalar(v)
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: path},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text},
		)
		return true
	})

	return node, nil
}

var valueType = reflect.TypeOf((*Value)(nil)).Elem()

// Bind copies the values stored under prefix into the fields of the struct
// target points to. A field is matched to the path prefix.name, where name is
// the field's `flag` tag or DefaultNameConverter applied to the field name.
// Fields tagged `flag:"-"` and unexported fields are skipped. Nested structs
// bind to the sub-path named after their field.
func (s *FlagStore) Bind(prefix string, target any) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errs.ErrBindTarget.WithArgs(fmt.Sprintf("%T", target))
	}

	return s.bindStruct(prefix, rv.Elem())
}

func (s *FlagStore) bindStruct(prefix string, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("flag")
		if name == "-" {
			continue
		}
		if name == "" {
			name = DefaultNameConverter(field.Name)
		}
		path := joinPath(prefix, name)
		fv := rv.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := s.bindStruct(path, fv); err != nil {
				return err
			}
			continue
		}

		v, ok := s.Get(path)
		if !ok {
			return errs.ErrPathNotFound.WithArgs(path)
		}
		if err := assignValue(fv, v, path); err != nil {
			return err
		}
	}

	return nil
}

func assignValue(fv reflect.Value, v Value, path string) error {
	if fv.Type() == valueType {
		fv.Set(reflect.ValueOf(v))
		return nil
	}

	mismatch := func() error {
		return errs.ErrTypeMismatch.WithArgs(path, v.Kind(), fv.Type())
	}

	switch fv.Kind() {
	case reflect.Bool:
		b, ok := v.(Bool)
		if !ok {
			return mismatch()
		}
		fv.SetBool(bool(b))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := v.(Int)
		if !ok || fv.OverflowInt(int64(n)) {
			return mismatch()
		}
		fv.SetInt(int64(n))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := v.(Uint)
		if !ok || fv.OverflowUint(uint64(n)) {
			return mismatch()
		}
		fv.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		f, ok := v.(Float)
		if !ok || fv.OverflowFloat(float64(f)) {
			return mismatch()
		}
		fv.SetFloat(float64(f))
	case reflect.String:
		str, ok := v.(Str)
		if !ok {
			return mismatch()
		}
		fv.SetString(string(str))
	default:
		return errs.ErrBindTarget.WithArgs(fv.Type())
	}

	return nil
}
