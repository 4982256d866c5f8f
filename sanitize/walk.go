package sanitize

import (
	"reflect"
	"strings"
)

// DescriptionTextKey is the key added next to a "description" entry of a
// map node, holding the plain-text variant of the description.
const DescriptionTextKey = "descriptionText"

var stringType = reflect.TypeFor[string]()

// identity identifies a composite node by address rather than by value.
// The type is part of the key because a struct and its first field share
// an address, and the length because sub-slices share a backing array.
// Sub-slices with a different offset or length are distinct nodes, so
// elements they share with another slice are walked again.
type identity struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// Walker applies a Sanitizer to every string reachable from a root value.
//
// Struct fields, map values, slice and array elements and interface
// contents are all visited. Composite nodes reachable through several paths
// (shared sub-objects or cycles) are entered once. Strings whose governing
// key is "description" (any case) additionally get a plain-text variant:
// for struct fields it is recorded against the field's address and can be
// read back with Text, for map nodes it is stored under DescriptionTextKey.
//
// A Walker is not safe for concurrent use.
type Walker struct {
	s       *Sanitizer
	skip    map[string]struct{}
	visited map[identity]struct{}
	texts   map[*string]string
	leaves  int
}

// WalkOption configures a Walker.
type WalkOption func(*Walker)

// WithSkip excludes struct fields and map entries with the given keys, and
// everything below them, from the walk.
func WithSkip(keys ...string) WalkOption {
	return func(w *Walker) {
		for _, k := range keys {
			w.skip[k] = struct{}{}
		}
	}
}

// NewWalker returns a Walker that sanitizes with s.
func NewWalker(s *Sanitizer, opts ...WalkOption) *Walker {
	w := &Walker{
		s:       s,
		skip:    make(map[string]struct{}),
		visited: make(map[identity]struct{}),
		texts:   make(map[*string]string),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk sanitizes root in place. Root must be a pointer, map or slice for
// the replacements to be observable by the caller.
func (w *Walker) Walk(root any) {
	if root == nil {
		return
	}
	w.walk("", reflect.ValueOf(root), false)
}

// Text returns the plain-text variant recorded for the description field
// at addr.
func (w *Walker) Text(addr *string) (string, bool) {
	text, ok := w.texts[addr]
	return text, ok
}

// Leaves returns the number of string leaves visited so far. A leaf
// reached through two overlapping slices of one array is counted, and
// sanitized, once per slice; sanitizing is idempotent so the stored value
// is the same.
func (w *Walker) Leaves() int {
	return w.leaves
}

func (w *Walker) walk(key string, v reflect.Value, inDesc bool) {
	inDesc = inDesc || isDescription(key)
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() || !w.enter(v, 0) {
			return
		}
		w.walk(key, v.Elem(), inDesc)
	case reflect.Interface:
		if v.IsNil() {
			return
		}
		w.walkInterface(key, v, inDesc)
	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() || w.skipped(f.Name) {
				continue
			}
			w.walk(f.Name, v.Field(i), inDesc)
		}
	case reflect.Map:
		if v.IsNil() || !w.enter(v, 0) {
			return
		}
		w.walkMap(v, inDesc)
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 || !w.enter(v, v.Len()) {
			return
		}
		for i := range v.Len() {
			w.walk(key, v.Index(i), inDesc)
		}
	case reflect.Array:
		for i := range v.Len() {
			w.walk(key, v.Index(i), inDesc)
		}
	case reflect.String:
		var addr *string
		if v.CanAddr() && v.Type() == stringType {
			addr = v.Addr().Interface().(*string)
		}
		rich, _ := w.leaf(v.String(), addr, inDesc)
		if v.CanSet() {
			v.SetString(rich)
		}
	}
}

// walkInterface handles values held in interfaces. Strings, structs and
// arrays held by value are not addressable, so they are copied, walked and
// stored back.
func (w *Walker) walkInterface(key string, v reflect.Value, inDesc bool) {
	elem := v.Elem()
	switch elem.Kind() {
	case reflect.String:
		rich, _ := w.leaf(elem.String(), nil, inDesc)
		if v.CanSet() {
			v.Set(stringOf(elem.Type(), rich))
		}
	case reflect.Struct, reflect.Array:
		cp := reflect.New(elem.Type()).Elem()
		cp.Set(elem)
		w.walk(key, cp, inDesc)
		if v.CanSet() {
			v.Set(cp)
		}
	default:
		w.walk(key, elem, inDesc)
	}
}

func (w *Walker) walkMap(m reflect.Value, inDesc bool) {
	var (
		plain    string
		hasPlain bool
	)
	for _, k := range m.MapKeys() {
		name := ""
		if k.Kind() == reflect.String {
			name = k.String()
		}
		if w.skipped(name) {
			continue
		}
		desc := inDesc || isDescription(name)
		val := m.MapIndex(k)
		actual := val
		if actual.Kind() == reflect.Interface && !actual.IsNil() {
			actual = actual.Elem()
		}
		switch actual.Kind() {
		case reflect.String:
			rich, text := w.leaf(actual.String(), nil, desc)
			m.SetMapIndex(k, stringOf(actual.Type(), rich))
			if isDescription(name) {
				plain, hasPlain = text, true
			}
		case reflect.Struct, reflect.Array:
			cp := reflect.New(actual.Type()).Elem()
			cp.Set(actual)
			w.walk(name, cp, desc)
			m.SetMapIndex(k, cp)
		default:
			w.walk(name, actual, desc)
		}
	}
	if hasPlain && m.Type().Key() == stringType && stringType.AssignableTo(m.Type().Elem()) {
		m.SetMapIndex(reflect.ValueOf(DescriptionTextKey), reflect.ValueOf(plain))
	}
}

// leaf sanitizes one string. Description strings also produce their plain
// variant, recorded against addr when the string is a struct field.
func (w *Walker) leaf(s string, addr *string, desc bool) (rich, plain string) {
	w.leaves++
	rich = w.s.Rich(s)
	if !desc {
		return rich, ""
	}
	plain = w.s.Plain(s)
	if addr != nil {
		w.texts[addr] = plain
	}
	return rich, plain
}

// enter reports whether v is seen for the first time, marking it visited.
func (w *Walker) enter(v reflect.Value, n int) bool {
	id := identity{ptr: v.Pointer(), typ: v.Type(), len: n}
	if _, ok := w.visited[id]; ok {
		return false
	}
	w.visited[id] = struct{}{}
	return true
}

func (w *Walker) skipped(key string) bool {
	if key == "" {
		return false
	}
	_, ok := w.skip[key]
	return ok
}

func isDescription(key string) bool {
	return strings.EqualFold(key, "description")
}

func stringOf(t reflect.Type, s string) reflect.Value {
	v := reflect.New(t).Elem()
	v.SetString(s)
	return v
}
