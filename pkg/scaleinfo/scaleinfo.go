// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package scaleinfo describes the shape of SCALE encoded types so that
// runtime types can be introspected and matched against chain metadata.
package scaleinfo

import (
	"fmt"
	"reflect"
	"strings"
)

// Primitive is a primitive SCALE type.
type Primitive string

// Primitive types.
const (
	Bool Primitive = "bool"
	Str  Primitive = "str"
	U8   Primitive = "u8"
	U16  Primitive = "u16"
	U32  Primitive = "u32"
	U64  Primitive = "u64"
	U128 Primitive = "u128"
	I8   Primitive = "i8"
	I16  Primitive = "i16"
	I32  Primitive = "i32"
	I64  Primitive = "i64"
)

// Def is the definition of a type. It is one of
// DefPrimitive, DefArray, DefSequence, DefComposite, DefVariant or DefCompact,
// or nil for opaque types.
type Def interface {
	isDef()
}

// DefPrimitive is a primitive type definition.
type DefPrimitive struct {
	Primitive Primitive
}

// DefArray is a fixed length array definition.
type DefArray struct {
	Len  uint32
	Type Type
}

// DefSequence is a compact length prefixed sequence definition.
type DefSequence struct {
	Type Type
}

// DefComposite is a struct or tuple definition.
type DefComposite struct {
	Fields []Field
}

// DefVariant is an enum definition.
type DefVariant struct {
	Variants []Variant
}

// DefCompact is a compact encoded integer definition.
type DefCompact struct {
	Type Type
}

func (DefPrimitive) isDef() {}
func (DefArray) isDef()     {}
func (DefSequence) isDef()  {}
func (DefComposite) isDef() {}
func (DefVariant) isDef()   {}
func (DefCompact) isDef()   {}

// Field is a field of a composite type or of a variant.
type Field struct {
	Name     string
	TypeName string
	Type     Type
}

// Variant is a variant of an enum type.
type Variant struct {
	Name   string
	Index  uint8
	Fields []Field
}

// Type describes a type.
type Type struct {
	// Path is the fully qualified path of a named type, empty for anonymous types.
	Path []string
	// Def is nil if the type has no SCALE shape, such as interfaces and maps,
	// or if it refers back to a type being described.
	Def Def
}

// IsOpaque returns true if the type is only known by its path.
func (t Type) IsOpaque() bool {
	return t.Def == nil
}

// PathString returns the path joined with `::`.
func (t Type) PathString() string {
	return strings.Join(t.Path, "::")
}

func (t Type) String() string {
	switch def := t.Def.(type) {
	case DefPrimitive:
		return string(def.Primitive)
	case DefArray:
		return fmt.Sprintf("[%s; %d]", def.Type, def.Len)
	case DefSequence:
		return fmt.Sprintf("Vec<%s>", def.Type)
	case DefCompact:
		return fmt.Sprintf("Compact<%s>", def.Type)
	}
	if len(t.Path) > 0 {
		return t.PathString()
	}
	return "()"
}

// TypeInfo is implemented by types describing their own shape.
type TypeInfo interface {
	TypeInfo() Type
}

var typeInfoType = reflect.TypeOf((*TypeInfo)(nil)).Elem()

// Of returns the type description of T.
// It uses the TypeInfo implementation of T or *T if any, and otherwise
// derives it from primitives, arrays, slices and exported struct fields.
// Interfaces, maps, channels and functions are described as opaque types,
// and so are recursive references to a named type being described.
func Of[T any]() Type {
	return typeOf(reflect.TypeOf((*T)(nil)).Elem(), make(map[reflect.Type]struct{}))
}

func typeOf(t reflect.Type, visiting map[reflect.Type]struct{}) Type {
	if t.Implements(typeInfoType) && t.Kind() != reflect.Interface {
		return reflect.Zero(t).Interface().(TypeInfo).TypeInfo()
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface &&
		reflect.PointerTo(t).Implements(typeInfoType) {
		return reflect.New(t).Interface().(TypeInfo).TypeInfo()
	}

	switch t.Kind() {
	case reflect.Bool:
		return primitive(Bool)
	case reflect.String:
		return primitive(Str)
	case reflect.Uint8:
		return primitive(U8)
	case reflect.Uint16:
		return primitive(U16)
	case reflect.Uint32:
		return primitive(U32)
	case reflect.Uint64, reflect.Uint:
		return primitive(U64)
	case reflect.Int8:
		return primitive(I8)
	case reflect.Int16:
		return primitive(I16)
	case reflect.Int32:
		return primitive(I32)
	case reflect.Int64, reflect.Int:
		return primitive(I64)
	case reflect.Array, reflect.Slice, reflect.Pointer, reflect.Struct:
		if t.Name() != "" {
			if _, ok := visiting[t]; ok {
				return opaque(t)
			}
			visiting[t] = struct{}{}
			defer delete(visiting, t)
		}
	default:
		return opaque(t)
	}

	switch t.Kind() {
	case reflect.Array:
		return Type{Def: DefArray{Len: uint32(t.Len()), Type: typeOf(t.Elem(), visiting)}}
	case reflect.Slice:
		return Type{Def: DefSequence{Type: typeOf(t.Elem(), visiting)}}
	case reflect.Pointer:
		inner := typeOf(t.Elem(), visiting)
		return Type{
			Path: []string{"Option"},
			Def: DefVariant{Variants: []Variant{
				{Name: "None", Index: 0},
				{Name: "Some", Index: 1, Fields: []Field{{Type: inner}}},
			}},
		}
	default:
		fields := make([]Field, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Tag.Get("scale") == "-" {
				continue
			}
			fields = append(fields, Field{
				Name:     field.Name,
				TypeName: field.Type.Name(),
				Type:     typeOf(field.Type, visiting),
			})
		}
		return Type{Path: namedPath(t), Def: DefComposite{Fields: fields}}
	}
}

// opaque describes t by its path alone. Anonymous types are
// named after their Go representation.
func opaque(t reflect.Type) Type {
	path := namedPath(t)
	if path == nil {
		path = []string{t.String()}
	}
	return Type{Path: path}
}

func namedPath(t reflect.Type) []string {
	if t.Name() == "" {
		return nil
	}
	if t.PkgPath() == "" {
		return []string{t.Name()}
	}
	return append(strings.Split(t.PkgPath(), "/"), t.Name())
}

func primitive(p Primitive) Type {
	return Type{Def: DefPrimitive{Primitive: p}}
}

// Compact returns the description of a compact encoded inner type.
func Compact(inner Type) Type {
	return Type{Def: DefCompact{Type: inner}}
}

// ByteArray returns the description of a named fixed size byte array.
func ByteArray(length uint32, path ...string) Type {
	return Type{
		Path: path,
		Def: DefComposite{Fields: []Field{{
			TypeName: fmt.Sprintf("[u8; %d]", length),
			Type:     Type{Def: DefArray{Len: length, Type: primitive(U8)}},
		}}},
	}
}
