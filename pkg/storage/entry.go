// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

// Entry is a storage item holding values of type V.
type Entry[V any] interface {
	// Pallet returns the name of the pallet the item belongs to.
	Pallet() string
	// Item returns the name of the storage item.
	Item() string
	// KeyParts returns the map keys of the entry, none for a plain value.
	KeyParts() []KeyPart
	// Default returns the value of the entry when it is absent from storage.
	Default() V
}

// FinalKey returns the storage key of entry.
func FinalKey[V any](entry Entry[V]) (Key, error) {
	return MapKey(entry.Pallet(), entry.Item(), entry.KeyParts()...)
}

// PlainEntry is the entry of a plain storage value.
type PlainEntry[V any] struct {
	PalletName string
	ItemName   string
}

// Pallet returns the pallet name.
func (e PlainEntry[V]) Pallet() string { return e.PalletName }

// Item returns the item name.
func (e PlainEntry[V]) Item() string { return e.ItemName }

// KeyParts returns no key parts.
func (PlainEntry[V]) KeyParts() []KeyPart { return nil }

// Default returns the zero V.
func (PlainEntry[V]) Default() (v V) { return v }

// MapEntry is the entry of a storage map value.
type MapEntry[V any] struct {
	PalletName string
	ItemName   string
	Keys       []KeyPart
}

// Pallet returns the pallet name.
func (e MapEntry[V]) Pallet() string { return e.PalletName }

// Item returns the item name.
func (e MapEntry[V]) Item() string { return e.ItemName }

// KeyParts returns the map keys.
func (e MapEntry[V]) KeyParts() []KeyPart { return e.Keys }

// Default returns the zero V.
func (MapEntry[V]) Default() (v V) { return v }
