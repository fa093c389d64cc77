// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/simstate"
)

// Base carries the identity shared by every collection object.
type Base struct {
	Name string
	// Index is the position of the object in its Model collection.
	Index int
}

// ObjectName returns the object's name.
func (b *Base) ObjectName() string { return b.Name }

// ObjectIndex returns the object's position in its collection.
func (b *Base) ObjectIndex() int { return b.Index }

func (b *Base) base() *Base { return b }

// Named is implemented by every collection object.
type Named interface {
	ObjectName() string
	ObjectIndex() int
	base() *Base
}

// stateField pairs a slot on an object with the element it will point at.
type stateField struct {
	slot    *simstate.Slot
	element simstate.Element
}

// stateful is implemented by objects that own simulation values.
type stateful interface {
	stateFields() []stateField
}

func find[T Named](items []T, name string) (T, bool) {
	for _, it := range items {
		if it.ObjectName() == name {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func insert[T Named](items *[]T, obj T) T {
	obj.base().Index = len(*items)
	*items = append(*items, obj)
	return obj
}

func truncate[T any](items *[]T, n int) {
	clear((*items)[n:])
	*items = (*items)[:n]
}

func namesOf[T Named](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ObjectName()
	}
	return out
}

func optFloat(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

// lookup is find returning an untyped nil on a miss.
func lookup[T Named](items []T, name string) (Named, bool) {
	if it, ok := find(items, name); ok {
		return it, true
	}
	return nil, false
}
