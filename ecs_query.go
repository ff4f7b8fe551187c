package wobble

import (
	"reflect"
)

// Queries iterate entities carrying all requested component types. The mapped
// function receives live pointers into the store; return false to stop early.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]             { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B]       { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] { return Query3[A, B, C]{ecs: cmd.app.ecs} }

func componentTypeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	store := q.ecs.stores[componentTypeOf[A]()]
	for entityId, comp := range store {
		if !m(entityId, comp.(*A)) {
			return
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool) {
	storeA := q.ecs.stores[componentTypeOf[A]()]
	typeB := componentTypeOf[B]()

	for entityId, compA := range storeA {
		compB, ok := q.ecs.getComponent(entityId, typeB)
		if !ok {
			continue
		}
		if !m(entityId, compA.(*A), compB.(*B)) {
			return
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool) {
	storeA := q.ecs.stores[componentTypeOf[A]()]
	typeB := componentTypeOf[B]()
	typeC := componentTypeOf[C]()

	for entityId, compA := range storeA {
		compB, okB := q.ecs.getComponent(entityId, typeB)
		if !okB {
			continue
		}
		compC, okC := q.ecs.getComponent(entityId, typeC)
		if !okC {
			continue
		}
		if !m(entityId, compA.(*A), compB.(*B), compC.(*C)) {
			return
		}
	}
}
