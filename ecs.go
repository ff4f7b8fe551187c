package wobble

import (
	"fmt"
	"reflect"
	"sync"
)

type EntityId uint64
type set[T comparable] = map[T]struct{}

// Ecs is a small component store: one map per component type, keyed by entity.
// The viewer only ever holds a handful of entities (camera, mesh), so plain
// per-type maps beat archetype bookkeeping here.
type Ecs struct {
	idGeneratorLock sync.Mutex
	entityIdCounter EntityId

	stores   map[reflect.Type]map[EntityId]any // values are *T component pointers
	entities map[EntityId]set[reflect.Type]
}

func MakeEcs() Ecs {
	return Ecs{
		entityIdCounter: EntityId(0),
		stores:          make(map[reflect.Type]map[EntityId]any),
		entities:        make(map[EntityId]set[reflect.Type]),
	}
}

func (ecs *Ecs) addEntity(components ...any) EntityId {
	entityId := ecs.nextEntityId()
	return ecs.insertEntity(entityId, components...)
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	ecs.entities[entityId] = make(set[reflect.Type], len(components))
	ecs.addComponents(entityId, components...)
	return entityId
}

func (ecs *Ecs) addComponents(entityId EntityId, components ...any) {
	types, ok := ecs.entities[entityId]
	if !ok {
		panic(fmt.Sprintf("entity %v does not exist", entityId))
	}

	for _, component := range components {
		compType, compPtr := normalizeComponent(component)
		store, ok := ecs.stores[compType]
		if !ok {
			store = make(map[EntityId]any)
			ecs.stores[compType] = store
		}
		store[entityId] = compPtr
		types[compType] = struct{}{}
	}
}

func (ecs *Ecs) removeComponents(entityId EntityId, components ...any) {
	types, ok := ecs.entities[entityId]
	if !ok {
		return
	}

	for _, component := range components {
		compType, _ := normalizeComponent(component)
		if store, ok := ecs.stores[compType]; ok {
			delete(store, entityId)
		}
		delete(types, compType)
	}
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	types, ok := ecs.entities[entityId]
	if !ok {
		return
	}

	for compType := range types {
		delete(ecs.stores[compType], entityId)
	}
	delete(ecs.entities, entityId)
}

func (ecs *Ecs) getComponent(entityId EntityId, compType reflect.Type) (any, bool) {
	store, ok := ecs.stores[compType]
	if !ok {
		return nil, false
	}
	comp, ok := store[entityId]
	return comp, ok
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.idGeneratorLock.Lock()
	defer ecs.idGeneratorLock.Unlock()

	id := ecs.entityIdCounter
	ecs.entityIdCounter += 1

	return id
}

// normalizeComponent accepts a component as a struct value or struct pointer
// and returns its type plus a freshly allocated pointer copy for storage.
func normalizeComponent(component any) (reflect.Type, any) {
	v := reflect.ValueOf(component)
	t := v.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
		v = v.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("expected Component to be a struct or a pointer to a struct, got %s", t.Kind()))
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	return t, ptr.Interface()
}
