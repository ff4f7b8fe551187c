package wobble

import (
	"reflect"
)

// Commands is the buffered mutation interface handed to modules and systems.
// Entity changes are queued and applied by FlushCommands between stages.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) AddEntity(components ...any) EntityId {
	eid := cmd.app.ecs.nextEntityId()
	cmd.app.pendingAdditions = append(cmd.app.pendingAdditions, pendingAdd{
		eid:        eid,
		components: components,
	})
	return eid
}

func (cmd *Commands) AddComponents(entityId EntityId, components ...any) {
	cmd.app.pendingCompAdds = append(cmd.app.pendingCompAdds, pendingCompAdd{
		eid:        entityId,
		components: components,
	})
}

func (cmd *Commands) RemoveEntity(entityId EntityId) {
	cmd.app.pendingRemovals = append(cmd.app.pendingRemovals, entityId)
}

func (cmd *Commands) Quit() {
	cmd.app.Quit()
}

// GetAllComponents returns value copies of every component on the entity.
func (cmd *Commands) GetAllComponents(entityId EntityId) []any {
	ecs := cmd.app.ecs
	types, ok := ecs.entities[entityId]
	if !ok {
		return nil
	}

	var res []any
	for compType := range types {
		if comp, ok := ecs.getComponent(entityId, compType); ok {
			res = append(res, reflect.ValueOf(comp).Elem().Interface())
		}
	}
	return res
}
