package wobble

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// Module is a unit of installation: it registers resources and systems on the App.
type Module interface {
	Install(app *App, cmd *Commands)
}

type App struct {
	modules   []Module
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	ecs       *Ecs
	quit      bool

	// Command buffering
	pendingAdditions []pendingAdd
	pendingRemovals  []EntityId
	pendingCompAdds  []pendingCompAdd
}

type pendingAdd struct {
	eid        EntityId
	components []any
}

type pendingCompAdd struct {
	eid        EntityId
	components []any
}

func NewApp() *App {
	ecs := MakeEcs()
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
		ecs:       &ecs,
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// UseModules installs modules in order. Commands are flushed after every
// module, so later modules see the resources and entities of earlier ones.
func (app *App) UseModules(modules ...Module) *App {
	cmd := &Commands{app: app}
	for _, module := range modules {
		module.Install(app, cmd)
		app.modules = append(app.modules, module)
		app.FlushCommands()
	}
	return app
}

// Run drives frames until Quit is requested (usually by the window module
// when the user closes the window).
func (app *App) Run() {
	for !app.quit {
		app.RunFrame()
	}
}

// RunFrame executes every stage once. Command buffers are flushed after each
// stage so entity mutations become visible to the next stage, never mid-stage.
func (app *App) RunFrame() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
		app.FlushCommands()
	}
}

func (app *App) Quit() {
	app.quit = true
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

var typeOfCommands = reflect.TypeOf(Commands{})

// callSystem resolves a system's pointer arguments from the resource map and
// invokes it. *Commands is always injectable.
func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}

func (app *App) FlushCommands() {
	if len(app.pendingAdditions) == 0 && len(app.pendingRemovals) == 0 && len(app.pendingCompAdds) == 0 {
		return
	}

	// Removals first, so we never add components to dead entities.
	for _, eid := range app.pendingRemovals {
		app.ecs.removeEntity(eid)
	}
	app.pendingRemovals = app.pendingRemovals[:0]

	for _, add := range app.pendingAdditions {
		app.ecs.insertEntity(add.eid, add.components...)
	}
	app.pendingAdditions = app.pendingAdditions[:0]

	for _, add := range app.pendingCompAdds {
		app.ecs.addComponents(add.eid, add.components...)
	}
	app.pendingCompAdds = app.pendingCompAdds[:0]
}

// Logger returns the Logger resource if present, otherwise a no-op logger.
// Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}

// resource fetches a typed resource pointer, or nil when missing. Modules use
// it to look up resources installed by earlier modules.
func resource[T any](app *App) *T {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if r, ok := app.resources[t]; ok {
		return r.(*T)
	}
	return nil
}
