package wobble

import (
	"fmt"
	"slices"
)

type Stage struct {
	Name string
}

var (
	PreUpdate  = Stage{Name: "PreUpdate"}
	Update     = Stage{Name: "Update"}
	PostUpdate = Stage{Name: "PostUpdate"}
	PreRender  = Stage{Name: "PreRender"}
	Render     = Stage{Name: "Render"}
)

var defaultStages = []Stage{PreUpdate, Update, PostUpdate, PreRender, Render}

type systemScheduleBuilder struct {
	inStage Stage
	system  systemFn
}

func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  system,
		inStage: Update,
	}
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  sched.system,
		inStage: s,
	}
}

type stagePosition int

const (
	stageBefore stagePosition = iota
	stageAfter
)

type stagePositionBuilder struct {
	position stagePosition
	target   Stage
}

func BeforeStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageBefore,
		target:   s,
	}
}

func AfterStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageAfter,
		target:   s,
	}
}

// UseStage inserts a custom stage relative to an existing one.
func (app *App) UseStage(stage Stage, where stagePositionBuilder) *App {
	var stageIdx = -1
	for i, s := range app.stages {
		if s.Name == where.target.Name {
			stageIdx = i
			break
		}
	}
	if -1 == stageIdx {
		panic(fmt.Sprintf("Stage %v not found", where.target.Name))
	}

	var insertAt int
	if stageBefore == where.position {
		insertAt = stageIdx
	} else {
		insertAt = stageIdx + 1
	}

	app.stages = slices.Insert(app.stages, insertAt, stage)
	app.systems[stage.Name] = make([]systemFn, 0)

	return app
}

// UseSystem appends a system to its stage. Systems within a stage run in
// registration order.
func (app *App) UseSystem(system systemScheduleBuilder) *App {
	if _, ok := app.systems[system.inStage.Name]; !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", system.inStage.Name))
	}
	app.systems[system.inStage.Name] = append(app.systems[system.inStage.Name], system.system)
	return app
}
