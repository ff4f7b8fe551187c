package wobble

import (
	"time"
)

// Time tracks wall clock per frame. Elapsed is seconds since app start, the
// value fed into shader `time` uniforms.
type Time struct {
	Start   time.Time
	Time    time.Time
	Dt      time.Duration
	Elapsed float64
}

type TimeModule struct{}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := time.Now()
	cmd.AddResources(&Time{
		Start: now,
		Time:  now,
		Dt:    0,
	})
	app.UseSystem(
		System(timeSystem).
			InStage(PreUpdate),
	)
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
	timeResource.Elapsed = now.Sub(timeResource.Start).Seconds()
}
