package wobble

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TimeSink is implemented by every uniform block that carries the shared
// animation clock.
type TimeSink interface {
	SetTime(t float32)
}

// WaveUniforms feed the ripple material. Field order matches the WGSL
// uniform block, packed into 16-byte rows.
type WaveUniforms struct {
	Time            float32
	Elasticity      float32
	ClickTime       float32
	Shininess       float32
	ClickPosition   [3]float32
	Transparency    float32
	LightDirection  [3]float32
	JiggleIntensity float32
	LightColor      [4]float32
	ObjectColor     [4]float32
}

// CreativeUniforms feed the inflate material. Blank fields are WGSL
// alignment padding.
type CreativeUniforms struct {
	Time           float32
	InflateAmount  float32
	_              [2]float32
	LightDirection [3]float32
	_              float32
	LightColor     [4]float32
	ObjectColor    [4]float32
}

func NewWaveUniforms() *WaveUniforms {
	return &WaveUniforms{
		Time:            0,
		Elasticity:      0,
		ClickTime:       NoClick,
		Shininess:       32,
		ClickPosition:   [3]float32{-1, -1, -1},
		Transparency:    0.6,
		LightDirection:  defaultLightDirection(),
		JiggleIntensity: 0.05,
		LightColor:      [4]float32{1, 1, 1, 1},
		ObjectColor:     [4]float32{1, 0, 1, 1},
	}
}

func NewCreativeUniforms() *CreativeUniforms {
	return &CreativeUniforms{
		Time:           0,
		InflateAmount:  0.2,
		LightDirection: defaultLightDirection(),
		LightColor:     [4]float32{1, 1, 1, 1},
		ObjectColor:    [4]float32{1, 0, 1, 1},
	}
}

func (u *WaveUniforms) SetTime(t float32) {
	u.Time = t
}

func (u *CreativeUniforms) SetTime(t float32) {
	u.Time = t
}

func defaultLightDirection() [3]float32 {
	d := mgl32.Vec3{1, 1, 1}.Normalize()
	return [3]float32{d.X(), d.Y(), d.Z()}
}
