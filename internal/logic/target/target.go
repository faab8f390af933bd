// Package target models the target-FOV editing workflow: the user
// edits one axis at a time, and the edited axis optionally drives the
// other through the sensor pixel aspect ratio.
package target

import (
	"encoding/json"
	"fmt"

	"github.com/rozicdejan/keyence-iv-calculator/internal/catalog"
	"github.com/rozicdejan/keyence-iv-calculator/internal/logic/optics"
)

// Axis identifies one FOV axis.
type Axis int

const (
	AxisX Axis = iota // horizontal
	AxisY             // vertical
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis accepts "x"/"horizontal" and "y"/"vertical".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X", "horizontal":
		return AxisX, nil
	case "y", "Y", "vertical":
		return AxisY, nil
	default:
		return 0, fmt.Errorf("invalid axis %q: want x or y", s)
	}
}

// MarshalJSON encodes the axis as "x" or "y".
func (a Axis) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes "x" or "y".
func (a *Axis) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAxis(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// State holds the target FOV of both axes and which axis the user
// edited last. States are values; transitions return a new State and
// never mutate shared data.
type State struct {
	FovX    float64 `json:"fov_x"`
	FovY    float64 `json:"fov_y"`
	Driving Axis    `json:"driving"`
}

// NewState seeds a session at the smallest achievable FOV of the
// profile, with the horizontal axis driving.
func NewState(p catalog.Profile) State {
	return State{FovX: p.MinFovX, FovY: p.MinFovY, Driving: AxisX}
}

// ApplyEdit applies a coupled edit: the edited axis becomes driving,
// its value is clamped to the axis's FOV bounds, and the other axis is
// derived through the sensor pixel aspect ratio, then clamped to its
// own bounds. Clamping the derived axis independently means the
// achieved ratio can deviate from the sensor ratio near the edges of
// the operating envelope.
func ApplyEdit(p catalog.Profile, prev State, edited Axis, value float64) State {
	next := prev
	next.Driving = edited
	ratio := p.AspectRatio()

	switch edited {
	case AxisX:
		next.FovX = optics.Clamp(value, p.MinFovX, p.MaxFovX)
		if ratio > 0 {
			next.FovY = optics.Clamp(next.FovX/ratio, p.MinFovY, p.MaxFovY)
		}
	case AxisY:
		next.FovY = optics.Clamp(value, p.MinFovY, p.MaxFovY)
		if ratio > 0 {
			next.FovX = optics.Clamp(next.FovY*ratio, p.MinFovX, p.MaxFovX)
		}
	}
	return next
}

// ApplyEditIndependent applies an uncoupled edit: only the edited axis
// changes (clamped to its bounds); the other axis keeps its value.
func ApplyEditIndependent(p catalog.Profile, prev State, edited Axis, value float64) State {
	next := prev
	next.Driving = edited

	switch edited {
	case AxisX:
		next.FovX = optics.Clamp(value, p.MinFovX, p.MaxFovX)
	case AxisY:
		next.FovY = optics.Clamp(value, p.MinFovY, p.MaxFovY)
	}
	return next
}
