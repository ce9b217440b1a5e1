package field

import (
	"strconv"

	"noisefield/internal/core"
	"noisefield/pkg/noise"
)

// Parameters reports the current configuration for the HUD. The slider ranges
// match the original editor: octaves 1..16, frequency 0..1, lacunarity 1..4,
// persistence 0..2, gain 0..1.
func (b *base) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Generator",
			Params: []core.Parameter{
				enumParam("type", "Type", int(b.cfg.Type), b.cfg.Type.String()),
				int64Param("seed", "Seed", b.seed),
			},
		},
		{
			Name: "Fractal",
			Params: []core.Parameter{
				intParam("octaves", "Octaves", b.cfg.Octaves),
				floatParam("frequency", "Frequency", b.cfg.Frequency),
				floatParam("lacunarity", "Lacunarity", b.cfg.Lacunarity),
				floatParam("persistence", "Persistence", b.cfg.Persistence),
				floatParam("gain", "Gain", b.cfg.Gain),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable controls.
func (b *base) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl("type", "Type", 1, 0, 2),
		intControl("seed", "Seed", 1, 0, 1000),
		intControl("octaves", "Octaves", 1, 1, 16),
		floatControl("frequency", "Frequency", 0.01, 0, 1),
		floatControl("lacunarity", "Lacunarity", 0.1, 1, 4),
		floatControl("persistence", "Persistence", 0.05, 0, 2),
		floatControl("gain", "Gain", 0.01, 0, 1),
	}
}

// SetIntParameter updates an integer parameter, clamping to its HUD range.
// Changing the seed regenerates the backend evaluators.
func (b *base) SetIntParameter(key string, value int) bool {
	switch key {
	case "type":
		b.cfg.Type = noise.Type(clampInt(value, 0, 2))
	case "seed":
		b.Reset(int64(value))
	case "octaves":
		b.cfg.Octaves = clampInt(value, 1, 16)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float parameter, clamping to its HUD range.
func (b *base) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "frequency":
		b.cfg.Frequency = clampFloat(value, 0, 1)
	case "lacunarity":
		b.cfg.Lacunarity = clampFloat(value, 1, 4)
	case "persistence":
		b.cfg.Persistence = clampFloat(value, 0, 2)
	case "gain":
		b.cfg.Gain = clampFloat(value, 0, 1)
	default:
		return false
	}
	return true
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func enumParam(key, label string, value int, display string) core.Parameter {
	return core.Parameter{
		Key:     key,
		Label:   label,
		Type:    core.ParamTypeInt,
		Value:   strconv.Itoa(value),
		Display: display,
	}
}

func intControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeInt,
		Step: step, Min: min, Max: max, HasMin: true, HasMax: true,
	}
}

func floatControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeFloat,
		Step: step, Min: min, Max: max, HasMin: true, HasMax: true,
	}
}
