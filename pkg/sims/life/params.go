package life

import (
	"strconv"

	"sparselife/internal/core"
)

// Parameters reports the board configuration and current aggregates.
func (e *Engine) Parameters() core.ParameterSnapshot {
	st := e.State()
	groups := []core.ParameterGroup{
		{
			Name: "Bounds",
			Params: []core.Parameter{
				intParam("min_x", "Min X", e.cfg.MinX),
				intParam("max_x", "Max X", e.cfg.MaxX),
				intParam("min_y", "Min Y", e.cfg.MinY),
				intParam("max_y", "Max Y", e.cfg.MaxY),
				boolParam("wrap", "Toroidal wrap", e.cfg.Wrap),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				uintParam("generation", "Generation", st.Generation),
				uintParam("population", "Population", uint64(st.Population)),
				uintParam("births", "Births last step", uint64(st.Births)),
				uintParam("deaths", "Deaths last step", uint64(st.Deaths)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int32) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(int64(value), 10),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
