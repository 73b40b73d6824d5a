package daynight

import (
	"strconv"

	"daynight/internal/core"
)

// Parameters publishes the configuration the world was built with, for the
// HUD panel and stream hello frames.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Grid",
				Params: []core.Parameter{
					{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(w.cfg.Width)},
					{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(w.cfg.Height)},
					{Key: "fill", Label: "Fill", Type: core.ParamTypeString, Value: w.cfg.Fill,
						Description: "initial cell pattern"},
				},
			},
			{
				Name: "Entities",
				Params: []core.Parameter{
					{Key: "entities", Label: "Extra entities", Type: core.ParamTypeInt,
						Value: strconv.Itoa(w.cfg.ExtraEntities),
						Description: "seeded-random entities beyond the default pair"},
				},
			},
			{
				Name: "Run",
				Params: []core.Parameter{
					{Key: "seed", Label: "Seed", Type: core.ParamTypeInt,
						Value: strconv.FormatInt(w.cfg.Seed, 10)},
					{Key: "batch", Label: "Batch path", Type: core.ParamTypeString,
						Value: strconv.FormatBool(w.cfg.UseBatch)},
				},
			},
		},
	}
}
