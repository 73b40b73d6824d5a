package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes string-valued parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single configuration value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the configuration a simulation was built with,
// for display on the HUD and in stream hello frames.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by simulations that publish their active
// configuration.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
