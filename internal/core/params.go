package core

import (
	"log/slog"
	"slices"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form values such as durations or colors.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that publish a snapshot for the HUD
// and for run logs.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// LogValue renders the snapshot as nested slog groups keyed by parameter key.
func (s ParameterSnapshot) LogValue() slog.Value {
	groups := make([]slog.Attr, 0, len(s.Groups))
	for _, g := range s.Groups {
		attrs := make([]any, 0, len(g.Params))
		for _, p := range g.Params {
			attrs = append(attrs, slog.String(p.Key, p.Value))
		}
		groups = append(groups, slog.Group(g.Name, attrs...))
	}
	return slog.GroupValue(groups...)
}

// Equal reports whether both snapshots hold the same values in the same order.
func (s ParameterSnapshot) Equal(o ParameterSnapshot) bool {
	return slices.EqualFunc(s.Groups, o.Groups, func(a, b ParameterGroup) bool {
		return a.Name == b.Name && slices.Equal(a.Params, b.Params)
	})
}

// IntParam builds an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// Int64Param builds a 64-bit integer parameter.
func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// FloatParam builds a floating-point parameter.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// StringParam builds a free-form parameter.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}
