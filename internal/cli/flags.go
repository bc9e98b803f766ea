package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/chromatic/internal/config"
	"github.com/jmylchreest/chromatic/pkg/colour"
)

// illuminantValue is a pflag.Value naming a registered illuminant.
type illuminantValue struct {
	ill *colour.Illuminant
}

var _ pflag.Value = (*illuminantValue)(nil)

func (v *illuminantValue) String() string {
	if v.ill == nil || v.ill.IsZero() {
		return ""
	}
	return v.ill.Name
}

func (v *illuminantValue) Set(s string) error {
	ill, err := colour.LookupIlluminant(s)
	if err != nil {
		return err
	}
	*v.ill = ill
	return nil
}

func (v *illuminantValue) Type() string { return "illuminant" }

// rgbSpaceValue is a pflag.Value naming a built-in RGB space.
type rgbSpaceValue struct {
	space **colour.RGBSpace
}

var _ pflag.Value = (*rgbSpaceValue)(nil)

func (v *rgbSpaceValue) String() string {
	if v.space == nil || *v.space == nil {
		return ""
	}
	return (*v.space).Name
}

func (v *rgbSpaceValue) Set(s string) error {
	space, err := colour.LookupRGBSpace(s)
	if err != nil {
		return err
	}
	*v.space = space
	return nil
}

func (v *rgbSpaceValue) Type() string { return "rgb-space" }

// metricValue is a pflag.Value for the distance formula.
type metricValue struct {
	metric *config.Metric
}

var _ pflag.Value = (*metricValue)(nil)

func (v *metricValue) String() string {
	if v.metric == nil {
		return ""
	}
	return string(*v.metric)
}

func (v *metricValue) Set(s string) error {
	m, err := config.ParseMetric(s)
	if err != nil {
		return err
	}
	*v.metric = m
	return nil
}

func (v *metricValue) Type() string { return "metric" }

// choiceValue restricts a string flag to a fixed set of values.
type choiceValue struct {
	value   *string
	choices []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(p *string, def string, choices ...string) *choiceValue {
	*p = def
	return &choiceValue{value: p, choices: choices}
}

func (v *choiceValue) String() string { return *v.value }

func (v *choiceValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range v.choices {
		if s == c {
			*v.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(v.choices, ", "))
}

func (v *choiceValue) Type() string { return "string" }
