package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a pflag value restricted to a fixed set of words. Rejecting
// a bad value here keeps argument validation at the grammar boundary: the
// option resolvers only ever see values that already parsed.
type enumValue struct {
	value   string
	allowed []string
}

func newEnumValue(def string, allowed ...string) pflag.Value {
	return &enumValue{value: def, allowed: allowed}
}

func (e *enumValue) Set(value string) error {
	for _, a := range e.allowed {
		if value == a {
			e.value = value
			return nil
		}
	}

	return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
}

func (e *enumValue) String() string {
	return e.value
}

func (e *enumValue) Type() string {
	return "string"
}

// dateValue accepts the date keywords plus the freeform "+<layout>" form.
type dateValue struct {
	value string
}

func newDateValue() pflag.Value {
	return &dateValue{value: "date"}
}

func (d *dateValue) Set(value string) error {
	if value == "date" || value == "relative" || strings.HasPrefix(value, "+") {
		d.value = value
		return nil
	}

	return fmt.Errorf("must be date, relative, or a +<layout> format")
}

func (d *dateValue) String() string {
	return d.value
}

func (d *dateValue) Type() string {
	return "string"
}
