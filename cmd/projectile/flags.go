package main

import (
	"github.com/osuushi/raytracer/tuples"
	"gopkg.in/alecthomas/kingpin.v2"
)

// kingpin value for tuple literals like "point(0, 1, 0)"
type tupleValue tuples.Tuple

func (v *tupleValue) Set(s string) error {
	t, err := tuples.Parse(s)
	if err != nil {
		return err
	}
	*v = tupleValue(t)
	return nil
}

func (v *tupleValue) String() string {
	return tuples.Tuple(*v).String()
}

func Tuple(s kingpin.Settings) *tuples.Tuple {
	target := new(tuples.Tuple)
	s.SetValue((*tupleValue)(target))
	return target
}
