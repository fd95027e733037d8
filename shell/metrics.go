// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

func newCommandCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matshell",
		Subsystem: "shell",
		Name:      "commands_total",
		Help:      "Shell commands executed, by verb and result.",
	}, []string{"command", "result"})
}

// sample is one flattened metric value.
type sample struct {
	name   string
	labels string
	value  float64
}

// gatherSamples flattens every counter and gauge in g, sorted by name then labels.
func gatherSamples(g prometheus.Gatherer) ([]sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var out []sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := sample{name: mf.GetName()}
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
			}
			s.labels = strings.Join(pairs, ",")
			switch {
			case m.GetCounter() != nil:
				s.value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				s.value = m.GetGauge().GetValue()
			default:
				continue
			}
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b sample) int {
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		return strings.Compare(a.labels, b.labels)
	})

	return out, nil
}

// writeSamples prints one "name{labels} value" line per sample.
func writeSamples(w io.Writer, samples []sample) error {
	for _, s := range samples {
		key := s.name
		if s.labels != "" {
			key += "{" + s.labels + "}"
		}
		if _, err := fmt.Fprintf(w, "%-60s %g\n", key, s.value); err != nil {
			return err
		}
	}

	return nil
}
