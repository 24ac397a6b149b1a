package velmodel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseND reads a model in named-discontinuities text format: one row of
// whitespace-separated depth, Vp, Vs and density per line, surface first.
// A line that is not numeric labels the discontinuity introduced by the
// next row; "outer-core" and "inner-core" labels override the detected
// core boundaries. Lines starting with # are comments. Columns past the
// fourth are ignored.
func ParseND(name string, r io.Reader) (*LayeredModel, error) {
	sc := bufio.NewScanner(r)
	var nodes []Node
	labeled := map[string]float64{}
	pending := ""
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
			pending = strings.ToLower(text)
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w %q: line %d: need depth, vp, vs and density", ErrInvalidModel, name, line)
		}
		var vals [4]float64
		for i := range vals {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q: line %d: %v", ErrInvalidModel, name, line, err)
			}
			vals[i] = v
		}
		if pending != "" {
			labeled[pending] = vals[0]
			pending = ""
		}
		nodes = append(nodes, Node{DepthKm: vals[0], Vp: vals[1], Vs: vals[2], Rho: vals[3]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read model %q: %w", name, err)
	}
	m, err := NewLayeredModel(name, nodes)
	if err != nil {
		return nil, err
	}
	if d, ok := labeled["outer-core"]; ok {
		m.cmb = d
	}
	if d, ok := labeled["inner-core"]; ok {
		m.icb = d
	}
	return m, nil
}
