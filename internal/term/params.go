package term

// paramD1 returns the i-th CSI parameter, defaulting to 1 when omitted
// or explicitly 0 -- the default most CSI finals use.
func paramD1(params []Param, i int) int {
	if i >= len(params) {
		return 1
	}
	v := params[i].Value
	if params[i].Omitted || v == 0 {
		return 1
	}
	return v
}

// paramD0 returns the i-th CSI parameter, defaulting to 0 when omitted,
// preserving an explicit 0.
func paramD0(params []Param, i int) int {
	if i >= len(params) || params[i].Omitted {
		return 0
	}
	return params[i].Value
}

func paramDefault(params []Param, i, def int) int {
	if i >= len(params) || params[i].Omitted {
		return def
	}
	return params[i].Value
}

// subAt returns the n-th sub-parameter of p, or 0 if absent
// (empty sub-params count as zero).
func subAt(p Param, n int) int {
	if n >= len(p.Sub) {
		return 0
	}
	return p.Sub[n]
}
