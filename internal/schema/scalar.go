package schema

// Param is one raw path or query value. Present is false when the client did
// not send the parameter at all.
type Param struct {
	Loc     []any
	Raw     string
	Present bool
}

// Path describes a path parameter; path parameters are always present.
func Path(name, raw string) Param {
	return Param{Loc: []any{"path", name}, Raw: raw, Present: true}
}

// Query describes a query parameter.
func Query(name, raw string, present bool) Param {
	return Param{Loc: []any{"query", name}, Raw: raw, Present: present}
}

// Scalars accumulates errors across several parameters so a request with
// more than one bad parameter reports all of them at once.
type Scalars struct {
	errs ValidationError
}

// Int parses p as an integer, returning def when p is absent.
func (s *Scalars) Int(p Param, def int64) int64 {
	if !p.Present {
		return def
	}
	n, is := toInt(p.Raw)
	if is != nil {
		s.errs.add(ErrorDetail{Type: is.typ, Loc: p.Loc, Msg: is.msg, Input: p.Raw})
	}
	return n
}

// RequiredInt parses p as an integer that must be present.
func (s *Scalars) RequiredInt(p Param) int64 {
	if !p.Present {
		s.missing(p)
		return 0
	}
	return s.Int(p, 0)
}

// RequiredStr returns p as a string that must be present.
func (s *Scalars) RequiredStr(p Param) string {
	if !p.Present {
		s.missing(p)
		return ""
	}
	return p.Raw
}

func (s *Scalars) missing(p Param) {
	s.errs.add(ErrorDetail{Type: typeMissing, Loc: p.Loc, Msg: msgMissing, Input: nil})
}

// Err returns a *ValidationError when any parameter was invalid.
func (s *Scalars) Err() error {
	return s.errs.err()
}
