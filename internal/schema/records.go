package schema

import (
	"fmt"
	"strings"

	"github.com/alfagnish/trading-app/internal/domain"
)

// object reads typed fields out of one decoded JSON object, recording an
// ErrorDetail for every field that is missing or has the wrong type.
type object struct {
	raw    any
	fields map[string]any
	loc    []any
	errs   *ValidationError
	failed map[string]bool
}

// asObject returns nil and records a model_type error when v is not a JSON
// object.
func asObject(v any, model string, loc []any, errs *ValidationError) *object {
	fields, ok := v.(map[string]any)
	if !ok {
		errs.add(ErrorDetail{
			Type:  typeModelType,
			Loc:   loc,
			Msg:   "Input should be a valid dictionary or instance of " + model,
			Input: v,
			Ctx:   map[string]any{"class_name": model},
		})
		return nil
	}
	return &object{raw: v, fields: fields, loc: loc, errs: errs, failed: map[string]bool{}}
}

func (o *object) lookup(name string) (any, bool) {
	v, ok := o.fields[name]
	if !ok {
		o.failed[name] = true
		o.errs.add(ErrorDetail{Type: typeMissing, Loc: at(o.loc, name), Msg: msgMissing, Input: o.raw})
	}
	return v, ok
}

func (o *object) fail(name string, v any, is *issue) {
	o.failed[name] = true
	o.errs.add(ErrorDetail{Type: is.typ, Loc: at(o.loc, name), Msg: is.msg, Input: v})
}

func (o *object) int(name string) int64 {
	v, ok := o.lookup(name)
	if !ok {
		return 0
	}
	n, is := toInt(v)
	if is != nil {
		o.fail(name, v, is)
	}
	return n
}

func (o *object) float(name string) float64 {
	v, ok := o.lookup(name)
	if !ok {
		return 0
	}
	f, is := toFloat(v)
	if is != nil {
		o.fail(name, v, is)
	}
	return f
}

func (o *object) str(name string) string {
	v, ok := o.lookup(name)
	if !ok {
		return ""
	}
	s, is := toString(v)
	if is != nil {
		o.fail(name, v, is)
	}
	return s
}

func (o *object) datetime(name string) domain.Datetime {
	v, ok := o.lookup(name)
	if !ok {
		return domain.Datetime{}
	}
	ts, is := toTime(v)
	if is != nil {
		o.fail(name, v, is)
	}
	return ts
}

func (o *object) degreeType(name string) domain.DegreeType {
	v, ok := o.lookup(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	dt, valid := domain.ParseDegreeType(s)
	if !valid {
		o.failed[name] = true
		o.errs.add(ErrorDetail{
			Type:  typeEnum,
			Loc:   at(o.loc, name),
			Msg:   "Input should be " + expectedDegreeTypes(),
			Input: v,
			Ctx:   map[string]any{"expected": expectedDegreeTypes()},
		})
	}
	return dt
}

func expectedDegreeTypes() string {
	quoted := make([]string, len(domain.DegreeTypes))
	for i, d := range domain.DegreeTypes {
		quoted[i] = fmt.Sprintf("'%s'", d)
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

// list returns the elements of v, recording a list_type error otherwise.
func list(v any, loc []any, errs *ValidationError) ([]any, bool) {
	items, ok := v.([]any)
	if !ok {
		errs.add(ErrorDetail{Type: typeListType, Loc: loc, Msg: msgListType, Input: v})
	}
	return items, ok
}

func decodeTrade(v any, loc []any, errs *ValidationError) domain.Trade {
	o := asObject(v, "Trade", loc, errs)
	if o == nil {
		return domain.Trade{}
	}
	t := domain.Trade{
		ID:       o.int("id"),
		UserID:   o.int("user_id"),
		Currency: o.str("currency"),
		Side:     o.str("side"),
		Price:    o.float("price"),
		Amount:   o.float("amount"),
	}
	checkConstraints(t, o)
	return t
}

func decodeDegree(v any, loc []any, errs *ValidationError) domain.Degree {
	o := asObject(v, "Degree", loc, errs)
	if o == nil {
		return domain.Degree{}
	}
	return domain.Degree{
		ID:         o.int("id"),
		CreatedAt:  o.datetime("created_at"),
		TypeDegree: o.degreeType("type_degree"),
	}
}

func decodeUser(v any, loc []any, errs *ValidationError) domain.User {
	o := asObject(v, "User", loc, errs)
	if o == nil {
		return domain.User{}
	}
	u := domain.User{
		ID:     o.int("id"),
		Role:   o.str("role"),
		Name:   o.str("name"),
		Degree: []domain.Degree{},
	}
	// degree is optional and null is read as empty.
	raw, ok := o.fields["degree"]
	if !ok || raw == nil {
		return u
	}
	items, ok := list(raw, at(loc, "degree"), errs)
	if !ok {
		return u
	}
	for i, item := range items {
		u.Degree = append(u.Degree, decodeDegree(item, at(loc, "degree", i), errs))
	}
	return u
}

// DecodeTrades decodes a JSON array of trades. Details are located under
// root, e.g. ["body", 0, "price"]. Either every trade is valid or none is
// returned.
func DecodeTrades(data []byte, root ...any) ([]domain.Trade, error) {
	v, err := parseBody(data, root)
	if err != nil {
		return nil, err
	}

	errs := &ValidationError{}
	items, ok := list(v, root, errs)
	if !ok {
		return nil, errs
	}
	trades := make([]domain.Trade, 0, len(items))
	for i, item := range items {
		trades = append(trades, decodeTrade(item, at(root, i), errs))
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return trades, nil
}

// DecodeUsers decodes a JSON array of users with their nested degrees.
func DecodeUsers(data []byte, root ...any) ([]domain.User, error) {
	v, err := parseBody(data, root)
	if err != nil {
		return nil, err
	}

	errs := &ValidationError{}
	items, ok := list(v, root, errs)
	if !ok {
		return nil, errs
	}
	users := make([]domain.User, 0, len(items))
	for i, item := range items {
		users = append(users, decodeUser(item, at(root, i), errs))
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return users, nil
}

func parseBody(data []byte, root []any) (any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, &ValidationError{Errors: []ErrorDetail{{
			Type: typeMissing, Loc: at(root), Msg: msgMissing, Input: nil,
		}}}
	}
	return parseJSON(data, root)
}
