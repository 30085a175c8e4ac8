// Package sqlf compiles optional filter criteria and partial-update data
// into parameterized SQL fragments with $N positional placeholders. All
// builders are pure: values never end up in the SQL text itself.
package sqlf

import (
	"strconv"
	"strings"

	"github.com/rendau/jobly/internal/errs"
)

// ValueMark is the marker inside a predicate expression that gets replaced
// with the next positional placeholder.
const ValueMark = "${v}"

type ClauseSt struct {
	Fragment string
	Values   []any
}

// WhereSt accumulates predicates in the order they are added. Callers add
// recognized filter fields in a fixed declaration order, so logically equal
// criteria always produce the same fragment.
type WhereSt struct {
	preds  []string
	values []any
}

// Pred appends a predicate expression containing ValueMark and binds value
// to the placeholder that replaces the mark.
func (w *WhereSt) Pred(expr string, value any) *WhereSt {
	w.values = append(w.values, value)
	w.preds = append(w.preds, strings.ReplaceAll(expr, ValueMark, "$"+strconv.Itoa(len(w.values))))
	return w
}

// Substr appends a case-insensitive substring predicate for column. The
// value is wrapped in "%" on the parameter side only.
func (w *WhereSt) Substr(column, value string) *WhereSt {
	return w.Pred(column+" ILIKE "+ValueMark, "%"+value+"%")
}

// Literal appends a predicate with no bound parameter, so it must not
// consume a placeholder slot.
func (w *WhereSt) Literal(expr string) *WhereSt {
	w.preds = append(w.preds, expr)
	return w
}

// Build joins the accumulated predicates with AND and prefixes the result
// with "WHERE ". With no predicates it returns the empty clause.
func (w *WhereSt) Build() ClauseSt {
	if len(w.preds) == 0 {
		return ClauseSt{Values: []any{}}
	}

	return ClauseSt{
		Fragment: "WHERE " + strings.Join(w.preds, " AND "),
		Values:   w.values,
	}
}

// FieldSt is a single partial-update entry. A nil Value is a meaningful
// update (set the column to NULL), distinct from the field being absent.
type FieldSt struct {
	Name  string
	Value any
}

// Set compiles partial-update fields into the body of a SET clause. Column
// names are resolved through colMap, falling back to the field name itself.
// The caller binds the row-identifying parameter at position len(Values)+1.
func Set(fields []FieldSt, colMap map[string]string) (ClauseSt, error) {
	if len(fields) == 0 {
		return ClauseSt{}, errs.EmptyUpdateData
	}

	segs := make([]string, len(fields))
	values := make([]any, len(fields))

	for i, f := range fields {
		col := f.Name
		if v, ok := colMap[f.Name]; ok {
			col = v
		}

		segs[i] = `"` + col + `"=$` + strconv.Itoa(i+1)
		values[i] = f.Value
	}

	return ClauseSt{
		Fragment: strings.Join(segs, ", "),
		Values:   values,
	}, nil
}

// Fields picks the entries of data whose keys appear in order, preserving
// order's sequence. Go maps carry no insertion order, so the entity's
// canonical field list fixes the parameter positions; keys outside the list
// are ignored.
func Fields(data map[string]any, order []string) []FieldSt {
	res := make([]FieldSt, 0, len(data))

	for _, name := range order {
		if v, ok := data[name]; ok {
			res = append(res, FieldSt{Name: name, Value: v})
		}
	}

	return res
}
