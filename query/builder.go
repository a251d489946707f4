package query

import (
	"strings"
)

// Builder accumulates search clauses for the DataCite query parameter.
//
// The zero value is ready to use. Methods append to the receiver and return it
// so calls can be chained.
type Builder struct {
	clauses []string
}

// New returns an empty builder
func New() *Builder {
	return &Builder{}
}

// Where appends field<operator>value, quoting the value when it contains a space
func (b *Builder) Where(field Field, operator, value string) *Builder {
	b.clauses = append(b.clauses, clause(string(field), operator, value))
	return b
}

// WhereEquals appends field:value
func (b *Builder) WhereEquals(field Field, value string) *Builder {
	return b.Where(field, ":", value)
}

// WhereContains appends field:*value*
func (b *Builder) WhereContains(field Field, value string) *Builder {
	return b.Where(field, ":", "*"+value+"*")
}

// WhereStartsWith appends field:value*
func (b *Builder) WhereStartsWith(field Field, value string) *Builder {
	return b.Where(field, ":", value+"*")
}

// WhereEndsWith appends field:*value
func (b *Builder) WhereEndsWith(field Field, value string) *Builder {
	return b.Where(field, ":", "*"+value)
}

// WhereIn appends field:("v1" OR "v2" ...)
func (b *Builder) WhereIn(field Field, values []string) *Builder {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	b.clauses = append(b.clauses, string(field)+":("+strings.Join(quoted, " OR ")+")")
	return b
}

// WhereNot appends a negated clause, -field<operator>value. Values with
// spaces are quoted as in Where, so the whole value is excluded.
func (b *Builder) WhereNot(field Field, operator, value string) *Builder {
	b.clauses = append(b.clauses, "-"+clause(string(field), operator, value))
	return b
}

// WhereNotEquals appends -field:value
func (b *Builder) WhereNotEquals(field Field, value string) *Builder {
	return b.WhereNot(field, ":", value)
}

// WhereNotIn appends one negated clause per value, so every value is excluded
func (b *Builder) WhereNotIn(field Field, values []string) *Builder {
	for _, v := range values {
		b.WhereNot(field, ":", v)
	}
	return b
}

// WhereAnd groups the clauses added by fn as (c1 AND c2 ...).
// Nothing is appended when fn adds no clauses.
func (b *Builder) WhereAnd(fn func(*Builder)) *Builder {
	return b.group(" AND ", fn)
}

// WhereOr groups the clauses added by fn as (c1 OR c2 ...).
// Nothing is appended when fn adds no clauses.
func (b *Builder) WhereOr(fn func(*Builder)) *Builder {
	return b.group(" OR ", fn)
}

func (b *Builder) group(sep string, fn func(*Builder)) *Builder {
	sub := New()
	fn(sub)
	if len(sub.clauses) == 0 {
		return b
	}
	b.clauses = append(b.clauses, "("+strings.Join(sub.clauses, sep)+")")
	return b
}

// WhereExists appends field:*
func (b *Builder) WhereExists(field Field) *Builder {
	b.clauses = append(b.clauses, string(field)+":*")
	return b
}

// WhereNotExists appends -field:*
func (b *Builder) WhereNotExists(field Field) *Builder {
	b.clauses = append(b.clauses, "-"+string(field)+":*")
	return b
}

// WhereExact appends field:"value" regardless of whitespace in value
func (b *Builder) WhereExact(field Field, value string) *Builder {
	b.clauses = append(b.clauses, string(field)+`:"`+value+`"`)
	return b
}

// WhereWildcard appends field:pattern with the pattern left untouched
func (b *Builder) WhereWildcard(field Field, pattern string) *Builder {
	b.clauses = append(b.clauses, string(field)+":"+pattern)
	return b
}

// WhereContainsWildcard appends field:*pattern*
func (b *Builder) WhereContainsWildcard(field Field, pattern string) *Builder {
	return b.WhereWildcard(field, "*"+pattern+"*")
}

// WhereStartsWithWildcard appends field:pattern*
func (b *Builder) WhereStartsWithWildcard(field Field, pattern string) *Builder {
	return b.WhereWildcard(field, pattern+"*")
}

// WhereEndsWithWildcard appends field:*pattern
func (b *Builder) WhereEndsWithWildcard(field Field, pattern string) *Builder {
	return b.WhereWildcard(field, "*"+pattern)
}

// WhereWildcardExact appends field:pattern with spaces escaped as "\ "
// so a multi-word wildcard is matched as one term.
func (b *Builder) WhereWildcardExact(field Field, pattern string) *Builder {
	return b.WhereWildcard(field, strings.ReplaceAll(pattern, " ", `\ `))
}

// Raw appends clause verbatim
func (b *Builder) Raw(clause string) *Builder {
	b.clauses = append(b.clauses, clause)
	return b
}

// Build joins the clauses with a single space. It returns an empty string
// when nothing was added.
func (b *Builder) Build() string {
	if b == nil {
		return ""
	}
	return strings.Join(b.clauses, " ")
}

// String implements fmt.Stringer
func (b *Builder) String() string {
	return b.Build()
}

// Len returns the number of accumulated clauses
func (b *Builder) Len() int {
	if b == nil {
		return 0
	}
	return len(b.clauses)
}

// Clone returns an independent copy of the builder
func (b *Builder) Clone() *Builder {
	if b == nil {
		return New()
	}
	return &Builder{clauses: append([]string(nil), b.clauses...)}
}

func clause(field, operator, value string) string {
	if strings.Contains(value, " ") {
		value = `"` + value + `"`
	}
	return field + operator + value
}
