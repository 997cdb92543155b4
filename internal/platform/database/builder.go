package database

import (
	"strings"

	"github.com/phrazzld/sarisari-api/internal/domain"
)

// likeEscape is the ESCAPE character used in search patterns. It is not
// special in any supported dialect's string literals.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// statement accumulates SQL text and arguments, numbering placeholders as
// they are added. Identifiers written into it come only from a Kind's field
// table, never from request input.
type statement struct {
	dialect Dialect
	sql     strings.Builder
	args    []any
}

func newStatement(d Dialect) *statement {
	return &statement{dialect: d}
}

func (s *statement) write(parts ...string) *statement {
	for _, p := range parts {
		s.sql.WriteString(p)
	}
	return s
}

// bind appends an argument and writes its placeholder.
func (s *statement) bind(v any) *statement {
	s.args = append(s.args, v)
	s.sql.WriteString(s.dialect.Placeholder(len(s.args)))
	return s
}

func (s *statement) String() string {
	return s.sql.String()
}

func selectColumns(kind domain.Kind) string {
	return strings.Join(kind.Columns(), ", ")
}

// searchPattern lowercases q and escapes LIKE metacharacters so the search
// is a literal substring match.
func searchPattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
}

func buildList(d Dialect, kind domain.Kind, search string) *statement {
	st := newStatement(d).write("SELECT ", selectColumns(kind), " FROM ", kind.Table)
	if search != "" && len(kind.SearchColumns) > 0 {
		pattern := searchPattern(search)
		st.write(" WHERE ")
		for i, col := range kind.SearchColumns {
			if i > 0 {
				st.write(" OR ")
			}
			st.write(d.Lower, "(", col, ") LIKE ").bind(pattern).write(" ESCAPE '", likeEscape, "'")
		}
	}
	return st.write(" ORDER BY ", domain.IDColumn)
}

func buildGet(d Dialect, kind domain.Kind, id int64) *statement {
	return newStatement(d).
		write("SELECT ", selectColumns(kind), " FROM ", kind.Table, " WHERE ", domain.IDColumn, " = ").
		bind(id)
}

func buildExists(d Dialect, kind domain.Kind, id int64) *statement {
	return newStatement(d).
		write("SELECT 1 FROM ", kind.Table, " WHERE ", domain.IDColumn, " = ").
		bind(id)
}

func buildInsert(d Dialect, kind domain.Kind, values domain.Values) *statement {
	cols := values.Columns(kind)
	st := newStatement(d).write("INSERT INTO ", kind.Table, " (", strings.Join(cols, ", "), ") VALUES (")
	for i, col := range cols {
		if i > 0 {
			st.write(", ")
		}
		st.bind(values[col])
	}
	st.write(")")
	if d.ReturningID {
		st.write(" RETURNING ", domain.IDColumn)
	}
	return st
}

func buildUpdate(d Dialect, kind domain.Kind, id int64, values domain.Values) *statement {
	st := newStatement(d).write("UPDATE ", kind.Table, " SET ")
	for i, col := range values.Columns(kind) {
		if i > 0 {
			st.write(", ")
		}
		st.write(col, " = ").bind(values[col])
	}
	return st.write(" WHERE ", domain.IDColumn, " = ").bind(id)
}

func buildDelete(d Dialect, kind domain.Kind, id int64) *statement {
	return newStatement(d).
		write("DELETE FROM ", kind.Table, " WHERE ", domain.IDColumn, " = ").
		bind(id)
}
