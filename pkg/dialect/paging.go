package dialect

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/termsql/pkg/core"
)

// Placeholder names emitted by prepared pagination.
const (
	PageOffsetParam = "_page.offset"
	PageSizeParam   = "_page.size"
	PageEndParam    = "_page.end"
)

// Page is a zero-based page request.
type Page struct {
	Index int
	Size  int
}

// Offset returns the number of rows skipped before the page.
func (p Page) Offset() int { return p.Index * p.Size }

// End returns the one-based row number of the last row on the page.
func (p Page) End() int { return p.Offset() + p.Size }

// PageParams returns the values bound to the prepared pagination
// placeholders for a page. A negative index is treated as 0.
func PageParams(pageIndex, pageSize int) map[string]any {
	p := normalizePage(pageIndex, pageSize)
	return map[string]any{
		PageOffsetParam: p.Offset(),
		PageSizeParam:   p.Size,
		PageEndParam:    p.End(),
	}
}

// Pager rewrites a base statement to select one page.
type Pager func(sql string, p Page, prepared bool) string

// Paginate applies the dialect's pager using the dialect's default mode.
func (d *Dialect) Paginate(sql string, pageIndex, pageSize int) string {
	return d.PaginateWith(sql, pageIndex, pageSize, d.preparedPaging)
}

// PaginateWith applies the dialect's pager with an explicit mode. In
// prepared mode the page bounds are emitted as #{_page.*} placeholders
// (see PageParams). A non-positive page size returns sql unchanged.
func (d *Dialect) PaginateWith(sql string, pageIndex, pageSize int, prepared bool) string {
	if pageSize <= 0 {
		return sql
	}
	pager := d.pager
	if pager == nil {
		pager = LimitOffsetPager
	}
	return pager(sql, normalizePage(pageIndex, pageSize), prepared)
}

// PreparedPaging reports the default pagination mode.
func (d *Dialect) PreparedPaging() bool {
	return d.preparedPaging
}

// SetPreparedPaging sets the default pagination mode.
func (d *Dialect) SetPreparedPaging(prepared bool) {
	d.preparedPaging = prepared
}

func normalizePage(index, size int) Page {
	if index < 0 {
		index = 0
	}
	return Page{Index: index, Size: size}
}

// bounds returns the offset, size and end tokens for a page.
func bounds(p Page, prepared bool) (offset, size, end string) {
	if prepared {
		return "#{" + PageOffsetParam + "}", "#{" + PageSizeParam + "}", "#{" + PageEndParam + "}"
	}
	return strconv.Itoa(p.Offset()), strconv.Itoa(p.Size), strconv.Itoa(p.End())
}

// --- Standard pagers ---

// PagerFor returns the standard pager for a paging style.
func PagerFor(style core.PagingStyle) Pager {
	switch style {
	case core.PagingLimitComma:
		return LimitCommaPager
	case core.PagingOffsetFetch:
		return OffsetFetchPager
	case core.PagingRownum:
		return RownumPager
	default:
		return LimitOffsetPager
	}
}

// LimitOffsetPager renders "sql LIMIT size OFFSET offset".
func LimitOffsetPager(sql string, p Page, prepared bool) string {
	offset, size, _ := bounds(p, prepared)
	return sql + " LIMIT " + size + " OFFSET " + offset
}

// LimitCommaPager renders "sql LIMIT offset,size".
func LimitCommaPager(sql string, p Page, prepared bool) string {
	offset, size, _ := bounds(p, prepared)
	return sql + " LIMIT " + offset + "," + size
}

// OffsetFetchPager renders "sql OFFSET n ROWS FETCH NEXT m ROWS ONLY".
// OFFSET requires a top-level ORDER BY, so one is added when the statement
// has none. Subqueries and OVER (...) clauses do not count.
func OffsetFetchPager(sql string, p Page, prepared bool) string {
	offset, size, _ := bounds(p, prepared)
	if !hasTopLevelOrderBy(sql) {
		sql += " ORDER BY (SELECT NULL)"
	}
	return sql + " OFFSET " + offset + " ROWS FETCH NEXT " + size + " ROWS ONLY"
}

// hasTopLevelOrderBy reports whether sql has ORDER BY outside parentheses,
// ignoring quoted text, bracketed identifiers and comments.
func hasTopLevelOrderBy(sql string) bool {
	depth := 0
	prev := ""
	for i := 0; i < len(sql); {
		c := sql[i]
		switch {
		case c == '\'' || c == '"':
			i = skipQuoted(sql, i, c)
			prev = ""
		case c == '[':
			i = skipQuoted(sql, i, ']')
			prev = ""
		case c == '-' && strings.HasPrefix(sql[i:], "--"):
			if n := strings.IndexByte(sql[i:], '\n'); n >= 0 {
				i += n + 1
			} else {
				i = len(sql)
			}
		case c == '/' && strings.HasPrefix(sql[i:], "/*"):
			if n := strings.Index(sql[i+2:], "*/"); n >= 0 {
				i += n + 4
			} else {
				i = len(sql)
			}
		case c == '(':
			depth++
			prev = ""
			i++
		case c == ')':
			if depth > 0 {
				depth--
			}
			prev = ""
			i++
		case isWordByte(c):
			j := i
			for j < len(sql) && isWordByte(sql[j]) {
				j++
			}
			if depth == 0 {
				word := strings.ToLower(sql[i:j])
				if prev == "order" && word == "by" {
					return true
				}
				prev = word
			}
			i = j
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		default:
			prev = ""
			i++
		}
	}
	return false
}

// skipQuoted returns the index just past the quoted section starting at i.
// A doubled closing character is an escape.
func skipQuoted(sql string, i int, closing byte) int {
	for j := i + 1; j < len(sql); j++ {
		if sql[j] != closing {
			continue
		}
		if j+1 < len(sql) && sql[j+1] == closing {
			j++
			continue
		}
		return j + 1
	}
	return len(sql)
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// RownumPager nests the statement and filters on rownum.
func RownumPager(sql string, p Page, prepared bool) string {
	offset, _, end := bounds(p, prepared)
	return "SELECT * FROM (SELECT row_.*, rownum rownum_ FROM (" + sql + ") row_ WHERE rownum <= " +
		end + ") WHERE rownum_ > " + offset
}
