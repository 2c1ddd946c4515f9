// Package repository implements document and revision persistence for PostgreSQL and MySQL.
package repository

import (
	"strconv"
	"strings"

	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
)

const documentColumns = `id, type, title, content, status, author_id, created_at, updated_at`

const revisionColumns = `id, document_id, title, content, author_id, created_at`

type placeholderFunc func(n int) string

func dollarPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func questionPlaceholder(int) string {
	return "?"
}

// listQuery builds the filtered document listing. authorID is the driver-specific
// encoding of filter.AuthorID and is only used when the filter sets one.
func listQuery(filter documentDomain.ListFilter, authorID any, ph placeholderFunc) (string, []any) {
	var (
		where []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return ph(len(args))
	}

	where = append(where, "type = "+next(filter.Type))

	if filter.AuthorID != nil {
		where = append(where, "author_id = "+next(authorID))
	}

	if len(filter.Statuses) > 0 {
		in := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			in[i] = next(string(status))
		}
		where = append(where, "status IN ("+strings.Join(in, ", ")+")")
	}

	query := "SELECT " + documentColumns + " FROM documents WHERE " + strings.Join(where, " AND ") +
		" ORDER BY id DESC LIMIT " + next(filter.Limit) + " OFFSET " + next(filter.Offset)

	return query, args
}
