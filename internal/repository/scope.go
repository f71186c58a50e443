package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"freight/internal/service/access"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QB построитель запросов с плейсхолдерами PostgreSQL.
var QB sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ScopeCond единственное место, где предикат видимости превращается в SQL.
// Фильтры вызывающего добавляются к нему только через sq.And.
func ScopeCond(p access.Predicate, senderCol, receiverCol string) sq.Sqlizer {
	if p.IsUnrestricted() {
		return sq.Expr("TRUE")
	}

	owner, ok := p.Owner()
	if !ok {
		return sq.Expr("FALSE")
	}

	return sq.Or{
		sq.Eq{senderCol: owner},
		sq.Eq{receiverCol: owner},
	}
}

// Page ограничивает размер выборки.
func Page(builder sq.SelectBuilder, limit, offset uint64) sq.SelectBuilder {
	switch {
	case limit == 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	return builder.Limit(limit).Offset(offset)
}

// ContainsPattern шаблон ILIKE для поиска подстроки. Символы % и _ в запросе
// совпадают только сами с собой.
func ContainsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}
