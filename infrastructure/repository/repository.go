package repository

import (
	"github.com/Masterminds/squirrel"
)

// psql é o builder com placeholders no formato do Postgres ($1, $2...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type rowScanner interface {
	Scan(dest ...any) error
}
