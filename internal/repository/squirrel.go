package repository

import sq "github.com/Masterminds/squirrel"

// psql builds the views table queries with PostgreSQL dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
