package testfixtures

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"strconv"
	"sync"
)

var errNotRecorded = errors.New("testfixtures: only ExecContext is recorded")

// Query выполненный запрос и его аргументы
type Query struct {
	SQL  string
	Args []interface{}
}

// ArgsFor аргументы плейсхолдеров, стоящих сразу после expr, например "status =" или "h.id <>"
// Совпадения внутри составных имен (h.status, assigned_room_id) не учитываются
func (q Query) ArgsFor(expr string) []interface{} {
	re := regexp.MustCompile(`(?:^|[\s(])` + regexp.QuoteMeta(expr) + `\s*\$(\d+)`)

	var args []interface{}
	for _, m := range re.FindAllStringSubmatch(q.SQL, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > len(q.Args) {
			continue
		}
		args = append(args, q.Args[n-1])
	}
	return args
}

// Executor записывает запросы вместо обращения к PostgreSQL
// Поддерживает только ExecContext: UPDATE и DELETE с RowsAffected
type Executor struct {
	mu           sync.Mutex
	Queries      []Query
	RowsAffected int64
	Err          error
}

func (e *Executor) record(query string, args []interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Queries = append(e.Queries, Query{SQL: query, Args: args})
}

// Last последний записанный запрос
func (e *Executor) Last() Query {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.Queries) == 0 {
		return Query{}
	}
	return e.Queries[len(e.Queries)-1]
}

func (e *Executor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.record(query, args)
	if e.Err != nil {
		return nil, e.Err
	}
	return driver.RowsAffected(e.RowsAffected), nil
}

func (e *Executor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	e.record(query, args)
	return nil, errNotRecorded
}

func (e *Executor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	e.record(query, args)
	panic(errNotRecorded)
}
