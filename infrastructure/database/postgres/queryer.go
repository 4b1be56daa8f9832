package postgres

import "database/sql"

// Queryer é a superfície mínima que os repositórios usam para executar SQL.
// Tanto a conexão quanto uma transação a satisfazem, então um repositório
// pode rodar dentro de RunInTransaction sem mudar de tipo
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
