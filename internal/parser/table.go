package parser

// Headers every journey table must declare. Extra columns are tolerated
// and ignored; order does not matter because rows are keyed by header name.
var RequiredHeaders = []string{
	"journey_id",
	"journey_name",
	"step",
	"user_does",
	"system_shows",
	"critical",
	"owner",
	"notes",
}

// Row is one data line of the table: the raw field values keyed by header
// name, plus the 1-based line number the row occupied in the source file.
type Row struct {
	Line   int
	Fields map[string]string
}

// Table is the parsed journey table: the discovered header list and the
// data rows in input order.
type Table struct {
	Headers []string
	Rows    []Row
}
