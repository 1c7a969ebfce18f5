package rest

import (
	"fmt"
	"strings"
)

// Query builds a resource string in the backend's filter grammar. Zero value
// is not usable; start from Table.
type Query struct {
	table  string
	params []string
}

// Table starts a query against the given table
func Table(name string) Query {
	return Query{table: name}
}

// Select sets the projected columns ("*" for all)
func (q Query) Select(cols string) Query {
	q.params = append(q.params, "select="+cols)
	return q
}

// Eq filters rows where field equals value
func (q Query) Eq(field string, value any) Query {
	q.params = append(q.params, fmt.Sprintf("%s=eq.%v", field, value))
	return q
}

// In filters rows where field is one of the given values
func (q Query) In(field string, values ...string) Query {
	q.params = append(q.params, fmt.Sprintf("%s=in.(%s)", field, strings.Join(values, ",")))
	return q
}

// OrderDesc sorts by field descending
func (q Query) OrderDesc(field string) Query {
	q.params = append(q.params, "order="+field+".desc")
	return q
}

// OrderAsc sorts by field ascending
func (q Query) OrderAsc(field string) Query {
	q.params = append(q.params, "order="+field+".asc")
	return q
}

// String renders the resource path for Client.Do
func (q Query) String() string {
	if len(q.params) == 0 {
		return q.table
	}
	return q.table + "?" + strings.Join(q.params, "&")
}
