package repository

const (
	IDField        QueryField = "id"
	NameField      QueryField = "name"
	StatusField    QueryField = "status"
	CreatedAtField QueryField = "created_at"
)

// Query narrows a List call. A zero Limit means no limit.
type Query struct {
	Values map[QueryField]string

	Limit int
}

type QueryField string

func NewQuery() *Query {
	return &Query{
		Values: map[QueryField]string{},
	}
}

func (q *Query) With(field QueryField, val string) *Query {
	q.Values[field] = val
	return q
}

func (q *Query) WithLimit(limit int) *Query {
	q.Limit = limit
	return q
}

// Get returns the value set for field.
func (q Query) Get(field QueryField) (string, bool) {
	val, ok := q.Values[field]
	return val, ok
}
