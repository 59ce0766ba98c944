package postgres_adapter

import (
	"fmt"
	"strings"
)

// updateBuilder накапливает SET-присваивания для частичного UPDATE
// с нумерованными аргументами $1..$n.
type updateBuilder struct {
	assignments []string
	args        []interface{}
	argID       int
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{argID: 1}
}

func (ub *updateBuilder) Add(fieldName string, arg interface{}) {
	ub.assignments = append(ub.assignments, fmt.Sprintf("%s = $%d", fieldName, ub.argID))
	ub.args = append(ub.args, arg)
	ub.argID++
}

// AddString добавляет присваивание, только если указатель не nil
func (ub *updateBuilder) AddString(fieldName string, val *string) {
	if val != nil {
		ub.Add(fieldName, *val)
	}
}

func (ub *updateBuilder) AddFloat(fieldName string, val *float64) {
	if val != nil {
		ub.Add(fieldName, *val)
	}
}

func (ub *updateBuilder) Empty() bool {
	return len(ub.assignments) == 0
}

// Build возвращает SET-часть и аргументы; следующий плейсхолдер - $len(args)+1
func (ub *updateBuilder) Build() (string, []interface{}) {
	return strings.Join(ub.assignments, ", "), ub.args
}
