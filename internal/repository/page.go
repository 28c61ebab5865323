package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 1
)

// Page is a 1-based page request: Offset counts pages of Limit rows.
type Page struct {
	Limit  int
	Offset int
}

// NewPage normalises a page request, falling back to the defaults for
// non-positive values.
func NewPage(limit, offset int) Page {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset <= 0 {
		offset = DefaultOffset
	}
	return Page{Limit: limit, Offset: offset}
}

// Skip is the number of rows to skip before the page starts.
func (p Page) Skip() int {
	return (p.Offset - 1) * p.Limit
}

func (p Page) scope(db *gorm.DB) *gorm.DB {
	return db.Limit(p.Limit).Offset(p.Skip())
}

// coalesce keeps the stored column value when v is nil, so a partial update
// runs as one statement without reading the row first.
func coalesce[T any](column string, v *T) clause.Expr {
	var arg interface{}
	if v != nil {
		arg = *v
	}
	return gorm.Expr("COALESCE(?, "+column+")", arg)
}

// returning makes UPDATE ... RETURNING * scan the new row back into the model.
var returning = clause.Returning{}
