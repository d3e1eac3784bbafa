package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// FotoList stores photo URLs as a native text[] on PostgreSQL. Other
// dialects (the in-memory SQLite used in tests) fall back to a text column
// holding the same array literal.
type FotoList pq.StringArray

func (f FotoList) Value() (driver.Value, error) {
	return pq.StringArray(f).Value()
}

func (f *FotoList) Scan(src interface{}) error {
	return (*pq.StringArray)(f).Scan(src)
}

func (FotoList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
