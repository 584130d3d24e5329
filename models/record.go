package models

import "time"

// Record holds the columns shared by every user-owned row: primary key,
// owner reference and the server-assigned creation timestamp. Meals and
// workouts embed it so the CRUD layer can operate on either.
type Record struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Meta returns the embedded Record. Promoted onto every embedding model,
// it is how generic code reaches the owner and timestamp fields.
func (r *Record) Meta() *Record { return r }

// Owned is satisfied by any model embedding Record.
type Owned interface {
	Meta() *Record
}
