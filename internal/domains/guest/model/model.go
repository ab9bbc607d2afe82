package model

import "github.com/gakiokevin/myhotel/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldIDType    = "id_type"
	FieldIDNumber  = "id_number"
)

// Guest rows are written once at first check-in and reused for every later
// stay. The id_number column carries a unique index and acts as the identity
// key for the insert-or-find lookup.
type Guest struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Phone     string `db:"phone"`
	Email     string `db:"email"`
	IDType    string `db:"id_type"`
	IDNumber  string `db:"id_number"`
	model.Metadata
}
