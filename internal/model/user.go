package model

// User represents an account in the rental system. Email is not unique; the
// schema only bounds field lengths.
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Nome  string `json:"nome" gorm:"size:100;not null"`
	Email string `json:"email" gorm:"size:100;not null"`
	// TODO: hash passwords before storing
	Senha  string `json:"-" gorm:"size:100;not null"` // Never expose in JSON
	Funcao string `json:"funcao" gorm:"size:50;not null"`
}

// TableName keeps the table name aligned with the rental schema.
func (User) TableName() string {
	return "usuarios"
}
