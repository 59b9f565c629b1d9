package model

// Rental is one booking of a motorcycle over an inclusive date range, billed
// per day. Records are produced by the pricing calculation; deleting a
// motorcycle is restricted while rentals reference it.
type Rental struct {
	ID          uint  `json:"id" gorm:"primaryKey"`
	MotoID      uint  `json:"motoId" gorm:"not null;index"`
	DataInicial Date  `json:"dataInicial"`
	DataFinal   Date  `json:"dataFinal"`
	ValorFinal  Money `json:"valorFinal" gorm:"type:decimal(18,2)"`

	Moto Motorcycle `json:"-" gorm:"foreignKey:MotoID;constraint:OnDelete:RESTRICT"`
}

// TableName keeps the table name aligned with the rental schema.
func (Rental) TableName() string {
	return "locacoes"
}
