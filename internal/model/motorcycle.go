package model

// Motorcycle represents a rentable motorcycle in the fleet. The ID is
// assigned by the store on insert and never reassigned.
type Motorcycle struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Placa       string `json:"placa" gorm:"size:20"`
	Modelo      string `json:"modelo" gorm:"size:100"`
	IDMotor     int    `json:"idMotor" gorm:"column:id_motor"`
	ValorDiaria Money  `json:"valorDiaria" gorm:"type:decimal(18,2)"`
}

// TableName keeps the table name aligned with the rental schema.
func (Motorcycle) TableName() string {
	return "motos"
}
