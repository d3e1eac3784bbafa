package models

// Departamento is a municipal organizational unit. Its manager must hold the
// staff role, which the service layer verifies before any write.
type Departamento struct {
	ID                   uint   `json:"id" gorm:"primaryKey"`
	Nome                 string `json:"nome" gorm:"uniqueIndex;not null"`
	Endereco             string `json:"endereco"`
	HorarioFuncionamento string `json:"horario_funcionamento"`
	GerenteID            uint   `json:"gerente_id" gorm:"not null"`
}

// DepartamentoInput is the JSON shape for create and update requests.
type DepartamentoInput struct {
	Nome                 string `json:"nome" binding:"required"`
	Endereco             string `json:"endereco" binding:"required"`
	HorarioFuncionamento string `json:"horario_funcionamento" binding:"required"`
	GerenteID            uint   `json:"gerente_id" binding:"required"`
}
