package models

// Table names are pinned because gorm's English pluralizer mangles the
// Portuguese entity names.

func (Usuario) TableName() string      { return "usuarios" }
func (Denuncia) TableName() string     { return "denuncias" }
func (Confirmacao) TableName() string  { return "confirmacoes" }
func (Comentario) TableName() string   { return "comentarios" }
func (Departamento) TableName() string { return "departamentos" }
func (TipoDenuncia) TableName() string { return "tipo_denuncia" }
