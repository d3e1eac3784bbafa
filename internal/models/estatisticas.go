package models

// StatusContagem is one row of the status grouping. Contagem is scanned into
// an int64 because some backends return aggregate counts as text.
type StatusContagem struct {
	Status   string `json:"status"`
	Contagem int64  `json:"contagem"`
}

// DepartamentoContagem counts reports per department, resolved through the
// report -> category -> department join.
type DepartamentoContagem struct {
	NomeDepartamento string `json:"nome_departamento"`
	Contagem         int64  `json:"contagem"`
}

// Estatisticas is the dashboard aggregate, recomputed from live data on
// every call.
type Estatisticas struct {
	TotalDenuncias           int64                  `json:"total_denuncias"`
	DenunciasPorStatus       []StatusContagem       `json:"denuncias_por_status"`
	DenunciasPorDepartamento []DepartamentoContagem `json:"denuncias_por_departamento"`
}
