package config

// User roles. Self-registration always starts as PapelCidadao.
const (
	PapelCidadao     = "cidadao"
	PapelFuncionario = "funcionario"
)

// Default complaint status when the caller does not supply one.
const StatusPendente = "Pendente"

// Priority levels derived from complaint text.
const (
	PrioridadeBaixa   = 1
	PrioridadeMedia   = 2
	PrioridadeCritica = 3
)

// Keyword sets per priority level. Matching is plain substring containment
// on the lowercased title+description, so "eletric" also catches
// "eletricidade" and "eletricista".
var (
	// Life safety: fire, electrical hazards, explosions, victims.
	PalavrasCriticas = []string{
		"acidente elétrico",
		"acidente eletrico",
		"choque elétrico",
		"choque eletrico",
		"eletric",
		"incêndio",
		"incendio",
		"fogo",
		"explosão",
		"explosao",
		"vítima",
		"vitima",
	}

	// Infrastructure failures: outages, leaks, flooding, collapses.
	PalavrasMedias = []string{
		"queda de energia",
		"apagão",
		"apagao",
		"queda energia",
		"vazamento",
		"alagamento",
		"desabamento",
	}

	// Sanitation and minor upkeep.
	PalavrasBaixas = []string{
		"lixo",
		"entulho",
		"lixo na calçada",
		"lixo na calcada",
		"calçada suja",
		"poda de árvore",
	}
)
