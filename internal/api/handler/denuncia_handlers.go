package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vozurbana/backend/internal/models"
)

// PostDenuncia accepts submissions from anyone. A valid token associates the
// report with the caller unless they asked for anonymity; no token or a bad
// token means fully anonymous.
func (h *Handler) PostDenuncia(c *gin.Context) {
	var input models.DenunciaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "campos obrigatórios ausentes: titulo, descricao, endereco_denuncia, tipo_denuncia_id",
		})
		return
	}

	usuarioID := h.optionalUsuarioID(c)
	created, err := h.Denuncias.Submit(&input, usuarioID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetDenuncias(c *gin.Context) {
	denuncias, err := h.Denuncias.ListEnriched()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, denuncias)
}

// GetFilaPrioridade returns the triage queue, most urgent first.
func (h *Handler) GetFilaPrioridade(c *gin.Context) {
	fila, err := h.Denuncias.ListByPriority()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fila)
}

// GetDenunciasAnonimas is the public listing: every report with the
// submitter stripped.
func (h *Handler) GetDenunciasAnonimas(c *gin.Context) {
	anonimas, err := h.Denuncias.ListAnonymized()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, anonimas)
}

func (h *Handler) GetEstatisticas(c *gin.Context) {
	stats, err := h.Denuncias.Estatisticas()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ConfirmarDenuncia(c *gin.Context) {
	denunciaID, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de denúncia inválido"})
		return
	}
	result, err := h.Denuncias.Confirmar(currentUsuarioID(c), denunciaID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) PostComentario(c *gin.Context) {
	denunciaID, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de denúncia inválido"})
		return
	}

	var body struct {
		Texto string `json:"texto"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "texto do comentário é obrigatório"})
		return
	}

	comentario, err := h.Denuncias.Comentar(currentUsuarioID(c), denunciaID, body.Texto)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comentario)
}

func (h *Handler) GetComentarios(c *gin.Context) {
	denunciaID, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de denúncia inválido"})
		return
	}
	comentarios, err := h.Denuncias.ListComentarios(denunciaID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comentarios)
}

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
