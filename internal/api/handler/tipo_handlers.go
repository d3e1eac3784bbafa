package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vozurbana/backend/internal/models"
)

func (h *Handler) GetTiposDenuncia(c *gin.Context) {
	tipos, err := h.Departamentos.ListTipos()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tipos)
}

func (h *Handler) GetTipoDenunciaPorID(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	t, err := h.Departamentos.GetTipoByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) PostTipoDenuncia(c *gin.Context) {
	var input models.TipoDenunciaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "campos obrigatórios: nome, departamento_id"})
		return
	}
	t, err := h.Departamentos.CreateTipo(&input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) PutTipoDenuncia(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	var input models.TipoDenunciaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "campos obrigatórios: nome, departamento_id"})
		return
	}
	t, err := h.Departamentos.UpdateTipo(id, &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTipoDenuncia(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	if err := h.Departamentos.DeleteTipo(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
