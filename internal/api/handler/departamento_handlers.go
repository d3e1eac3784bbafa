package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vozurbana/backend/internal/models"
)

func (h *Handler) GetDepartamentos(c *gin.Context) {
	departamentos, err := h.Departamentos.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, departamentos)
}

func (h *Handler) GetDepartamentoPorID(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	d, err := h.Departamentos.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) GetDepartamentoPorNome(c *gin.Context) {
	d, err := h.Departamentos.GetByNome(c.Param("nome"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) PostDepartamento(c *gin.Context) {
	var input models.DepartamentoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "campos obrigatórios: nome, endereco, horario_funcionamento, gerente_id",
		})
		return
	}
	d, err := h.Departamentos.Create(&input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *Handler) PutDepartamento(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	var input models.DepartamentoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "campos obrigatórios: nome, endereco, horario_funcionamento, gerente_id",
		})
		return
	}
	d, err := h.Departamentos.Update(id, &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDepartamento(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	if err := h.Departamentos.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
