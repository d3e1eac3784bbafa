// Package handler is the HTTP edge: gin routes, JWT middleware, and the
// mapping from classified domain errors onto status codes. No business rules
// live here.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vozurbana/backend/internal/apperr"
	"vozurbana/backend/internal/denuncia"
	"vozurbana/backend/internal/departamento"
	"vozurbana/backend/internal/feed"
	"vozurbana/backend/internal/usuario"
)

// Handler bundles the services the routes dispatch into.
type Handler struct {
	Denuncias     *denuncia.Service
	Usuarios      *usuario.Service
	Departamentos *departamento.Service
	Hub           *feed.Manager

	jwtSecret []byte
}

func NewHandler(
	d *denuncia.Service,
	u *usuario.Service,
	dep *departamento.Service,
	hub *feed.Manager,
	jwtSecret string,
) *Handler {
	return &Handler{
		Denuncias:     d,
		Usuarios:      u,
		Departamentos: dep,
		Hub:           hub,
		jwtSecret:     []byte(jwtSecret),
	}
}

// Register wires every route onto the router.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	usuarios := r.Group("/usuarios")
	{
		usuarios.POST("", h.PostUsuario)
		usuarios.POST("/login", h.Login)
		usuarios.GET("/me", h.RequireAuth(), h.GetProfile)
	}

	denuncias := r.Group("/denuncias")
	{
		denuncias.GET("", h.GetDenuncias)
		denuncias.GET("/fila", h.GetFilaPrioridade)
		denuncias.GET("/anonimas", h.GetDenunciasAnonimas)
		denuncias.GET("/estatisticas", h.RequireAuth(), h.RequireFuncionario(), h.GetEstatisticas)
		denuncias.POST("", h.PostDenuncia)
		denuncias.POST("/:id/confirmar", h.RequireAuth(), h.ConfirmarDenuncia)
		denuncias.POST("/:id/comentarios", h.RequireAuth(), h.PostComentario)
		denuncias.GET("/:id/comentarios", h.GetComentarios)
	}

	departamentos := r.Group("/departamentos")
	{
		departamentos.GET("", h.GetDepartamentos)
		departamentos.GET("/:id", h.GetDepartamentoPorID)
		departamentos.GET("/nome/:nome", h.GetDepartamentoPorNome)
		departamentos.POST("", h.RequireAuth(), h.RequireFuncionario(), h.PostDepartamento)
		departamentos.PUT("/:id", h.RequireAuth(), h.RequireFuncionario(), h.PutDepartamento)
		departamentos.DELETE("/:id", h.RequireAuth(), h.RequireFuncionario(), h.DeleteDepartamento)
	}

	tipos := r.Group("/tipos-denuncia")
	{
		tipos.GET("", h.GetTiposDenuncia)
		tipos.GET("/:id", h.GetTipoDenunciaPorID)
		tipos.POST("", h.RequireAuth(), h.RequireFuncionario(), h.PostTipoDenuncia)
		tipos.PUT("/:id", h.RequireAuth(), h.RequireFuncionario(), h.PutTipoDenuncia)
		tipos.DELETE("/:id", h.RequireAuth(), h.RequireFuncionario(), h.DeleteTipoDenuncia)
	}

	r.GET("/ws/feed", h.RequireAuth(), h.RequireFuncionario(), h.ServeFeed)
}

// writeError maps a classified domain error onto an HTTP status. Anything
// unclassified is a 500.
func writeError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": appErr.Msg})
}
