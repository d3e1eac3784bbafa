package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"vozurbana/backend/internal/config"
)

const (
	ctxUsuarioID = "usuario_id"
	ctxPapel     = "papel"
)

// parseToken verifies an HS256 token and extracts the account id and role
// from its claims.
func (h *Handler) parseToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return h.jwtSecret, nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	papel, _ := claims["papel"].(string)
	return uint(id), papel, nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Empty string when absent or malformed.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects requests without a valid token and stores the caller's
// id and role in the request context.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token não fornecido"})
			return
		}
		id, papel, err := h.parseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token inválido ou expirado"})
			return
		}
		c.Set(ctxUsuarioID, id)
		c.Set(ctxPapel, papel)
		c.Next()
	}
}

// RequireFuncionario runs after RequireAuth and blocks non-staff callers.
// 401 means "no idea who you are"; 403 means "known, but not allowed".
func (h *Handler) RequireFuncionario() gin.HandlerFunc {
	return func(c *gin.Context) {
		papel, ok := c.Get(ctxPapel)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "usuário não encontrado"})
			return
		}
		if papel != config.PapelFuncionario {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": "acesso negado: rota restrita a funcionários"})
			return
		}
		c.Next()
	}
}

// optionalUsuarioID extracts the caller's id when a valid token is present.
// An invalid or expired token degrades to anonymous rather than failing:
// submission must stay open to everyone.
func (h *Handler) optionalUsuarioID(c *gin.Context) *uint {
	token := bearerToken(c)
	if token == "" {
		return nil
	}
	id, _, err := h.parseToken(token)
	if err != nil {
		return nil
	}
	return &id
}

func currentUsuarioID(c *gin.Context) uint {
	id, _ := c.Get(ctxUsuarioID)
	uid, _ := id.(uint)
	return uid
}
