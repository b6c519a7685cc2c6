// Package response maps service outcomes onto the wire. Success bodies are
// the entity JSON itself; rejections are {"error": "<mensagem>"}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catalogo-backend/internal/shared/apperr"
)

// Messages shared by every handler.
const (
	MsgInvalidID   = "ID deve ser um número válido"
	MsgInvalidBody = "Corpo da requisição inválido"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest rejects with a structural message before any service call.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// Error maps a typed rejection to its status and message. Internal failures
// are logged with full detail and the caller only sees the generic message.
func Error(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("internal error")
	}
	c.JSON(status, gin.H{"error": apperr.MessageOf(err)})
}
