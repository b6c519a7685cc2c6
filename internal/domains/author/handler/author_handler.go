package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"catalogo-backend/internal/domains/author"
	"catalogo-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.AuthorService
}

func NewAuthorHandler(service author.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// RegisterRoutes mounts the collection under /autores, plus the legacy
// singular /autor listing that returns authors without their books.
func (h *AuthorHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/autores")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)

	r.GET("/autor", h.ListPlain)
}

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, authors)
}

func (h *AuthorHandler) ListPlain(c *gin.Context) {
	authors, err := h.service.ListPlain(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, authors)
}

func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, detail)
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.MsgInvalidBody)
		return
	}
	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.MsgInvalidBody)
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, updated)
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// pathID parses the :id param, answering 400 itself when it is not numeric.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, response.MsgInvalidID)
		return 0, false
	}
	return id, true
}
