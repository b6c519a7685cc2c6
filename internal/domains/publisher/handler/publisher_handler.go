package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"catalogo-backend/internal/domains/publisher"
	"catalogo-backend/internal/shared/response"
)

type PublisherHandler struct {
	service publisher.PublisherService
}

func NewPublisherHandler(service publisher.PublisherService) *PublisherHandler {
	return &PublisherHandler{service: service}
}

// RegisterRoutes mounts the collection under /editoras.
func (h *PublisherHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/editoras")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *PublisherHandler) List(c *gin.Context) {
	publishers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, publishers)
}

func (h *PublisherHandler) Get(c *gin.Context) {
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

func (h *PublisherHandler) Create(c *gin.Context) {
	var req publisher.CreatePublisherRequest
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

func (h *PublisherHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req publisher.UpdatePublisherRequest
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

func (h *PublisherHandler) Delete(c *gin.Context) {
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

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, response.MsgInvalidID)
		return 0, false
	}
	return id, true
}
