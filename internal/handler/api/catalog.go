package api

import (
	"net/http"

	reqdto "bookmyvenue/internal/handler/dto/request"
	resdto "bookmyvenue/internal/handler/dto/response"
	"bookmyvenue/internal/handler/httperr"
	"bookmyvenue/internal/usecase/commands"
	"bookmyvenue/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Param type query string false "venue, decor, catering or menu"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/catalog/services [get]
func (h *CatalogHandler) List(c *gin.Context) {
	views, err := h.q.ListServices(c.Request.Context(), c.Query("type"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get service
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/catalog/services/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetService(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Venue detail
// @Description Venue with the owner's decor, catering and menu items
// @Tags catalog
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/catalog/venues/{id} [get]
func (h *CatalogHandler) VenueDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.q.GetVenueDetail(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueDetail(detail))
}

// @Summary Search venues
// @Description Case-insensitive match over title, description and occasion types
// @Tags catalog
// @Produce json
// @Param q query string false "Keyword"
// @Success 200 {array} resdto.ServiceResponse
// @Router /api/catalog/venues/search [get]
func (h *CatalogHandler) SearchVenues(c *gin.Context) {
	views, err := h.q.SearchVenues(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary List own services
// @Tags business
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ServiceResponse
// @Router /api/business/services [get]
func (h *CatalogHandler) ListOwn(c *gin.Context) {
	ownerID, _, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Create service
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/business/services [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	ownerID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id, err := h.cmds.CreateService(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithService(c, http.StatusCreated, id)
}

// @Summary Create services in bulk
// @Description Every item is created in one transaction or none is
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkCreateServicesRequest true "Services"
// @Success 201 {object} resdto.CreatedListResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/business/services/bulk [post]
func (h *CatalogHandler) CreateBulk(c *gin.Context) {
	ownerID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.BulkCreateServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ids, err := h.cmds.CreateServices(c.Request.Context(), ownerID, req.ToInputs())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res := resdto.CreatedListResponse{IDs: make([]string, len(ids))}
	for i, id := range ids {
		res.IDs[i] = id.String()
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Update own service
// @Description Partial update; the service type cannot change
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/business/services/{id} [patch]
func (h *CatalogHandler) Update(c *gin.Context) {
	ownerID, _, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.cmds.UpdateService(c.Request.Context(), ownerID, id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithService(c, http.StatusOK, id)
}

// @Summary Delete own service
// @Tags business
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/business/services/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	ownerID, _, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteService(c.Request.Context(), ownerID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) respondWithService(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetService(c.Request.Context(), id)
	if err != nil {
		committedWithoutView(c, status, id, err)
		return
	}
	c.JSON(status, resdto.FromServiceView(view))
}
