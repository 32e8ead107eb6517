package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/travelpay/internal/apperrors"
	"github.com/kbukum/travelpay/internal/model"
	"github.com/kbukum/travelpay/internal/server"
	"github.com/kbukum/travelpay/internal/server/middleware"
	"github.com/kbukum/travelpay/internal/validation"
)

// travelRequest is the shared create/update payload for travel plans.
type travelRequest struct {
	ProvinceID int64      `json:"province_id" validate:"required,gt=0"`
	StartDate  model.Date `json:"start_date"`
	EndDate    model.Date `json:"end_date"`
	Notes      *string    `json:"notes" validate:"omitempty,max=500"`
}

// validate runs the semantic checks shared by create and update: both
// dates present, ordered, and the destination province on file.
func (h *Handler) validateTravel(c *gin.Context, req *travelRequest) (*model.Province, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, apperrors.Validation("start_date and end_date are required")
	}

	province, err := h.provinces.ByID(c.Request.Context(), req.ProvinceID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if province == nil {
		return nil, apperrors.NotFound("Province not found")
	}

	if req.StartDate.After(req.EndDate) {
		return nil, apperrors.InvalidInput("Start date cannot be after end date")
	}
	return province, nil
}

// ListTravels lists the authenticated user's travel plans.
func (h *Handler) ListTravels(c *gin.Context) {
	user := middleware.CurrentUser(c)

	travels, err := h.travels.ByUser(c.Request.Context(), user.ID)
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	server.RespondOK(c, travels)
}

// CreateTravel plans a trip for the authenticated user. The created plan
// is re-read with its province embedded; a miss there means the storage
// layer lost the row and is a server fault.
func (h *Handler) CreateTravel(c *gin.Context) {
	user := middleware.CurrentUser(c)

	req, ok := h.bindTravel(c)
	if !ok {
		return
	}
	if _, err := h.validateTravel(c, req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	travel := &model.Travel{
		UserID:     user.ID,
		ProvinceID: req.ProvinceID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Notes:      req.Notes,
	}
	if err := h.travels.Create(ctx, travel); err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}

	created, err := h.travels.ByID(ctx, travel.ID, user.ID)
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	if created == nil {
		h.log.Error("created travel missing on re-read", map[string]interface{}{
			"travel_id": travel.ID,
			"user_id":   user.ID,
		})
		server.RespondWithError(c, apperrors.Internal(errors.New("created travel not found")))
		return
	}
	server.RespondCreated(c, created)
}

// GetTravel returns one of the authenticated user's travel plans. Another
// user's plan and a nonexistent plan are indistinguishable.
func (h *Handler) GetTravel(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := pathID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	travel, err := h.travels.ByID(c.Request.Context(), id, user.ID)
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	if travel == nil {
		server.RespondWithError(c, apperrors.NotFound("Travel not found or not authorized"))
		return
	}
	server.RespondOK(c, travel)
}

// UpdateTravel replaces the mutable fields of a travel plan.
func (h *Handler) UpdateTravel(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := pathID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	req, ok := h.bindTravel(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	travel, err := h.travels.ByID(ctx, id, user.ID)
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	if travel == nil {
		server.RespondWithError(c, apperrors.NotFound("Travel not found or not authorized"))
		return
	}

	province, err := h.validateTravel(c, req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	travel.ProvinceID = req.ProvinceID
	travel.StartDate = req.StartDate
	travel.EndDate = req.EndDate
	travel.Notes = req.Notes
	travel.Province = *province
	if err := h.travels.Save(ctx, travel); err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	server.RespondOK(c, travel)
}

// DeleteTravel removes a travel plan.
func (h *Handler) DeleteTravel(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := pathID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	travel, err := h.travels.ByID(ctx, id, user.ID)
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	if travel == nil {
		server.RespondWithError(c, apperrors.NotFound("Travel not found or not authorized"))
		return
	}
	if err := h.travels.Delete(ctx, travel); err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	server.RespondNoContent(c)
}

// bindTravel binds and tag-validates the travel payload, responding on
// failure.
func (h *Handler) bindTravel(c *gin.Context) (*travelRequest, bool) {
	var req travelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body").WithCause(err))
		return nil, false
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return nil, false
	}
	return &req, true
}
