package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/travelpay/internal/apperrors"
	"github.com/kbukum/travelpay/internal/model"
	"github.com/kbukum/travelpay/internal/server"
	"github.com/kbukum/travelpay/internal/store"
	"github.com/kbukum/travelpay/internal/validation"
)

// createProvinceRequest is the province creation payload.
type createProvinceRequest struct {
	NameTH           string  `json:"name_th" validate:"required,max=100"`
	NameEN           *string `json:"name_en" validate:"omitempty,max=100"`
	Region           string  `json:"region" validate:"omitempty,max=50"`
	CityTier         string  `json:"city_tier" validate:"required,oneof=main secondary"`
	TaxReductionRate float64 `json:"tax_reduction_rate" validate:"gte=0,lte=100"`
	TaxDescription   *string `json:"tax_description" validate:"omitempty,max=255"`
}

// ListProvinces lists provinces, optionally filtered by city tier.
func (h *Handler) ListProvinces(c *gin.Context) {
	tier := c.Query("city_tier")
	v := validation.New().OneOf("city_tier", tier, []string{"main", "secondary"})
	if appErr := v.Validate(); appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}

	provinces, err := h.provinces.All(c.Request.Context(), model.CityTier(tier))
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	server.RespondOK(c, provinces)
}

// ListSecondaryProvinces lists the secondary-tier provinces eligible for
// the higher subsidy rate.
func (h *Handler) ListSecondaryProvinces(c *gin.Context) {
	provinces, err := h.provinces.All(c.Request.Context(), model.CityTierSecondary)
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	server.RespondOK(c, provinces)
}

// GetProvince returns a single province by id.
func (h *Handler) GetProvince(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	province, err := h.provinces.ByID(c.Request.Context(), id)
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	if province == nil {
		server.RespondWithError(c, apperrors.NotFound("Province not found"))
		return
	}
	server.RespondOK(c, province)
}

// CreateProvince adds a province. The Thai name is the natural key; a
// duplicate is a conflict whether it is seen before or during the insert.
func (h *Handler) CreateProvince(c *gin.Context) {
	var req createProvinceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body").WithCause(err))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	existing, err := h.provinces.ByNameTH(ctx, req.NameTH)
	if err != nil {
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	if existing != nil {
		server.RespondWithError(c, apperrors.Conflict("Province with this Thai name already exists", "name_th"))
		return
	}

	province := &model.Province{
		NameTH:           req.NameTH,
		NameEN:           req.NameEN,
		Region:           req.Region,
		CityTier:         model.CityTier(req.CityTier),
		TaxReductionRate: req.TaxReductionRate,
		TaxDescription:   req.TaxDescription,
	}
	if err := h.provinces.Create(ctx, province); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			server.RespondWithError(c, apperrors.Conflict("Province with this Thai name already exists", "name_th"))
			return
		}
		server.RespondWithError(c, apperrors.DatabaseError(err))
		return
	}
	server.RespondCreated(c, province)
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("id must be a positive integer")
	}
	return id, nil
}
