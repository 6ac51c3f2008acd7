package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightwave-agency/proposals-service/internal/model"
	"github.com/brightwave-agency/proposals-service/internal/service"
)

type serviceRequest struct {
	ServiceID     string  `json:"service_id" binding:"required"`
	Enabled       *bool   `json:"enabled"`
	SortOrder     *int    `json:"sort_order"`
	CustomSummary *string `json:"custom_summary"`
}

type createProposalRequest struct {
	ClientName    string  `json:"client_name" binding:"required"`
	ClientLogoURL *string `json:"client_logo_url"`
	Slug          string  `json:"slug" binding:"required"`
	Status        *string `json:"status"`
	HeroTitle     *string `json:"hero_title"`
	HeroSubtitle  *string `json:"hero_subtitle"`

	PricingOption1Name  *string  `json:"pricing_option_1_name"`
	PricingOption1Price *float64 `json:"pricing_option_1_price"`
	PricingOption1Desc  *string  `json:"pricing_option_1_desc"`
	PricingOption2Name  *string  `json:"pricing_option_2_name"`
	PricingOption2Price *float64 `json:"pricing_option_2_price"`
	PricingOption2Desc  *string  `json:"pricing_option_2_desc"`

	CustomNote *string          `json:"custom_note"`
	Services   []serviceRequest `json:"services"`
}

// updateProposalRequest is the mutable-field allow-list. Unknown JSON keys
// are dropped during binding rather than rejected.
type updateProposalRequest struct {
	ClientName    *string `json:"client_name"`
	ClientLogoURL *string `json:"client_logo_url"`
	Slug          *string `json:"slug"`
	Status        *string `json:"status"`
	HeroTitle     *string `json:"hero_title"`
	HeroSubtitle  *string `json:"hero_subtitle"`

	PricingOption1Name  *string  `json:"pricing_option_1_name"`
	PricingOption1Price *float64 `json:"pricing_option_1_price"`
	PricingOption1Desc  *string  `json:"pricing_option_1_desc"`
	PricingOption2Name  *string  `json:"pricing_option_2_name"`
	PricingOption2Price *float64 `json:"pricing_option_2_price"`
	PricingOption2Desc  *string  `json:"pricing_option_2_desc"`

	CustomNote *string          `json:"custom_note"`
	Services   []serviceRequest `json:"services"`
}

type replaceServicesRequest struct {
	Services []serviceRequest `json:"services" binding:"required"`
}

func (h *Handler) createProposal(c *gin.Context) {
	var req createProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposal, err := h.proposals.Create(c.Request.Context(), service.CreateProposalInput{
		ClientName:          req.ClientName,
		ClientLogoURL:       req.ClientLogoURL,
		Slug:                req.Slug,
		Status:              toStatus(req.Status),
		HeroTitle:           req.HeroTitle,
		HeroSubtitle:        req.HeroSubtitle,
		PricingOption1Name:  req.PricingOption1Name,
		PricingOption1Price: req.PricingOption1Price,
		PricingOption1Desc:  req.PricingOption1Desc,
		PricingOption2Name:  req.PricingOption2Name,
		PricingOption2Price: req.PricingOption2Price,
		PricingOption2Desc:  req.PricingOption2Desc,
		CustomNote:          req.CustomNote,
		Services:            toServiceInputs(req.Services),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proposal)
}

func (h *Handler) listProposals(c *gin.Context) {
	summaries, err := h.proposals.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *Handler) getProposal(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}
	proposal, err := h.proposals.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *Handler) getProposalBySlug(c *gin.Context) {
	proposal, err := h.proposals.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *Handler) updateProposal(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	var req updateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateProposalInput{
		ClientName:          req.ClientName,
		ClientLogoURL:       req.ClientLogoURL,
		Slug:                req.Slug,
		Status:              toStatus(req.Status),
		HeroTitle:           req.HeroTitle,
		HeroSubtitle:        req.HeroSubtitle,
		PricingOption1Name:  req.PricingOption1Name,
		PricingOption1Price: req.PricingOption1Price,
		PricingOption1Desc:  req.PricingOption1Desc,
		PricingOption2Name:  req.PricingOption2Name,
		PricingOption2Price: req.PricingOption2Price,
		PricingOption2Desc:  req.PricingOption2Desc,
		CustomNote:          req.CustomNote,
	}
	if req.Services != nil {
		input.Services = toServiceInputs(req.Services)
	}

	proposal, err := h.proposals.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *Handler) replaceServices(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	var req replaceServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.proposals.ReplaceServices(c.Request.Context(), id, toServiceInputs(req.Services)); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) deleteProposal(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}
	if err := h.proposals.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) agreementPDF(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}
	result, err := h.proposals.AgreementPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func toStatus(raw *string) *model.ProposalStatus {
	if raw == nil {
		return nil
	}
	status := model.ProposalStatus(*raw)
	return &status
}

func toServiceInputs(requests []serviceRequest) []service.ServiceInput {
	inputs := make([]service.ServiceInput, 0, len(requests))
	for _, req := range requests {
		inputs = append(inputs, service.ServiceInput{
			ServiceID:     req.ServiceID,
			Enabled:       req.Enabled,
			SortOrder:     req.SortOrder,
			CustomSummary: req.CustomSummary,
		})
	}
	return inputs
}
