package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"coachdesk_backend/internals/features/leads/dto"
	"coachdesk_backend/internals/features/leads/model"
	helper "coachdesk_backend/internals/helpers"
)

var validate = validator.New()

type LeadController struct {
	DB *gorm.DB
}

func NewLeadController(db *gorm.DB) *LeadController {
	return &LeadController{DB: db}
}

// CreateLead takes the public enquiry form. No auth; the rate limiter on the
// public group keeps abuse down.
//
// POST /api/public/leads
func (ctl *LeadController) CreateLead(c *fiber.Ctx) error {
	var req dto.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	source := req.Source
	if source == "" {
		source = "website"
	}

	lead := model.LeadModel{
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Email:    req.Email,
		CourseID: req.CourseID,
		BranchID: req.BranchID,
		Source:   source,
		Status:   model.LeadStatusNew,
	}
	if err := ctl.DB.Create(&lead).Error; err != nil {
		log.Println("[ERROR] CreateLead:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit enquiry")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enquiry submitted successfully", fiber.Map{
		"lead_id": lead.ID,
	})
}

// GET /api/a/leads — pipeline listing for sales; ?status= and ?assigned=me filters.
func (ctl *LeadController) GetLeads(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.LeadModel{})
	if status := c.Query("status"); status != "" {
		if !model.IsValidLeadStatus(status) {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid lead status")
		}
		q = q.Where("status = ?", status)
	}
	if c.Query("assigned") == "me" {
		userID, err := helper.GetUserID(c)
		if err != nil {
			return err
		}
		q = q.Where("assigned_to = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] GetLeads count:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve leads")
	}

	var leads []model.LeadModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&leads).Error; err != nil {
		log.Println("[ERROR] GetLeads:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve leads")
	}

	return helper.Success(c, "Leads fetched successfully", fiber.Map{
		"leads":      leads,
		"pagination": helper.BuildPagination(paging, total, len(leads)),
	})
}

// POST /api/a/leads/:id/claim — assign the lead to the calling staff member.
func (ctl *LeadController) ClaimLead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid lead ID format")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	res := ctl.DB.Model(&model.LeadModel{}).
		Where("id = ? AND assigned_to IS NULL", id).
		Update("assigned_to", userID)
	if res.Error != nil {
		log.Println("[ERROR] ClaimLead:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to claim lead")
	}
	if res.RowsAffected == 0 {
		// Either unknown id or already claimed; distinguish for the client.
		var n int64
		if err := ctl.DB.Model(&model.LeadModel{}).Where("id = ?", id).Count(&n).Error; err == nil && n > 0 {
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Lead is already claimed")
		}
		return helper.Error(c, fiber.StatusNotFound, "Lead not found")
	}
	return helper.Success(c, "Lead claimed successfully", nil)
}

// PUT /api/a/leads/:id/status — move the lead through the pipeline, optionally
// appending a follow-up note to the trail.
func (ctl *LeadController) UpdateLeadStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid lead ID format")
	}

	var req dto.UpdateLeadStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var lead model.LeadModel
	if err := ctl.DB.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lead not found")
		}
		log.Println("[ERROR] UpdateLeadStatus lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update lead")
	}

	lead.Status = req.Status
	if req.Note != nil {
		userID, err := helper.GetUserID(c)
		if err != nil {
			return err
		}
		if notes, err := appendNote(lead.Notes, userID, *req.Note); err == nil {
			lead.Notes = notes
		} else {
			log.Println("[ERROR] UpdateLeadStatus note:", err)
		}
	}

	if err := ctl.DB.Save(&lead).Error; err != nil {
		log.Println("[ERROR] UpdateLeadStatus save:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update lead")
	}
	return helper.Success(c, "Lead updated successfully", lead)
}

type leadNote struct {
	At   time.Time `json:"at"`
	By   uuid.UUID `json:"by"`
	Note string    `json:"note"`
}

func appendNote(existing datatypes.JSON, by uuid.UUID, note string) (datatypes.JSON, error) {
	var trail []leadNote
	if len(existing) > 0 {
		if err := sonic.Unmarshal(existing, &trail); err != nil {
			return nil, err
		}
	}
	trail = append(trail, leadNote{At: time.Now().UTC(), By: by, Note: note})
	raw, err := sonic.Marshal(trail)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
