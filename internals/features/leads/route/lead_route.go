package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/constants"
	"coachdesk_backend/internals/features/leads/controller"
	authmw "coachdesk_backend/internals/middlewares/auth"
)

// LeadPublicRoutes exposes the enquiry form endpoint without auth.
func LeadPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeadController(db)
	public.Post("/leads", ctl.CreateLead)
}

// LeadStaffRoutes mounts the sales pipeline under the staff group, gated
// to the roles that work leads.
func LeadStaffRoutes(staff fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeadController(db)

	leads := staff.Group("/leads",
		authmw.OnlyRoles("Only sales staff may manage leads", constants.LeadRoles...))
	leads.Get("/", ctl.GetLeads)
	leads.Post("/:id/claim", ctl.ClaimLead)
	leads.Put("/:id/status", ctl.UpdateLeadStatus)
}
