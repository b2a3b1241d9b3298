package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/configs"
	"coachdesk_backend/internals/constants"
	batchRoute "coachdesk_backend/internals/features/academics/batches/route"
	courseRoute "coachdesk_backend/internals/features/academics/courses/route"
	enrollmentRoute "coachdesk_backend/internals/features/academics/enrollments/route"
	branchRoute "coachdesk_backend/internals/features/institution/branches/route"
	institutionRoute "coachdesk_backend/internals/features/institution/route"
	leadRoute "coachdesk_backend/internals/features/leads/route"
	paymentRoute "coachdesk_backend/internals/features/payments/route"
	paymentService "coachdesk_backend/internals/features/payments/service"
	authRoute "coachdesk_backend/internals/features/users/auth/route"
	userRoute "coachdesk_backend/internals/features/users/user/route"
	authmw "coachdesk_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature behind three groups: /api/public (no auth),
// /api/u (any authenticated user), /api/a (staff). Group handlers in Fiber
// are prefix-wide middleware, so /api/a carries only the gates every staff
// route shares; the stricter admin/lead gates live inside the feature route
// files, scoped to their own sub-routers.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up auth routes...")
	authRoute.AuthRoutes(app, db)

	// ===================== WEBHOOK =====================
	// Signature-verified; must stay outside the JWT groups.
	log.Println("[INFO] Setting up payment webhook...")
	paymentRoute.PaymentWebhookRoutes(app, db)

	// ===================== GROUPS =====================
	public := app.Group("/api/public")

	user := app.Group("/api/u", authmw.AuthMiddleware(db))

	staff := app.Group("/api/a",
		authmw.AuthMiddleware(db),
		authmw.OnlyRoles("Access restricted to institute staff",
			constants.StaffRoles...),
	)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Mounting public routes...")
	batchRoute.BatchPublicRoutes(public, db)
	leadRoute.LeadPublicRoutes(public, db)

	// ===================== USER =====================
	log.Println("[INFO] Mounting user routes...")
	gateway := paymentService.NewMidtransGateway(configs.MidtransServerKey, configs.MidtransUseProd)
	paymentRoute.PaymentUserRoutes(user, db, gateway)
	enrollmentRoute.EnrollmentUserRoutes(user, db)

	// ===================== STAFF / ADMIN =====================
	log.Println("[INFO] Mounting staff routes...")
	mountStaffRoutes(staff, db)

	log.Println("[SUCCESS] All routes mounted")
}

// mountStaffRoutes attaches everything under /api/a to the staff group.
func mountStaffRoutes(staff fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(staff, db)
	branchRoute.BranchAdminRoutes(staff, db)
	courseRoute.CourseAdminRoutes(staff, db)
	batchRoute.BatchAdminRoutes(staff, db)
	institutionRoute.DirectoryAdminRoutes(staff, db)
	enrollmentRoute.EnrollmentAdminRoutes(staff, db)
	leadRoute.LeadStaffRoutes(staff, db)
}
