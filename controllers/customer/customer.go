package customer

import (
	"errors"
	"strings"

	"travelplans/constants"
	"travelplans/logger"
	"travelplans/middleware"
	customerModel "travelplans/models/customer"
	"travelplans/services/aggregate"
	"travelplans/services/ai"
	"travelplans/store"
	"travelplans/types"
	customerTypes "travelplans/types/customer"
	"travelplans/utils"

	"github.com/gofiber/fiber/v2"
)

// CustomerController handles customer records, their documents and the
// customer-facing AI features.
type CustomerController struct {
	store          *store.Store
	assistant      ai.Assistant
	loggerInstance *logger.AsyncLogger
}

func NewCustomerController(s *store.Store, assistant ai.Assistant, asyncLogger *logger.AsyncLogger) *CustomerController {
	return &CustomerController{store: s, assistant: assistant, loggerInstance: asyncLogger}
}

// canAccessRecord reports whether the principal may work with this
// customer record. Staff roles reach any record; a customer reaches only
// the record matching their own login email.
func (cc *CustomerController) canAccessRecord(c *fiber.Ctx, cust customerModel.Customer) bool {
	roles := middleware.PrincipalRoles(c)
	if roles[constants.RoleAdmin] || roles[constants.RoleAgent] || roles[constants.RoleRelationshipManager] {
		return true
	}
	email, ok := middleware.PrincipalEmail(c)
	return ok && strings.EqualFold(email, cust.Email)
}

func (cc *CustomerController) forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
		Message: "Insufficient permissions",
		Status:  fiber.StatusForbidden,
	})
}

// Index lists customers scoped by the principal's strongest role: admin
// sees everyone, an agent the customers they registered, a relationship
// manager the customers assigned to them.
func (cc *CustomerController) Index(c *fiber.Ctx) error {
	snap := cc.store.Read()
	customers := snap.Customers

	roles := middleware.PrincipalRoles(c)
	principalID, _ := middleware.PrincipalID(c)
	switch {
	case roles[constants.RoleAdmin]:
		// Full roster
	case roles[constants.RoleAgent]:
		customers = aggregate.CustomersForAgent(principalID, customers)
	case roles[constants.RoleRelationshipManager]:
		customers = aggregate.CustomersForRM(principalID, customers)
	default:
		customers = []customerModel.Customer{}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Customers fetched successfully",
		Status:  fiber.StatusOK,
		Data:    customers,
	})
}

// DocumentsRoster flattens every customer document for the documents page.
// A customer without a staff role only sees documents on their own record.
func (cc *CustomerController) DocumentsRoster(c *fiber.Ctx) error {
	snap := cc.store.Read()
	customers := snap.Customers

	roles := middleware.PrincipalRoles(c)
	if !roles[constants.RoleAdmin] && !roles[constants.RoleAgent] && !roles[constants.RoleRelationshipManager] {
		email, _ := middleware.PrincipalEmail(c)
		own := make([]customerModel.Customer, 0, 1)
		for _, cust := range customers {
			if strings.EqualFold(cust.Email, email) {
				own = append(own, cust)
			}
		}
		customers = own
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Documents fetched successfully",
		Status:  fiber.StatusOK,
		Data:    aggregate.DocumentsRoster(customers),
	})
}

// Show returns one customer with derived details.
func (cc *CustomerController) Show(c *fiber.Ctx) error {
	id := c.Params("id")
	cust, found := cc.store.FindCustomerByID(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Customer not found",
			Status:  fiber.StatusNotFound,
		})
	}
	if !cc.canAccessRecord(c, cust) {
		return cc.forbidden(c)
	}

	snap := cc.store.Read()
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Customer fetched successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"customer": cust,
			"age":      utils.AgeInYears(cust.DOB),
			"bookings": aggregate.BookingsForCustomerRecord(cust.ID, snap.Bookings),
		},
	})
}

// Store registers a new customer.
func (cc *CustomerController) Store(c *fiber.Ctx) error {
	var req customerTypes.CustomerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	created, err := cc.store.CreateCustomer(c.Context(), store.NewCustomer{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		DOB:                 req.DOB,
		RegisteredByAgentID: req.RegisteredByAgentID,
		AssignedRmID:        req.AssignedRmID,
	})
	if err != nil {
		return cc.storeError(c, "Failed to create customer", err)
	}

	logger.Success("Customer created successfully. id: " + created.ID)
	return cc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Message: "Customer created successfully",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

// Update replaces a customer record by id, keeping its documents.
func (cc *CustomerController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	existing, found := cc.store.FindCustomerByID(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Customer not found",
			Status:  fiber.StatusNotFound,
		})
	}

	var req customerTypes.CustomerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	updated := customerModel.Customer{
		ID:                  id,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		DOB:                 req.DOB,
		RegistrationDate:    existing.RegistrationDate,
		RegisteredByAgentID: req.RegisteredByAgentID,
		AssignedRmID:        req.AssignedRmID,
		BookingStatus:       customerModel.BookingStatus(req.BookingStatus),
		Documents:           existing.Documents,
	}
	if err := cc.store.UpdateCustomer(c.Context(), updated); err != nil {
		return cc.storeError(c, "Failed to update customer", err)
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Customer updated successfully",
		Status:  fiber.StatusOK,
		Data:    updated,
	})
}

// Destroy removes a customer record.
func (cc *CustomerController) Destroy(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := cc.store.DeleteCustomer(c.Context(), id); err != nil {
		return cc.storeError(c, "Failed to delete customer", err)
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Customer deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// AddDocument appends a document record to a customer.
func (cc *CustomerController) AddDocument(c *fiber.Ctx) error {
	customerID := c.Params("id")

	cust, found := cc.store.FindCustomerByID(customerID)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Customer not found",
			Status:  fiber.StatusNotFound,
		})
	}
	if !cc.canAccessRecord(c, cust) {
		return cc.forbidden(c)
	}

	var req customerTypes.DocumentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	created, err := cc.store.AddDocumentToCustomer(c.Context(), customerID, store.NewDocument{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		return cc.storeError(c, "Failed to add document", err)
	}

	return cc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Message: "Document added successfully",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

// VerifyDocument runs the AI verification on one document and writes the
// verdict back through the mutation API.
func (cc *CustomerController) VerifyDocument(c *fiber.Ctx) error {
	customerID := c.Params("id")
	documentID := c.Params("docId")

	cust, found := cc.store.FindCustomerByID(customerID)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Customer not found",
			Status:  fiber.StatusNotFound,
		})
	}

	var doc *customerModel.Document
	for i := range cust.Documents {
		if cust.Documents[i].ID == documentID {
			doc = &cust.Documents[i]
			break
		}
	}
	if !cc.canAccessRecord(c, cust) {
		return cc.forbidden(c)
	}

	if doc == nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Document not found",
			Status:  fiber.StatusNotFound,
		})
	}

	verdict, err := cc.assistant.VerifyDocument(c.Context(), *doc)
	if err != nil {
		logger.Error("Document verification failed", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Message: "Failed to verify document",
			Status:  fiber.StatusBadGateway,
		})
	}

	if err := cc.store.UpdateDocument(c.Context(), customerID, documentID, store.DocumentPatch{
		VerifiedStatus: &verdict.Status,
		AiFeedback:     &verdict.Feedback,
	}); err != nil {
		return cc.storeError(c, "Failed to record verification result", err)
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Document verified successfully",
		Status:  fiber.StatusOK,
		Data:    verdict,
	})
}

// Summary generates the AI customer summary.
func (cc *CustomerController) Summary(c *fiber.Ctx) error {
	id := c.Params("id")
	cust, found := cc.store.FindCustomerByID(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Customer not found",
			Status:  fiber.StatusNotFound,
		})
	}

	snap := cc.store.Read()
	bookings := aggregate.BookingsForCustomerRecord(cust.ID, snap.Bookings)

	summary, err := cc.assistant.CustomerSummary(c.Context(), cust, bookings)
	if err != nil {
		logger.Error("Customer summary failed", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Message: "Failed to generate customer summary",
			Status:  fiber.StatusBadGateway,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Summary generated successfully",
		Status:  fiber.StatusOK,
		Data:    fiber.Map{"summary": summary},
	})
}

// Recommendations returns up to two unbooked itineraries for a customer.
func (cc *CustomerController) Recommendations(c *fiber.Ctx) error {
	id := c.Params("id")
	if cust, found := cc.store.FindCustomerByID(id); found && !cc.canAccessRecord(c, cust) {
		return cc.forbidden(c)
	}

	snap := cc.store.Read()
	recommendations := aggregate.RecommendedItineraries(id, snap.Itineraries, snap.Bookings, snap.Customers)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Recommendations fetched successfully",
		Status:  fiber.StatusOK,
		Data:    recommendations,
	})
}

func (cc *CustomerController) storeError(c *fiber.Ctx, message string, err error) error {
	logger.Error(message, err)
	status := fiber.StatusInternalServerError
	if errors.Is(err, store.ErrNotFound) {
		status = fiber.StatusNotFound
	} else if errors.Is(err, store.ErrValidation) {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(types.ApiResponse{
		Message: err.Error(),
		Status:  status,
	})
}

func (cc *CustomerController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	err := c.Status(status).JSON(response)
	cc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return err
}
