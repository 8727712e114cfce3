package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/liveartfest/ticketing/internal/models"
	"github.com/liveartfest/ticketing/internal/payment"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn              func(ctx context.Context, user *models.User) error
	findByIDFn            func(ctx context.Context, id uint) (*models.User, error)
	findByEmailFn         func(ctx context.Context, email string) (*models.User, error)
	findAllFn             func(ctx context.Context) ([]models.User, error)
	findAdminsFn          func(ctx context.Context) ([]models.User, error)
	findNonAdminByEmailFn func(ctx context.Context, email string) (*models.User, error)
	findAdminByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	updateFn              func(ctx context.Context, user *models.User) error
	deleteFn              func(ctx context.Context, id uint) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	return m.findAllFn(ctx)
}
func (m *mockUserRepo) FindAdmins(ctx context.Context) ([]models.User, error) {
	return m.findAdminsFn(ctx)
}
func (m *mockUserRepo) FindNonAdminByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findNonAdminByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindAdminByID(ctx context.Context, id uint) (*models.User, error) {
	return m.findAdminByIDFn(ctx, id)
}
func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.updateFn(ctx, user)
}
func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn                func(ctx context.Context, tx *gorm.DB, event *models.Event) error
	findByIDFn              func(ctx context.Context, id uint) (*models.Event, error)
	findByPurchasableIDFn   func(ctx context.Context, purchasableID uint) ([]models.Event, error)
	findIndividualFn        func(ctx context.Context) ([]models.Event, error)
	updateFn                func(ctx context.Context, event *models.Event) error
	deleteByPurchasableIDFn func(ctx context.Context, tx *gorm.DB, purchasableID uint) error
}

func (m *mockEventRepo) Create(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	return m.createFn(ctx, tx, event)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) FindByPurchasableID(ctx context.Context, purchasableID uint) ([]models.Event, error) {
	return m.findByPurchasableIDFn(ctx, purchasableID)
}
func (m *mockEventRepo) FindIndividual(ctx context.Context) ([]models.Event, error) {
	return m.findIndividualFn(ctx)
}
func (m *mockEventRepo) Update(ctx context.Context, event *models.Event) error {
	return m.updateFn(ctx, event)
}
func (m *mockEventRepo) DeleteByPurchasableID(ctx context.Context, tx *gorm.DB, purchasableID uint) error {
	return m.deleteByPurchasableIDFn(ctx, tx, purchasableID)
}

// --- Mock PurchasableRepository ---

type mockPurchasableRepo struct {
	createFn                        func(ctx context.Context, tx *gorm.DB, purchasable *models.Purchasable) error
	findByIDFn                      func(ctx context.Context, id uint) (*models.Purchasable, error)
	findAllFn                       func(ctx context.Context) ([]models.Purchasable, error)
	findByTypeFn                    func(ctx context.Context, t models.PurchasableType) ([]models.Purchasable, error)
	updateFn                        func(ctx context.Context, tx *gorm.DB, purchasable *models.Purchasable) error
	deleteFn                        func(ctx context.Context, tx *gorm.DB, id uint) error
	findClassLinksFn                func(ctx context.Context, purchasableID uint) ([]models.PurchasableTicketClass, error)
	createClassLinkFn               func(ctx context.Context, tx *gorm.DB, link *models.PurchasableTicketClass) error
	deleteClassLinkFn               func(ctx context.Context, tx *gorm.DB, purchasableID, ticketClassID uint) error
	deleteClassLinksByPurchasableFn func(ctx context.Context, tx *gorm.DB, purchasableID uint) error
	transactFn                      func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func (m *mockPurchasableRepo) Create(ctx context.Context, tx *gorm.DB, purchasable *models.Purchasable) error {
	return m.createFn(ctx, tx, purchasable)
}
func (m *mockPurchasableRepo) FindByID(ctx context.Context, id uint) (*models.Purchasable, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockPurchasableRepo) FindAll(ctx context.Context) ([]models.Purchasable, error) {
	return m.findAllFn(ctx)
}
func (m *mockPurchasableRepo) FindByType(ctx context.Context, t models.PurchasableType) ([]models.Purchasable, error) {
	return m.findByTypeFn(ctx, t)
}
func (m *mockPurchasableRepo) Update(ctx context.Context, tx *gorm.DB, purchasable *models.Purchasable) error {
	return m.updateFn(ctx, tx, purchasable)
}
func (m *mockPurchasableRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.deleteFn(ctx, tx, id)
}
func (m *mockPurchasableRepo) FindClassLinks(ctx context.Context, purchasableID uint) ([]models.PurchasableTicketClass, error) {
	return m.findClassLinksFn(ctx, purchasableID)
}
func (m *mockPurchasableRepo) CreateClassLink(ctx context.Context, tx *gorm.DB, link *models.PurchasableTicketClass) error {
	return m.createClassLinkFn(ctx, tx, link)
}
func (m *mockPurchasableRepo) DeleteClassLink(ctx context.Context, tx *gorm.DB, purchasableID, ticketClassID uint) error {
	return m.deleteClassLinkFn(ctx, tx, purchasableID, ticketClassID)
}
func (m *mockPurchasableRepo) DeleteClassLinksByPurchasable(ctx context.Context, tx *gorm.DB, purchasableID uint) error {
	return m.deleteClassLinksByPurchasableFn(ctx, tx, purchasableID)
}
func (m *mockPurchasableRepo) Transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m.transactFn != nil {
		return m.transactFn(ctx, fn)
	}
	return fn(nil)
}

// --- Mock TicketClassRepository ---

type mockTicketClassRepo struct {
	createFn   func(ctx context.Context, class *models.TicketClass) error
	findByIDFn func(ctx context.Context, id uint) (*models.TicketClass, error)
	findAllFn  func(ctx context.Context) ([]models.TicketClass, error)
}

func (m *mockTicketClassRepo) Create(ctx context.Context, class *models.TicketClass) error {
	return m.createFn(ctx, class)
}
func (m *mockTicketClassRepo) FindByID(ctx context.Context, id uint) (*models.TicketClass, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockTicketClassRepo) FindAll(ctx context.Context) ([]models.TicketClass, error) {
	return m.findAllFn(ctx)
}

// --- Mock TicketRepository ---

type mockTicketRepo struct {
	createFn                        func(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error
	createEventLinkFn               func(ctx context.Context, tx *gorm.DB, link *models.EventTicket) error
	findByUserFn                    func(ctx context.Context, userID uint, purchased bool) ([]models.Ticket, error)
	deleteUnpurchasedFn             func(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error
	deleteEventLinksForCartFn       func(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error
	deleteByPurchasableIDFn         func(ctx context.Context, tx *gorm.DB, purchasableID uint) error
	deleteEventLinksByPurchasableFn func(ctx context.Context, tx *gorm.DB, purchasableID uint) error
	markPurchasedFn                 func(ctx context.Context, tx *gorm.DB, userID uint, at time.Time) error
	transactFn                      func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func (m *mockTicketRepo) Create(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error {
	return m.createFn(ctx, tx, ticket)
}
func (m *mockTicketRepo) CreateEventLink(ctx context.Context, tx *gorm.DB, link *models.EventTicket) error {
	return m.createEventLinkFn(ctx, tx, link)
}
func (m *mockTicketRepo) FindByUser(ctx context.Context, userID uint, purchased bool) ([]models.Ticket, error) {
	return m.findByUserFn(ctx, userID, purchased)
}
func (m *mockTicketRepo) DeleteUnpurchased(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error {
	return m.deleteUnpurchasedFn(ctx, tx, userID, purchasableID)
}
func (m *mockTicketRepo) DeleteEventLinksForCart(ctx context.Context, tx *gorm.DB, userID, purchasableID uint) error {
	return m.deleteEventLinksForCartFn(ctx, tx, userID, purchasableID)
}
func (m *mockTicketRepo) DeleteByPurchasableID(ctx context.Context, tx *gorm.DB, purchasableID uint) error {
	return m.deleteByPurchasableIDFn(ctx, tx, purchasableID)
}
func (m *mockTicketRepo) DeleteEventLinksByPurchasable(ctx context.Context, tx *gorm.DB, purchasableID uint) error {
	return m.deleteEventLinksByPurchasableFn(ctx, tx, purchasableID)
}
func (m *mockTicketRepo) MarkPurchased(ctx context.Context, tx *gorm.DB, userID uint, at time.Time) error {
	return m.markPurchasedFn(ctx, tx, userID, at)
}
func (m *mockTicketRepo) Transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m.transactFn != nil {
		return m.transactFn(ctx, fn)
	}
	return fn(nil)
}

// --- Mock PaymentRepository ---

type mockPaymentRepo struct {
	createFn func(ctx context.Context, p *models.Payment) error
	updateFn func(ctx context.Context, tx *gorm.DB, p *models.Payment) error
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	return m.createFn(ctx, p)
}
func (m *mockPaymentRepo) Update(ctx context.Context, tx *gorm.DB, p *models.Payment) error {
	return m.updateFn(ctx, tx, p)
}

// --- Mock payment.Processor ---

type mockProcessor struct {
	chargeFn func(ctx context.Context, req payment.Request) (*payment.Result, error)
}

func (m *mockProcessor) Charge(ctx context.Context, req payment.Request) (*payment.Result, error) {
	return m.chargeFn(ctx, req)
}

// --- Mock mailer.Sender ---

type mockSender struct {
	sendFn func(ctx context.Context, to, subject, body string) error
}

func (m *mockSender) Send(ctx context.Context, to, subject, body string) error {
	return m.sendFn(ctx, to, subject, body)
}
