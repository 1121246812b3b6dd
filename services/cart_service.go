package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kadima-pos/models"
)

// Catalog is the part of CatalogService that carts depend on.
type Catalog interface {
	GetStore(ctx context.Context, merchantID, storeID string) (*models.Store, error)
	GetProduct(ctx context.Context, storeID, productID string) (*models.Product, error)
	ProductList(ctx context.Context, storeID string) (*models.ProductList, error)
}

// CartSession is one in-progress checkout at a till. The embedded cart is
// only touched while mu is held.
type CartSession struct {
	ID         string
	MerchantID string
	StoreID    string
	CashierID  int
	CreatedAt  time.Time

	mu        sync.Mutex
	cart      *models.CheckoutCart
	updatedAt time.Time
	closed    bool
}

// Cart returns the session's cart. Callers must be inside CartService.Consume.
func (s *CartSession) Cart() *models.CheckoutCart {
	return s.cart
}

type CartService struct {
	catalog Catalog
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*CartSession
}

func NewCartService(catalog Catalog, ttl time.Duration, logger *zap.Logger) *CartService {
	return &CartService{
		catalog:  catalog,
		ttl:      ttl,
		logger:   logger.Named("cart"),
		now:      time.Now,
		sessions: make(map[string]*CartSession),
	}
}

func (s *CartService) Create(ctx context.Context, merchantID, storeID string, cashierID int) (*models.CartView, error) {
	if _, err := s.catalog.GetStore(ctx, merchantID, storeID); err != nil {
		return nil, err
	}

	now := s.now()
	session := &CartSession{
		ID:         uuid.NewString(),
		MerchantID: merchantID,
		StoreID:    storeID,
		CashierID:  cashierID,
		CreatedAt:  now,
		cart:       models.NewCheckoutCart(),
		updatedAt:  now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Debug("cart created", zap.String("cart_id", session.ID), zap.String("store_id", storeID), zap.Int("cashier_id", cashierID))
	return s.view(session, &models.CartSummary{Lines: []models.CartLine{}}), nil
}

// lock finds the session and locks it. Sessions of other cashiers, expired
// sessions and sessions already consumed all report ErrCartNotFound.
func (s *CartService) lock(cartID string, cashierID int) (*CartSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[cartID]
	s.mu.RUnlock()
	if !ok || session.CashierID != cashierID {
		return nil, models.ErrCartNotFound
	}

	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return nil, models.ErrCartNotFound
	}
	if s.expired(session) {
		session.closed = true
		session.mu.Unlock()
		s.remove(cartID)
		return nil, models.ErrCartNotFound
	}
	return session, nil
}

func (s *CartService) expired(session *CartSession) bool {
	return s.ttl > 0 && s.now().Sub(session.updatedAt) > s.ttl
}

func (s *CartService) remove(cartID string) {
	s.mu.Lock()
	delete(s.sessions, cartID)
	s.mu.Unlock()
}

// mutate applies fn to a copy of the locked cart, prices the copy against
// the store's product list and only then commits it. Any error leaves the
// session untouched.
func (s *CartService) mutate(ctx context.Context, cartID string, cashierID int, fn func(*CartSession, *models.CheckoutCart, *models.ProductList) error) (*models.CartView, error) {
	session, err := s.lock(cartID, cashierID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	if fn == nil && session.cart.IsEmpty() {
		return s.view(session, &models.CartSummary{Lines: []models.CartLine{}}), nil
	}

	list, err := s.catalog.ProductList(ctx, session.StoreID)
	if err != nil {
		return nil, err
	}

	cart := session.cart
	if fn != nil {
		cart = session.cart.Clone()
		if err := fn(session, cart, list); err != nil {
			return nil, err
		}
	}

	summary := &models.CartSummary{Lines: []models.CartLine{}}
	if !cart.IsEmpty() {
		if summary, err = models.Summarize(cart, list); err != nil {
			return nil, err
		}
	}

	if fn != nil {
		session.cart = cart
		session.updatedAt = s.now()
	}
	return s.view(session, summary), nil
}

func (s *CartService) view(session *CartSession, summary *models.CartSummary) *models.CartView {
	return &models.CartView{
		ID:         session.ID,
		MerchantID: session.MerchantID,
		StoreID:    session.StoreID,
		CashierID:  session.CashierID,
		IsEmpty:    session.cart.IsEmpty(),
		Summary:    summary,
		CreatedAt:  session.CreatedAt,
		UpdatedAt:  session.updatedAt,
	}
}

func (s *CartService) Get(ctx context.Context, cartID string, cashierID int) (*models.CartView, error) {
	return s.mutate(ctx, cartID, cashierID, nil)
}

// Summary is Get under the name the checkout screen uses.
func (s *CartService) Summary(ctx context.Context, cartID string, cashierID int) (*models.CartSummary, error) {
	view, err := s.Get(ctx, cartID, cashierID)
	if err != nil {
		return nil, err
	}
	return view.Summary, nil
}

// AddItem adds one unit of productID. The product must be on sale in the
// cart's store and present in the product list used for pricing.
func (s *CartService) AddItem(ctx context.Context, cartID string, cashierID int, productID string) (*models.CartView, error) {
	return s.mutate(ctx, cartID, cashierID, func(session *CartSession, cart *models.CheckoutCart, list *models.ProductList) error {
		product, err := list.GetProductByID(productID)
		if err != nil {
			return s.unlisted(ctx, session.StoreID, productID)
		}
		cart.AddItem(product)
		return nil
	})
}

// unlisted explains why productID is missing from the store's product list.
// A product the database still sells but the cached list does not know yet
// is reported as not found.
func (s *CartService) unlisted(ctx context.Context, storeID, productID string) error {
	if _, err := s.catalog.GetProduct(ctx, storeID, productID); err != nil {
		return err
	}
	s.logger.Debug("product missing from cached list", zap.String("store_id", storeID), zap.String("product_id", productID))
	return &models.ProductNotFoundError{ProductID: productID}
}

func (s *CartService) RemoveItem(ctx context.Context, cartID string, cashierID int, productID string) (*models.CartView, error) {
	return s.mutate(ctx, cartID, cashierID, func(_ *CartSession, cart *models.CheckoutCart, _ *models.ProductList) error {
		cart.RemoveItem(productID)
		return nil
	})
}

func (s *CartService) Increment(ctx context.Context, cartID string, cashierID int, productID string) (*models.CartView, error) {
	return s.mutate(ctx, cartID, cashierID, func(_ *CartSession, cart *models.CheckoutCart, _ *models.ProductList) error {
		cart.IncrementQuantity(productID)
		return nil
	})
}

func (s *CartService) Decrement(ctx context.Context, cartID string, cashierID int, productID string) (*models.CartView, error) {
	return s.mutate(ctx, cartID, cashierID, func(_ *CartSession, cart *models.CheckoutCart, _ *models.ProductList) error {
		cart.DecrementQuantity(productID)
		return nil
	})
}

func (s *CartService) Discard(cartID string, cashierID int) error {
	session, err := s.lock(cartID, cashierID)
	if err != nil {
		return err
	}
	session.closed = true
	session.mu.Unlock()

	s.remove(cartID)
	s.logger.Debug("cart discarded", zap.String("cart_id", cartID))
	return nil
}

// Consume runs fn with the session locked. When fn succeeds the session is
// closed and dropped; when it fails the cart is left as it was.
func (s *CartService) Consume(cartID string, cashierID int, fn func(*CartSession) error) error {
	session, err := s.lock(cartID, cashierID)
	if err != nil {
		return err
	}
	defer session.mu.Unlock()

	if err := fn(session); err != nil {
		return err
	}
	session.closed = true
	s.remove(cartID)
	return nil
}

// Sweep drops every session idle for longer than the TTL and reports how
// many were removed.
func (s *CartService) Sweep() int {
	s.mu.RLock()
	candidates := make([]*CartSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		candidates = append(candidates, session)
	}
	s.mu.RUnlock()

	removed := 0
	for _, session := range candidates {
		session.mu.Lock()
		if !session.closed && s.expired(session) {
			session.closed = true
			s.remove(session.ID)
			removed++
		}
		session.mu.Unlock()
	}
	return removed
}

// Run sweeps expired sessions until ctx is cancelled.
func (s *CartService) Run(ctx context.Context) error {
	if s.ttl <= 0 {
		<-ctx.Done()
		return nil
	}

	interval := s.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Info("expired carts swept", zap.Int("count", n))
			}
		}
	}
}

func (s *CartService) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
