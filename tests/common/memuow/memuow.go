//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for usecase tests. Writes are staged per
// transaction and applied on commit; LockSlot and BookingForUpdate hold real mutexes until the
// transaction ends so concurrent admissions behave as they do against PostgreSQL.
package memuow

import (
	"context"
	"slices"
	"sync"
	"time"

	"bookmyvenue/internal/domain/booking"
	"bookmyvenue/internal/domain/catalog"
	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/infra/uow"
	"bookmyvenue/internal/usecase/shared"

	"github.com/google/uuid"
)

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type Store struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]booking.Booking
	services map[uuid.UUID]catalog.Service
	users    map[string]*user.User
	jobs     []Job

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	// Unavailable makes every transaction fail as if the database were down.
	Unavailable bool
}

func New() *Store {
	return &Store{
		bookings: map[uuid.UUID]booking.Booking{},
		services: map[uuid.UUID]catalog.Service{},
		users:    map[string]*user.User{},
		locks:    map[string]*sync.Mutex{},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

// Seeding helpers bypass transactions.

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = *b
}

func (s *Store) PutService(svc *catalog.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[svc.ID()] = *svc
}

func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Email().Value()] = u
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	return &b, true
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		cp := b
		out = append(out, &cp)
	}
	return out
}

func (s *Store) Service(id uuid.UUID) (*catalog.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, false
	}
	return &svc, true
}

func (s *Store) User(email string) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	return u, ok
}

func (s *Store) UserByID(id uuid.UUID) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID() == id {
			cp := *u
			return &cp, true
		}
	}
	return nil, false
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.jobs)
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if s.Unavailable {
		return infra.RepositoryError{Kind: infra.KindDBFailure}
	}
	t := &memTx{
		store:          s,
		bookings:       map[uuid.UUID]booking.Booking{},
		deletedBooking: map[uuid.UUID]bool{},
		services:       map[uuid.UUID]catalog.Service{},
		deletedService: map[uuid.UUID]bool{},
		users:          map[string]*user.User{},
		updatedUsers:   map[uuid.UUID]user.User{},
	}
	defer t.release()

	if err := fn(ctx, t); err != nil {
		return err
	}
	return t.commit()
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{store: s}
}

func (s *Store) lockFor(key string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	return m
}

type memTx struct {
	store          *Store
	bookings       map[uuid.UUID]booking.Booking
	deletedBooking map[uuid.UUID]bool
	services       map[uuid.UUID]catalog.Service
	deletedService map[uuid.UUID]bool
	users          map[string]*user.User
	updatedUsers   map[uuid.UUID]user.User
	jobs           []Job
	held           []*sync.Mutex
	heldKeys       map[string]bool
}

func (t *memTx) acquire(key string) {
	if t.heldKeys == nil {
		t.heldKeys = map[string]bool{}
	}
	if t.heldKeys[key] {
		return
	}
	m := t.store.lockFor(key)
	m.Lock()
	t.held = append(t.held, m)
	t.heldKeys[key] = true
}

func (t *memTx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
}

func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for email := range t.users {
		if _, taken := s.users[email]; taken {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey}
		}
	}
	for id, b := range t.bookings {
		s.bookings[id] = b
	}
	for id := range t.deletedBooking {
		delete(s.bookings, id)
	}
	for id, svc := range t.services {
		s.services[id] = svc
	}
	for id := range t.deletedService {
		delete(s.services, id)
	}
	for email, u := range t.users {
		s.users[email] = u
	}
	for _, u := range t.updatedUsers {
		s.users[u.Email().Value()] = &u
	}
	s.jobs = append(s.jobs, t.jobs...)
	return nil
}

func (t *memTx) Bookings() shared.BookingRepository           { return bookingRepo{t} }
func (t *memTx) Services() shared.ServiceRepository           { return serviceRepo{t} }
func (t *memTx) Users() shared.UserRepository                 { return userRepo{t} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t} }
func (t *memTx) Reads() shared.CommandReads                   { return &reads{store: t.store, tx: t} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

func (t *memTx) LockSlot(_ context.Context, venueID uuid.UUID, date booking.EventDate) error {
	t.acquire("slot:" + uow.SlotLockKey(venueID, date))
	return nil
}

type bookingRepo struct{ tx *memTx }

func (r bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	r.tx.bookings[b.ID()] = *b
	return nil
}

func (r bookingRepo) Save(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if _, ok := r.tx.lookupBooking(b.ID()); !ok {
		return infra.RepositoryError{Kind: infra.KindNotFound}
	}
	r.tx.bookings[b.ID()] = *b
	return nil
}

func (r bookingRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.tx.lookupBooking(id); !ok {
		return infra.RepositoryError{Kind: infra.KindNotFound}
	}
	delete(r.tx.bookings, id)
	r.tx.deletedBooking[id] = true
	return nil
}

type serviceRepo struct{ tx *memTx }

func (r serviceRepo) Create(_ context.Context, _ sqlc.DBTX, s *catalog.Service) error {
	r.tx.services[s.ID()] = *s
	return nil
}

func (r serviceRepo) Update(_ context.Context, _ sqlc.DBTX, s *catalog.Service) error {
	cur, ok := r.tx.lookupService(s.ID())
	if !ok || cur.OwnerID() != s.OwnerID() {
		return infra.RepositoryError{Kind: infra.KindNotFound}
	}
	r.tx.services[s.ID()] = *s
	return nil
}

func (r serviceRepo) Delete(_ context.Context, _ sqlc.DBTX, id, ownerID uuid.UUID) error {
	cur, ok := r.tx.lookupService(id)
	if !ok || cur.OwnerID() != ownerID {
		return infra.RepositoryError{Kind: infra.KindNotFound}
	}
	// bookings.venue_id has no ON DELETE action, so the statement itself fails
	if r.tx.venueReferenced(id) {
		return infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	delete(r.tx.services, id)
	r.tx.deletedService[id] = true
	return nil
}

type userRepo struct{ tx *memTx }

func (r userRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	email := u.Email().Value()
	if _, taken := r.tx.users[email]; taken {
		return infra.RepositoryError{Kind: infra.KindDuplicateKey}
	}
	if _, taken := r.tx.store.User(email); taken {
		return infra.RepositoryError{Kind: infra.KindDuplicateKey}
	}
	r.tx.users[email] = u
	return nil
}

func (r userRepo) UpdateProfile(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	if _, ok := r.tx.lookupUser(u.ID()); !ok {
		return infra.RepositoryError{Kind: infra.KindNotFound}
	}
	r.tx.updatedUsers[u.ID()] = *u
	return nil
}

func (t *memTx) lookupUser(id uuid.UUID) (user.User, bool) {
	if u, ok := t.updatedUsers[id]; ok {
		return u, true
	}
	for _, u := range t.users {
		if u.ID() == id {
			return *u, true
		}
	}
	u, ok := t.store.UserByID(id)
	if !ok {
		return user.User{}, false
	}
	return *u, true
}

type notificationRepo struct{ tx *memTx }

func (r notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.tx.jobs = append(r.tx.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

func (t *memTx) lookupBooking(id uuid.UUID) (booking.Booking, bool) {
	if t.deletedBooking[id] {
		return booking.Booking{}, false
	}
	if b, ok := t.bookings[id]; ok {
		return b, true
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	b, ok := t.store.bookings[id]
	return b, ok
}

// venueReferenced reports whether a committed or staged booking points at venueID.
func (t *memTx) venueReferenced(venueID uuid.UUID) bool {
	for id, b := range t.bookings {
		if b.VenueID() == venueID && !t.deletedBooking[id] {
			return true
		}
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for id, b := range t.store.bookings {
		if b.VenueID() == venueID && !t.deletedBooking[id] {
			return true
		}
	}
	return false
}

func (t *memTx) lookupService(id uuid.UUID) (catalog.Service, bool) {
	if t.deletedService[id] {
		return catalog.Service{}, false
	}
	if s, ok := t.services[id]; ok {
		return s, true
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	s, ok := t.store.services[id]
	return s, ok
}

// reads sees committed state, plus the staged writes of tx when it is set.
type reads struct {
	store *Store
	tx    *memTx
}

func (r *reads) BookingForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.tx != nil {
		r.tx.acquire("booking:" + id.String())
		b, ok := r.tx.lookupBooking(id)
		if !ok {
			return nil, infra.RepositoryError{Kind: infra.KindNotFound}
		}
		return &b, nil
	}
	b, ok := r.store.Booking(id)
	if !ok {
		return nil, infra.RepositoryError{Kind: infra.KindNotFound}
	}
	return b, nil
}

func (r *reads) ActiveBookingsForVenueDay(_ context.Context, venueID uuid.UUID, date booking.EventDate) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.store.Bookings() {
		if r.tx != nil && r.tx.deletedBooking[b.ID()] {
			continue
		}
		if b.VenueID() == venueID && b.EventDate() == date && b.Status().HoldsSlot() {
			out = append(out, b)
		}
	}
	if r.tx != nil {
		for _, b := range r.tx.bookings {
			if b.VenueID() == venueID && b.EventDate() == date && b.Status().HoldsSlot() {
				cp := b
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (r *reads) ServiceByID(_ context.Context, id uuid.UUID) (*catalog.Service, error) {
	if r.tx != nil {
		s, ok := r.tx.lookupService(id)
		if !ok {
			return nil, infra.RepositoryError{Kind: infra.KindNotFound}
		}
		return &s, nil
	}
	s, ok := r.store.Service(id)
	if !ok {
		return nil, infra.RepositoryError{Kind: infra.KindNotFound}
	}
	return s, nil
}

func (r *reads) ServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Service, error) {
	out := make([]*catalog.Service, 0, len(ids))
	for _, id := range ids {
		s, err := r.ServiceByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *reads) UserCredentialsByEmail(_ context.Context, email string) (*shared.UserCredentials, error) {
	u, ok := r.store.User(email)
	if !ok {
		return nil, infra.RepositoryError{Kind: infra.KindNotFound}
	}
	return &shared.UserCredentials{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		Role:         u.Role().String(),
		PasswordHash: u.PasswordHash(),
	}, nil
}

func (r *reads) UserForUpdate(_ context.Context, id uuid.UUID) (*user.User, error) {
	if r.tx != nil {
		r.tx.acquire("user:" + id.String())
		u, ok := r.tx.lookupUser(id)
		if !ok {
			return nil, infra.RepositoryError{Kind: infra.KindNotFound}
		}
		return &u, nil
	}
	u, ok := r.store.UserByID(id)
	if !ok {
		return nil, infra.RepositoryError{Kind: infra.KindNotFound}
	}
	return u, nil
}
