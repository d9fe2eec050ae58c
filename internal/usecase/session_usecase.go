package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/infrastructure/logger"
	"delivery_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingCredentials        = errors.New("missing credentials")
	ErrMissingRegistrationFields = errors.New("missing registration fields")
	ErrSessionNotFound           = errors.New("session not found")
)

// Session seeds applied on login. Register starts from zero points instead.
const (
	defaultSeedPoints  = 1250
	defaultSeedCredits = 3
)

// ISessionUseCase owns the session lifecycle: login/register (with the
// one-shot bootstrap of location, weather, notifications and bookings),
// profile reads and logout.
//
// These operations map to the app screens:
//   - login/register form => Login() / Register()
//   - profile tab         => Profile()
//   - home weather widget => Weather()
//   - "Sair da Conta"     => Logout()

type ISessionUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Register(ctx context.Context, reg entities.Registration) (entities.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Profile(ctx context.Context, sessionID string) (entities.Session, error)
	Weather(ctx context.Context, sessionID string) (entities.Weather, error)
}

type SessionUseCase struct {
	sessions interfaces.ISessionRepository
	auth     interfaces.IAuthGateway
	weather  interfaces.IWeatherGateway
	location interfaces.ILocationGateway
	now      func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	sessions interfaces.ISessionRepository,
	auth interfaces.IAuthGateway,
	weather interfaces.IWeatherGateway,
	location interfaces.ILocationGateway,
) *SessionUseCase {
	return &SessionUseCase{
		sessions: sessions,
		auth:     auth,
		weather:  weather,
		location: location,
		now:      time.Now,
	}
}

// Login authenticates the courier and opens a session seeded with the
// default balances. Both fields are required; the mocked collaborator never
// fails on transport, so validation is the only failure mode.
func (u *SessionUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.Session{}, ErrMissingCredentials
	}

	user, err := u.auth.Login(ctx, email, password)
	if err != nil {
		return entities.Session{}, err
	}

	return u.openSession(ctx, user, defaultSeedPoints, defaultSeedCredits)
}

// Register creates a fresh courier account: zero points, three sunscreen
// credits, member since today.
func (u *SessionUseCase) Register(ctx context.Context, reg entities.Registration) (entities.Session, error) {
	if strings.TrimSpace(reg.Name) == "" ||
		strings.TrimSpace(reg.Email) == "" ||
		reg.Password == "" {
		return entities.Session{}, ErrMissingRegistrationFields
	}

	user, err := u.auth.Register(ctx, reg)
	if err != nil {
		return entities.Session{}, err
	}

	return u.openSession(ctx, user, 0, defaultSeedCredits)
}

// openSession runs the bootstrap (location, weather, seed notifications and
// bookings) and stores the new session. The simulated round-trips happen
// before the session becomes visible, so no partial state is ever observable.
func (u *SessionUseCase) openSession(ctx context.Context, user entities.User, points, credits int) (entities.Session, error) {
	loc, err := u.location.Locate(ctx)
	if err != nil {
		return entities.Session{}, err
	}
	weather, err := u.weather.Current(ctx, loc)
	if err != nil {
		return entities.Session{}, err
	}

	now := u.now()
	s := entities.Session{
		ID:            uuid.NewString(),
		User:          &user,
		Points:        points,
		Credits:       credits,
		Draft:         entities.EmptyDraft(),
		Bookings:      seedBookings(),
		Notifications: seedNotifications(now),
		Weather:       &weather,
		Location:      &loc,
		CreatedAt:     now,
	}

	if err := u.sessions.Create(ctx, s); err != nil {
		return entities.Session{}, err
	}

	logger.S().Infof("[session][usecase] session opened id=%s email=%s points=%d credits=%d", s.ID, user.Email, points, credits)
	return s, nil
}

// Logout tears the session down. Logging out an already-dead session is a
// no-op success.
func (u *SessionUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	logger.S().Infof("[session][usecase] session closed id=%s", sessionID)
	return nil
}

func (u *SessionUseCase) Profile(ctx context.Context, sessionID string) (entities.Session, error) {
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

// Weather returns the snapshot captured at session bootstrap. It is never
// refreshed during the session's lifetime.
func (u *SessionUseCase) Weather(ctx context.Context, sessionID string) (entities.Weather, error) {
	s, err := u.Profile(ctx, sessionID)
	if err != nil {
		return entities.Weather{}, err
	}
	if s.Weather == nil {
		return entities.Weather{}, ErrSessionNotFound
	}
	return *s.Weather, nil
}

func seedNotifications(now time.Time) []entities.Notification {
	return []entities.Notification{
		{
			ID:        uuid.NewString(),
			Title:     "Novo ponto disponível",
			Message:   "Ponto Praia Grande Premium agora está disponível!",
			Type:      entities.NotificationInfo,
			Timestamp: now,
			Read:      false,
		},
	}
}

func seedBookings() []entities.Booking {
	return []entities.Booking{
		{
			ID:        uuid.NewString(),
			PointID:   1,
			PointName: "Ponto Vila",
			Service:   entities.ServiceBanho,
			Date:      "2023-12-15",
			Time:      "14:00",
			Location:  "Av. Princesa Isabel, 123 - Vila",
			Status:    entities.BookingStatusConfirmed,
		},
		{
			ID:        uuid.NewString(),
			PointID:   4,
			PointName: "Ponto Praia Grande Premium",
			Service:   entities.ServiceMassagem,
			Date:      "2023-12-16",
			Time:      "16:30",
			Location:  "Av. Força Expedicionária Brasileira, 1254 - Praia Grande",
			Status:    entities.BookingStatusPending,
		},
	}
}
