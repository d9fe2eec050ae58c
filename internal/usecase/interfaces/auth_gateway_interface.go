package interfaces

import (
	"context"

	"delivery_hub/internal/domain/entities"
)

// IAuthGateway is the authentication collaborator.
//
// The shipped implementation is a mock with simulated latency, but the
// contract (field set, required vs optional) is the one a real provider
// would implement, so swapping it in must not reshape callers. Transport
// failures do not occur by construction; only validation failures do, and
// those are checked by the session usecase before calling the gateway.
type IAuthGateway interface {
	Login(ctx context.Context, email, password string) (entities.User, error)
	Register(ctx context.Context, reg entities.Registration) (entities.User, error)
}
