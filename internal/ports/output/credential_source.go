package output

import (
	"context"

	"mergington/internal/domain/entities"
)

// CredentialSource loads teacher credentials. Implementations read their
// backing store on every call; nothing is cached.
type CredentialSource interface {
	Load(ctx context.Context) (entities.Credentials, error)
}
