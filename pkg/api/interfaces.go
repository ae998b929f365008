// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"
	"github.com/ssargent/charseq/pkg/text"
)

// TextStore defines the persistence operations the API needs
type TextStore interface {
	Create(seq *text.Sequence) (ksuid.KSUID, error)
	Read(id ksuid.KSUID) (*text.Sequence, error)
	Update(id ksuid.KSUID, seq *text.Sequence) error
	Delete(id ksuid.KSUID) error
	List() ([]ksuid.KSUID, error)
	Count() (int, error)
	Close() error
}

// StoreOpener opens the text store for a data directory
type StoreOpener interface {
	OpenStore(dataDir string) (TextStore, error)
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves until ctx is cancelled or the listener fails
	StartServer(ctx context.Context, store TextStore, config ServerConfig) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter that logs through logger
	CreateServerStarter(logger *logrus.Logger) ServerStarter
}
