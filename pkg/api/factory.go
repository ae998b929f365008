// Package api provides factory implementations for dependency injection
package api

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/ssargent/charseq/pkg/textstore"
)

// DefaultStoreOpener opens a pebble-backed text store
type DefaultStoreOpener struct{}

// NewStoreOpener creates a new store opener
func NewStoreOpener() StoreOpener {
	return &DefaultStoreOpener{}
}

// OpenStore opens the text store in dataDir
func (o *DefaultStoreOpener) OpenStore(dataDir string) (TextStore, error) {
	store, err := textstore.Open(dataDir)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter(logger *logrus.Logger) ServerStarter {
	return &DefaultServerStarter{logger: logger}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct {
	logger *logrus.Logger
}

// StartServer starts the API server with the given configuration, registering
// metrics with the default Prometheus registry
func (s *DefaultServerStarter) StartServer(ctx context.Context, store TextStore, config ServerConfig) error {
	metrics := NewMetrics(prometheus.DefaultRegisterer)
	return StartServer(ctx, NewServer(store, config, metrics, s.logger))
}
