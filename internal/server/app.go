// Package server initializes and runs the lockbox application server. It
// wires configuration, logging, key material, the per-user stores, and the
// domain services into the HTTP server, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/lockbox/internal/cryptox"
	"github.com/dmitrijs2005/lockbox/internal/logging"
	"github.com/dmitrijs2005/lockbox/internal/server/config"
	"github.com/dmitrijs2005/lockbox/internal/server/encryption"
	"github.com/dmitrijs2005/lockbox/internal/server/httpapi"
	"github.com/dmitrijs2005/lockbox/internal/server/names"
	"github.com/dmitrijs2005/lockbox/internal/server/secrets"
	"github.com/dmitrijs2005/lockbox/internal/server/userstore"
)

// secretsPurpose binds the secrets protector to its own subkey. Changing it
// invalidates every token sealed before the change.
const secretsPurpose = "secrets.v1"

type App struct {
	config        *config.Config
	logger        logging.Logger
	nameService   *names.Service
	secretService *secrets.Service
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	master := cryptox.DeriveMasterKey([]byte(c.EncryptionKey), []byte(c.EncryptionSalt))
	keychain, err := cryptox.NewKeychain(master)
	if err != nil {
		return nil, fmt.Errorf("keychain init error: %w", err)
	}
	protector, err := keychain.Protector(secretsPurpose)
	if err != nil {
		return nil, fmt.Errorf("protector init error: %w", err)
	}

	ns := names.NewService(userstore.New[string](), logger)
	es := encryption.NewService(protector, logger)
	ss := secrets.NewService(userstore.New[string](), es, logger)

	return &App{config: c, logger: logger, nameService: ns, secretService: ss}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger, app.nameService, app.secretService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
