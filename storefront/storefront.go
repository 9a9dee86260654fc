// Package storefront wires the OpenShop client stack together: API client,
// session, cart synchronizer, order and wishlist stores, notification center
// and checkout flow. A view layer holds one App and reaches everything
// through it; no component is reachable through ambient globals.
package storefront

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/archie46/OpenShop/cart"
	"github.com/archie46/OpenShop/checkout"
	"github.com/archie46/OpenShop/client"
	"github.com/archie46/OpenShop/notify"
	"github.com/archie46/OpenShop/orders"
	pkgconfig "github.com/archie46/OpenShop/pkg/config"
	"github.com/archie46/OpenShop/pkg/logger"
	"github.com/archie46/OpenShop/session"
	"github.com/archie46/OpenShop/wishlist"
)

// Config holds storefront configuration on top of the client transport
// settings.
type Config struct {
	Client client.Config

	// StateDir is where session, wishlist and order state files live.
	// Defaults to the user config directory.
	StateDir string `env:"OPENSHOP_STATE_DIR" envDefault:""`
}

// LoadConfig reads storefront configuration from environment variables.
func LoadConfig() (*Config, error) {
	clientCfg, err := client.LoadConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{Client: *clientCfg}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state dir: %w", err)
		}
		cfg.StateDir = filepath.Join(base, "openshop")
	}
	return cfg, nil
}

// App is the assembled storefront component graph.
type App struct {
	Client        *client.Client
	Session       *session.Manager
	SessionStore  *session.Store
	Cart          *cart.Synchronizer
	Orders        *orders.Store
	Wishlist      *wishlist.Store
	Notifications *notify.Center
	Logger        *slog.Logger
}

// New assembles the storefront. The session store feeds bearer tokens into
// the transport; a 401 from anywhere invalidates the session and drops all
// per-user state.
func New(cfg Config, log *slog.Logger) *App {
	if log == nil {
		log = logger.New("storefront", cfg.Client.LogLevel)
	}

	sessionStore := session.NewStore(filepath.Join(cfg.StateDir, "session.json"), log)

	// The manager is constructed after the client but the 401 hook only
	// fires once requests are in flight, so the late binding is safe.
	var manager *session.Manager
	api := client.New(cfg.Client, sessionStore, func() {
		if manager != nil {
			manager.Invalidate()
		}
	}, log)
	manager = session.NewManager(api, sessionStore, log)

	cartSync := cart.NewSynchronizer(cart.NewAdapter(api), log)
	orderStore := orders.NewStore(api, filepath.Join(cfg.StateDir, "orders.json"), log)
	wishlistStore := wishlist.NewStore(filepath.Join(cfg.StateDir, "wishlist.json"), log)
	notifications := notify.NewCenter()

	// Per-user state does not survive the session.
	manager.OnLogout(cartSync.Reset)
	manager.OnLogout(orderStore.Clear)

	return &App{
		Client:        api,
		Session:       manager,
		SessionStore:  sessionStore,
		Cart:          cartSync,
		Orders:        orderStore,
		Wishlist:      wishlistStore,
		Notifications: notifications,
		Logger:        log,
	}
}

// NewCheckout starts a checkout wizard over the app's cart and order stores.
func (a *App) NewCheckout() *checkout.Wizard {
	return checkout.NewWizard(a.Cart, a.Client, a.Orders, a.Notifications, a.Logger)
}
