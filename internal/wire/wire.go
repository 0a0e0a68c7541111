// Package wire provides dependency injection for the application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/Blessan-Alex/street-feast-rom/internal/adapters/cli"
	"github.com/Blessan-Alex/street-feast-rom/internal/adapters/sqlite"
	"github.com/Blessan-Alex/street-feast-rom/internal/app"
	"github.com/Blessan-Alex/street-feast-rom/internal/db"
	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
)

var (
	orderService primary.OrderService
	menuService  primary.MenuService
	authService  primary.AuthService
	once         sync.Once
)

// OrderService returns the singleton OrderService instance.
func OrderService() primary.OrderService {
	once.Do(initServices)
	return orderService
}

// MenuService returns the singleton MenuService instance.
func MenuService() primary.MenuService {
	once.Do(initServices)
	return menuService
}

// AuthService returns the singleton AuthService instance.
func AuthService() primary.AuthService {
	once.Do(initServices)
	return authService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	categoryRepo := sqlite.NewCategoryRepository(database)
	itemRepo := sqlite.NewItemRepository(database)
	orderRepo := sqlite.NewOrderRepository(database)
	counters := sqlite.NewCounterStore(database)
	kv := sqlite.NewKVStore(database)

	orderService = app.NewOrderService(orderRepo, counters, kv)
	menuService = app.NewMenuService(categoryRepo, itemRepo)
	authService = app.NewAuthService(kv)
}

// OrderAdapter returns a new OrderAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func OrderAdapter() *cliadapter.OrderAdapter {
	return OrderAdapterWithOutput(os.Stdout)
}

// OrderAdapterWithOutput returns a new OrderAdapter writing to the given
// output. This variant allows testing or alternate output destinations.
func OrderAdapterWithOutput(out io.Writer) *cliadapter.OrderAdapter {
	once.Do(initServices)
	return cliadapter.NewOrderAdapter(orderService, out)
}

// MenuAdapter returns a new MenuAdapter writing to stdout.
func MenuAdapter() *cliadapter.MenuAdapter {
	return MenuAdapterWithOutput(os.Stdout)
}

// MenuAdapterWithOutput returns a new MenuAdapter writing to the given output.
func MenuAdapterWithOutput(out io.Writer) *cliadapter.MenuAdapter {
	once.Do(initServices)
	return cliadapter.NewMenuAdapter(menuService, out)
}

// AuthAdapter returns a new AuthAdapter writing to stdout.
func AuthAdapter() *cliadapter.AuthAdapter {
	return AuthAdapterWithOutput(os.Stdout)
}

// AuthAdapterWithOutput returns a new AuthAdapter writing to the given output.
func AuthAdapterWithOutput(out io.Writer) *cliadapter.AuthAdapter {
	once.Do(initServices)
	return cliadapter.NewAuthAdapter(authService, out)
}
