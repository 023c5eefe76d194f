package httpserver

import (
	"context"
	"log"

	"storefront/internal/domain"
	"storefront/internal/service/auth"
	usersvc "storefront/internal/service/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the router depends on. Small interfaces
// keep handlers testable with stubs.
type Deps struct {
	UserSvc  userService
	AuthSvc  authService
	ItemSvc  itemService
	CartSvc  cartService
	OrderSvc orderService
}

type userService interface {
	Signup(ctx context.Context, in usersvc.SignupInput) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type authService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Verify(raw string) (auth.Identity, error)
}

type itemService interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	FindByName(ctx context.Context, name string) ([]domain.Item, error)
}

type cartService interface {
	AddItem(ctx context.Context, username, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, username, itemID string, quantity int) (*domain.Cart, error)
}

type orderService interface {
	Submit(ctx context.Context, username string) (*domain.Order, error)
	History(ctx context.Context, username string) ([]domain.Order, error)
}

// buildRouter wires routes for the API. Account creation and login are
// the only routes reachable without a token; everything under /api
// passes the token verification middleware first.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/login", loginHandler(deps.AuthSvc))
	router.POST("/api/user/create", createUserHandler(deps.UserSvc))

	api := router.Group("/api", authRequired(deps.AuthSvc))
	{
		api.GET("/user/:username", getUserByUsernameHandler(deps.UserSvc))
		api.GET("/user/id/:id", getUserByIDHandler(deps.UserSvc))

		api.GET("/item", listItemsHandler(deps.ItemSvc))
		api.GET("/item/:id", getItemHandler(deps.ItemSvc))
		api.GET("/item/name/:name", findItemsByNameHandler(deps.ItemSvc))

		api.POST("/cart/addToCart", modifyCartHandler(deps.CartSvc, cartOpAdd))
		api.POST("/cart/removeFromCart", modifyCartHandler(deps.CartSvc, cartOpRemove))

		api.POST("/order/submit/:username", submitOrderHandler(deps.OrderSvc))
		api.GET("/order/history/:username", orderHistoryHandler(deps.OrderSvc))
	}

	return router
}
