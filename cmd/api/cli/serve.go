package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"golang.org/x/sync/errgroup"

	"eats-backend/graph"
	"eats-backend/internal/app/orders"
	"eats-backend/internal/app/payments"
	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
	"eats-backend/internal/config"
	"eats-backend/internal/mail"
	"eats-backend/internal/pubsub"
	"eats-backend/internal/storage"
	httptransport "eats-backend/internal/transport/http"
)

const promotionSweepInterval = time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the GraphQL API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.Connect(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("connecting database: %w", err)
	}
	defer db.Close()

	events := pubsub.New[*orders.Order]()
	mailer := mail.NewMailer(cfg.Mailgun.APIKey, cfg.Mailgun.Domain, cfg.Mailgun.FromEmail)
	codec := auth.NewTokenCodec(cfg.Auth.TokenSecret, cfg.Auth.TokenMaxAge)

	usersSvc := users.NewService(db.Users(), db.Verifications(), codec, mailer, uuid.NewString)
	restaurantsSvc := restaurants.NewService(db.Restaurants(), db.Categories(), db.Dishes())
	ordersSvc := orders.NewService(db.Orders(), db.Restaurants(), db.Dishes(), events)
	paymentsSvc := payments.NewService(db.Payments(), db.Restaurants())

	identity := auth.NewIdentity(codec, usersSvc)
	gate := auth.NewGate(graph.Policies())

	gqlSrv := handler.New(graph.NewExecutableSchema(graph.Config{
		Resolvers: &graph.Resolver{
			Users:       usersSvc,
			Restaurants: restaurantsSvc,
			Orders:      ordersSvc,
			Payments:    paymentsSvc,
		},
	}))

	gqlSrv.AddTransport(transport.Options{})
	gqlSrv.AddTransport(transport.GET{})
	gqlSrv.AddTransport(transport.POST{})
	gqlSrv.AddTransport(&transport.Websocket{
		Upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		KeepAlivePingInterval: 10 * time.Second,
		// Websocket connections carry the credential in the init
		// payload instead of a header; resolve it once here so
		// subscription resolvers see the same principal HTTP
		// requests get from the middleware.
		InitFunc: func(ctx context.Context, payload transport.InitPayload) (context.Context, *transport.InitPayload, error) {
			if p, ok := identity.Resolve(ctx, payload.GetString(httptransport.TokenHeader)); ok {
				ctx = auth.WithPrincipal(ctx, p)
			}
			return ctx, &payload, nil
		},
	})

	gqlSrv.SetQueryCache(lru.New[*ast.QueryDocument](1000))

	gqlSrv.Use(extension.Introspection{})
	gqlSrv.Use(extension.AutomaticPersistedQuery{
		Cache: lru.New[string](100),
	})
	gqlSrv.Use(gate)

	mux := http.NewServeMux()
	mux.Handle("/", playground.Handler("GraphQL playground", "/query"))
	mux.Handle("/query", gqlSrv)
	mux.Handle("/metrics", promhttp.Handler())

	authMw := httptransport.AuthMiddleware{Identity: identity}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           authMw.Wrap(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.HTTP.Port).Msg("graphql server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return paymentsSvc.RunPromotionSweep(ctx, promotionSweepInterval)
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
