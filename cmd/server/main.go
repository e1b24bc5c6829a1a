package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/config"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/handlers"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/store"
)

func main() {
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Init DB
	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate("migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 3. Session Setup
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 4. Init Templates
	templates := handlers.NewTemplateCache()
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Handlers
	adminHandler := &handlers.AdminHandler{
		Store:        db,
		SessionStore: sessionStore,
		Templates:    templates,
	}
	homeHandler := &handlers.HomeHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	cartHandler := &handlers.CartHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	orderHandler := &handlers.OrderHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	messageHandler := &handlers.MessageHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}

	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate Limiter (1 request per minute on public POSTs)
	rateLimiter := handlers.NewRateLimiter(1 * time.Minute)

	// Storefront
	mux.HandleFunc("/", homeHandler.Index)
	mux.HandleFunc("/item", homeHandler.ItemDetail)
	mux.HandleFunc("POST /currency", cartHandler.SelectCurrency)

	// Cart
	mux.HandleFunc("/cart", cartHandler.ViewCart)
	mux.HandleFunc("POST /cart/add", cartHandler.AddToCart)
	mux.HandleFunc("POST /cart/update", cartHandler.UpdateQuantity)
	mux.HandleFunc("POST /cart/remove", cartHandler.RemoveLine)

	// Checkout
	mux.HandleFunc("/checkout", orderHandler.CheckoutForm)
	mux.HandleFunc("POST /checkout", rateLimiter.Middleware(orderHandler.SubmitCheckout))

	// Order Status (Magic Link)
	mux.HandleFunc("/status-request", orderHandler.RequestStatusLink)
	mux.HandleFunc("POST /status-request", rateLimiter.Middleware(orderHandler.SendStatusLink))
	mux.HandleFunc("/my-orders", orderHandler.MyOrders)
	mux.HandleFunc("/order/status/", orderHandler.ViewOrderStatus) // Trailing slash matches /order/status/{token}

	// Contact
	mux.HandleFunc("/contact", messageHandler.ContactForm)
	mux.HandleFunc("POST /contact", rateLimiter.Middleware(messageHandler.SubmitMessage))

	mux.HandleFunc("/login", adminHandler.LoginGet)
	mux.HandleFunc("POST /login", adminHandler.LoginPost)
	mux.HandleFunc("/logout", adminHandler.Logout)

	// Protected Routes
	mux.HandleFunc("/admin", adminHandler.AuthMiddleware(adminHandler.Dashboard))
	mux.HandleFunc("/admin/orders", adminHandler.AuthMiddleware(adminHandler.ListOrders))
	mux.HandleFunc("/admin/orders/history", adminHandler.AuthMiddleware(adminHandler.OrderHistory))
	mux.HandleFunc("POST /admin/orders/update", adminHandler.AuthMiddleware(adminHandler.UpdateOrderStatus))

	mux.HandleFunc("/admin/items", adminHandler.AuthMiddleware(adminHandler.ListItems))
	mux.HandleFunc("/admin/items/new", adminHandler.AuthMiddleware(adminHandler.AddItemForm))
	mux.HandleFunc("POST /admin/items", adminHandler.AuthMiddleware(adminHandler.CreateItem))
	mux.HandleFunc("POST /admin/items/delete", adminHandler.AuthMiddleware(adminHandler.DeleteItem))
	mux.HandleFunc("/admin/items/edit", adminHandler.AuthMiddleware(adminHandler.EditItemForm))
	mux.HandleFunc("POST /admin/items/update", adminHandler.AuthMiddleware(adminHandler.UpdateItem))

	mux.HandleFunc("/admin/messages", adminHandler.AuthMiddleware(messageHandler.ListMessages))
	mux.HandleFunc("/admin/messages/view", adminHandler.AuthMiddleware(messageHandler.ViewMessage))
	mux.HandleFunc("POST /admin/messages/reply", adminHandler.AuthMiddleware(messageHandler.ReplyMessage))

	// 6. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Chain: Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			CSRF(mux),
		),
	)

	// 7. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
