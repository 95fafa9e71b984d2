package main

import (
	"context"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ramasethuai/annapurnaskitchen/docs"
	"github.com/ramasethuai/annapurnaskitchen/internal/admin"
	"github.com/ramasethuai/annapurnaskitchen/internal/config"
	"github.com/ramasethuai/annapurnaskitchen/internal/httpx"
	"github.com/ramasethuai/annapurnaskitchen/internal/menu"
	"github.com/ramasethuai/annapurnaskitchen/internal/order"
	"github.com/ramasethuai/annapurnaskitchen/internal/payment"
	"github.com/ramasethuai/annapurnaskitchen/internal/report"
	"github.com/ramasethuai/annapurnaskitchen/internal/store"
)

// @title Annapurna's Kitchen API
// @version 1.0
// @description Ordering, payments and menu administration for Annapurna's Kitchen.
// @BasePath /
func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := store.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[store] connect: %v", err)
	}
	defer pool.Close()

	if err := store.Migrate(ctx, pool); err != nil {
		log.Fatalf("[store] migrate: %v", err)
	}

	admins := admin.NewPGRepo(pool)
	menus := menu.NewPGRepo(pool)
	orders := order.NewPGRepo(pool)
	payments := payment.NewPGRepo(pool)
	reports := report.NewPGRepo(pool)

	if err := admin.EnsureDefault(ctx, admins, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("[admin] bootstrap: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	sessStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessStore.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 86400 * 30})
	r.Use(sessions.Sessions("annapurna_session", sessStore))

	r.SetHTMLTemplate(pageTemplates())

	// public
	r.GET("/", indexHandler())
	r.GET("/health", healthHandler())
	r.GET("/api/menu_config", getMenuConfigHandler(menus))
	r.POST("/api/order", submitOrderHandler(orders))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/admin/login", loginFormHandler())
	r.POST("/admin/login", loginHandler(admins))

	// everything below requires a logged-in admin
	auth := r.Group("/", httpx.RequireAdmin("/admin/login"))
	auth.GET("/admin", adminPageHandler())
	auth.GET("/admin/logout", logoutHandler())

	api := auth.Group("/api/admin")
	api.GET("/admins", listAdminsHandler(admins))
	api.POST("/admins", createAdminHandler(admins))
	api.GET("/menu_config", getMenuConfigHandler(menus))
	api.POST("/menu_config", saveMenuConfigHandler(menus))
	api.GET("/summary", summaryHandler(reports))
	api.GET("/summary_csv", summaryCSVHandler(reports))
	api.GET("/orders", listOrdersHandler(orders))
	api.GET("/payments", listPaymentsHandler(payments))
	api.POST("/payments", recordPaymentHandler(payments))

	log.Printf("kitchen-service listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
