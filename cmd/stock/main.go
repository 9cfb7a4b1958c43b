package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/repository"
	"github.com/Remisdv/BDD/internal/service"
	"github.com/Remisdv/BDD/internal/shell"
	"github.com/Remisdv/BDD/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database + connectivity gate
	db, err := database.Connect()
	if err != nil {
		log.Println("Failed to connect to database:", err)
		os.Exit(1)
	}
	if err := database.Ping(db); err != nil {
		log.Println("Database connectivity check failed:", err)
		os.Exit(1)
	}

	// Auto Migrate (for production prefer a dedicated migration tool)
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.StockMovement{},
		&model.User{},
	); err != nil {
		log.Println("Migration failed:", err)
		os.Exit(1)
	}

	// 3. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	movementRepo := repository.NewStockMovementRepo(db)
	userRepo := repository.NewUserRepo(db)

	stockService := service.NewStockService(movementRepo, db)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)

	console := shell.New(os.Stdin, os.Stdout, shell.Deps{
		Auth:       authService,
		Stock:      stockService,
		Users:      userService,
		Products:   productRepo,
		Categories: categoryRepo,
		Suppliers:  supplierRepo,
	})

	// 4. Keyboard interrupt is a normal quit
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Goodbye!")
		os.Exit(0)
	}()

	if err := console.Run(); err != nil {
		log.Println("Fatal:", err)
		os.Exit(1)
	}
}
