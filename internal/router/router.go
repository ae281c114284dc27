package router

import (
	"time"

	"bodegapos/internal/cart"
	"bodegapos/internal/config"
	"bodegapos/internal/handler"
	"bodegapos/internal/middleware"
	"bodegapos/internal/repository"
	"bodegapos/internal/service"
	"bodegapos/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	pausedRepo := repository.NewPausedSaleRepository(db)

	// ── Cart runtime ─────────────────────────────────────────────────────────
	manager := cart.NewManager()
	engine := cart.NewEngine(productRepo)

	// ── Services ─────────────────────────────────────────────────────────────
	cartSvc := service.NewCartService(manager, engine, customerRepo, employeeRepo)
	saleSvc := service.NewSaleService(manager, saleRepo, productRepo, customerRepo, employeeRepo, dispatcher)
	pauseSvc := service.NewPauseService(manager, pausedRepo)
	productSvc := service.NewProductService(productRepo, categoryRepo, supplierRepo, unitRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	unitSvc := service.NewUnitService(unitRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	cartsH := handler.NewCartsHandler(cartSvc, saleSvc, pauseSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	priceH := handler.NewPriceCheckHandler(productRepo, rdb)
	productsH := handler.NewProductsHandler(productSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	unitsH := handler.NewUnitsHandler(unitSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Kiosk price lookup — read-only, heavily cached
	r.GET("/v1/price/:code", priceH.GetByCode)

	v1 := r.Group("/v1")
	{
		carts := v1.Group("/carts")
		{
			carts.POST("", cartsH.Create)
			carts.POST("/resume", cartsH.Resume)
			carts.GET("/:id", cartsH.Get)
			carts.DELETE("/:id", cartsH.Discard)
			carts.POST("/:id/items", cartsH.AddItem)
			carts.PATCH("/:id/items/:code", cartsH.EditQuantity)
			carts.DELETE("/:id/items/:code", cartsH.RemoveItem)
			carts.PUT("/:id/customer", cartsH.BindCustomer)
			carts.PUT("/:id/employee", cartsH.BindEmployee)
			carts.PUT("/:id/payment", cartsH.SetPayment)
			carts.POST("/:id/checkout", cartsH.Checkout)
			carts.POST("/:id/pause", cartsH.Pause)
		}

		v1.GET("/sales", salesH.List)
		v1.GET("/sales/:id", salesH.Get)

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:code", productsH.Get)
			products.PUT("/:code", productsH.Update)
			products.DELETE("/:code", productsH.Delete)
		}

		customers := v1.Group("/customers")
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:phone", customersH.Get)
			customers.PUT("/:phone", customersH.Update)
			customers.DELETE("/:phone", customersH.Delete)
		}

		employees := v1.Group("/employees")
		{
			employees.POST("", employeesH.Create)
			employees.GET("", employeesH.List)
			employees.GET("/:id", employeesH.Get)
			employees.PUT("/:id", employeesH.Update)
			employees.DELETE("/:id", employeesH.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.POST("", categoriesH.Create)
			categories.GET("", categoriesH.List)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		units := v1.Group("/units")
		{
			units.POST("", unitsH.Create)
			units.GET("", unitsH.List)
			units.PUT("/:id", unitsH.Update)
			units.DELETE("/:id", unitsH.Delete)
		}
	}

	return r
}
