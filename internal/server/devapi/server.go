package devapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/client"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
	"github.com/dmitrijs2005/marketadmin/internal/server/config"
	"github.com/gin-gonic/gin"
)

const defaultShutdownTimeout = 5 * time.Second

type Server struct {
	address         string
	shutdownTimeout time.Duration
	store           *fallback.Set
	logger          logging.Logger
	jwtSecret       []byte
	now             func() time.Time
	engine          *gin.Engine
}

// New builds the server and its routes. Bearer auth is enforced on the
// admin routes only when cfg.JWTSecret is set.
func New(cfg *config.Config, store *fallback.Set, l logging.Logger) *Server {
	s := &Server{
		address:         cfg.Addr,
		shutdownTimeout: cfg.ShutdownTimeout,
		store:           store,
		logger:          l.With("module", "devapi"),
		jwtSecret:       []byte(cfg.JWTSecret),
		now:             time.Now,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}
	s.engine = s.routes(cfg.BasePath, cfg.CORSOrigins)
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes(basePath string, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(s.logger), gin.Recovery())
	if len(origins) > 0 {
		r.Use(corsFor(origins))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.Failure[any](models.CodeNotFound, "route not found"))
	})

	api := r.Group(basePath)
	api.GET(client.PathHealth, s.health)

	admin := api.Group(client.PathAdmin)
	if len(s.jwtSecret) > 0 {
		admin.Use(bearerAuth(s.jwtSecret))
	}

	categories := admin.Group("/" + models.ResourceCategories)
	mountCRUD[models.Category, models.CategoryInput, models.CategoryPatch](categories, s.store.Categories, s.categoryChecks())

	faqs := admin.Group("/" + models.ResourceFAQs)
	mountCRUD[models.FAQ, models.FAQInput, models.FAQPatch](faqs, s.store.FAQs, checks[models.FAQInput, models.FAQPatch]{})
	faqs.PATCH("/:id/toggle-status", s.toggleFAQ)

	reports := admin.Group("/" + models.ResourceReports)
	reports.GET("/export/excel", s.exportExcel)
	reports.GET("/export/pdf", s.exportPDF)
	mountCRUD[models.Report, models.ReportInput, models.ReportPatch](reports, s.store.Reports, checks[models.ReportInput, models.ReportPatch]{})
	reports.PATCH("/:id/status", s.reportStatus)

	accounts := admin.Group("/" + models.ResourceBankAccounts)
	mountCRUD[models.BankAccount, models.BankAccountInput, models.BankAccountPatch](accounts, s.store.BankAccounts, checks[models.BankAccountInput, models.BankAccountPatch]{})
	accounts.PATCH("/:id/set-active", s.setActiveAccount)

	stores := admin.Group("/" + models.ResourceStores)
	mountCRUD[models.Store, models.StoreInput, models.StorePatch](stores, s.store.Stores, checks[models.StoreInput, models.StorePatch]{})
	stores.PATCH("/:id/approve", s.approveStore)
	stores.PATCH("/:id/reject", s.rejectStore)
	stores.PATCH("/:id/status", s.storeStatus)

	payments := admin.Group("/" + models.ResourcePayments)
	mountCRUD[models.PaymentOrder, models.PaymentInput, models.PaymentPatch](payments, s.store.Payments, checks[models.PaymentInput, models.PaymentPatch]{})
	payments.PATCH("/:id/approve", s.approvePayment)
	payments.PATCH("/:id/reject", s.rejectPayment)

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
