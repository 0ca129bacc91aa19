package devapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/gin-gonic/gin"
)

// decision is the optional body of approve and reject.
type decision struct {
	Notes string `json:"notes"`
}

// action runs fn for the :id of the request and writes its envelope.
func action[T any](c *gin.Context, fn func(ctx context.Context, id int64) (*models.Envelope[*T], error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	env, err := fn(c.Request.Context(), id)
	respond(c, http.StatusOK, env, err)
}

func (s *Server) toggleFAQ(c *gin.Context) {
	action(c, s.store.FAQs.ToggleStatus)
}

func (s *Server) setActiveAccount(c *gin.Context) {
	action(c, s.store.BankAccounts.SetActive)
}

func (s *Server) reportStatus(c *gin.Context) {
	var ch models.StatusChange
	if !bindBody(c, &ch, true) {
		return
	}
	action(c, func(ctx context.Context, id int64) (*models.Envelope[*models.Report], error) {
		return s.store.Reports.UpdateStatus(ctx, id, ch)
	})
}

func (s *Server) storeStatus(c *gin.Context) {
	var ch models.StatusChange
	if !bindBody(c, &ch, true) {
		return
	}
	action(c, func(ctx context.Context, id int64) (*models.Envelope[*models.Store], error) {
		return s.store.Stores.UpdateStatus(ctx, id, ch)
	})
}

// decide binds the optional notes and applies fn.
func decide[T any](c *gin.Context, fn func(ctx context.Context, id int64, notes string) (*models.Envelope[*T], error)) {
	var d decision
	if !bindBody(c, &d, false) {
		return
	}
	action(c, func(ctx context.Context, id int64) (*models.Envelope[*T], error) {
		return fn(ctx, id, d.Notes)
	})
}

func (s *Server) approveStore(c *gin.Context)   { decide(c, s.store.Stores.Approve) }
func (s *Server) rejectStore(c *gin.Context)    { decide(c, s.store.Stores.Reject) }
func (s *Server) approvePayment(c *gin.Context) { decide(c, s.store.Payments.Approve) }
func (s *Server) rejectPayment(c *gin.Context)  { decide(c, s.store.Payments.Reject) }
