package devapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/gin-gonic/gin"
)

// store is the CRUD surface shared by every local collection.
type store[T, In, P any] interface {
	List(ctx context.Context, q models.Query) (*models.Envelope[[]T], error)
	Get(ctx context.Context, id int64) (*models.Envelope[*T], error)
	Create(ctx context.Context, in In) (*models.Envelope[*T], error)
	Update(ctx context.Context, id int64, p P) (*models.Envelope[*T], error)
	Delete(ctx context.Context, id int64) (*models.Envelope[*T], error)
}

// checks run before a write reaches the store. A models.ValidationError is
// answered with 422 and its field messages.
type checks[In, P any] struct {
	create func(ctx context.Context, in In) error
	update func(ctx context.Context, id int64, p P) error
}

func mountCRUD[T, In, P any](g *gin.RouterGroup, st store[T, In, P], ck checks[In, P]) {
	g.GET("", func(c *gin.Context) {
		env, err := st.List(c.Request.Context(), models.QueryFromValues(c.Request.URL.Query()))
		respond(c, http.StatusOK, env, err)
	})

	g.GET("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		env, err := st.Get(c.Request.Context(), id)
		respond(c, http.StatusOK, env, err)
	})

	g.POST("", func(c *gin.Context) {
		var in In
		if !bindBody(c, &in, true) {
			return
		}
		if ck.create != nil {
			if err := ck.create(c.Request.Context(), in); err != nil {
				rejectInvalid(c, err)
				return
			}
		}
		env, err := st.Create(c.Request.Context(), in)
		respond(c, http.StatusCreated, env, err)
	})

	g.PUT("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var p P
		if !bindBody(c, &p, true) {
			return
		}
		if ck.update != nil {
			if err := ck.update(c.Request.Context(), id, p); err != nil {
				rejectInvalid(c, err)
				return
			}
		}
		env, err := st.Update(c.Request.Context(), id, p)
		respond(c, http.StatusOK, env, err)
	})

	g.DELETE("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		env, err := st.Delete(c.Request.Context(), id)
		respond(c, http.StatusOK, env, err)
	})
}

// statusFor maps an envelope error code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case models.CodeNotFound:
		return http.StatusNotFound
	case models.CodeInvalid:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusConflict
	}
}

func respond[X any](c *gin.Context, okStatus int, env *models.Envelope[X], err error) {
	switch {
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.Failure[any]("", err.Error()))
	case !env.Success:
		c.JSON(statusFor(env.Code), env)
	default:
		c.JSON(okStatus, env)
	}
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, models.Failure[any](models.CodeInvalid, msg))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, fmt.Sprintf("invalid id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}

// bindBody decodes the JSON body into dst. An empty body is accepted unless
// required is set.
func bindBody(c *gin.Context, dst any, required bool) bool {
	raw, err := c.GetRawData()
	if err != nil {
		badRequest(c, "read body: "+err.Error())
		return false
	}
	if strings.TrimSpace(string(raw)) == "" {
		if required {
			badRequest(c, "request body is required")
			return false
		}
		return true
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		badRequest(c, "invalid json: "+err.Error())
		return false
	}
	return true
}

func rejectInvalid(c *gin.Context, err error) {
	env := models.Failure[any](models.CodeInvalid, err.Error())
	if fields, ok := models.AsValidation(err); ok {
		env.Errors = fields
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, env)
}
