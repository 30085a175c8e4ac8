package https

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"

	"github.com/rendau/jobly/internal/adapters/logger"
	"github.com/rendau/jobly/internal/errs"
	"github.com/rendau/jobly/internal/types"
)

const (
	ReadHeaderTimeout = 10 * time.Second
	ReadTimeout       = 2 * time.Minute
	MaxHeaderBytes    = 300 * 1024
)

type St struct {
	lg logger.Lite

	addr   string
	server *http.Server
	eChan  chan error
}

func Start(addr string, handler http.Handler, lg logger.Lite) *St {
	s := &St{
		lg:   lg,
		addr: addr,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			MaxHeaderBytes:    MaxHeaderBytes,
		},
		eChan: make(chan error, 1),
	}

	s.lg.Infow("Start rest-api", "addr", s.server.Addr)

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			s.lg.Errorw("Http server closed", err)
			s.eChan <- err
		}
	}()

	return s
}

func (s *St) Wait() <-chan error {
	return s.eChan
}

func (s *St) Shutdown(timeout time.Duration) bool {
	defer close(s.eChan)

	ctx, ctxCancel := context.WithTimeout(context.Background(), timeout)
	defer ctxCancel()

	err := s.server.Shutdown(ctx)
	if err != nil {
		s.lg.Errorw("Fail to shutdown http-api", err, "addr", s.addr)
		return false
	}

	return true
}

func Error(c *gin.Context, err error) bool {
	if err != nil {
		_ = c.Error(err)
		return true
	}
	return false
}

func BindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err != nil {
		Error(c, errs.ErrWithDesc{
			Err:  errs.BadJson,
			Desc: err.Error(),
		})

		return false
	}

	return true
}

func BindQuery(c *gin.Context, obj any) bool {
	err := c.ShouldBindQuery(obj)
	if err != nil {
		Error(c, errs.ErrWithDesc{
			Err:  errs.BadQueryParams,
			Desc: err.Error(),
		})

		return false
	}

	return true
}

func MwRecovery(lg logger.WarnAndError, handler func(*gin.Context, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			var err error

			if gErr := c.Errors.Last(); gErr != nil { // gin error
				if gErr.IsType(gin.ErrorTypeBind) {
					err = errs.ErrWithDesc{
						Err:  errs.BadJson,
						Desc: gErr.Err.Error(),
					}
				} else {
					err = gErr.Err
				}
			} else if recoverRep := recover(); recoverRep != nil { // recovery error
				var ok bool
				if err, ok = recoverRep.(error); !ok {
					err = errors.New(fmt.Sprint(recoverRep))
				}
			}

			if err == nil {
				return
			}

			if handler != nil {
				handler(c, err)
				return
			}

			switch cErr := err.(type) {
			case errs.Err:
				c.AbortWithStatusJSON(http.StatusBadRequest, types.ErrRep{
					ErrorCode: cErr.Error(),
				})
			case errs.ErrWithDesc:
				c.AbortWithStatusJSON(http.StatusBadRequest, types.ErrRep{
					ErrorCode: cErr.Err.Error(),
					Desc:      cErr.Desc,
				})
			default:
				lg.Errorw(
					"Error in http handler",
					err,
					"method", c.Request.Method,
					"path", c.Request.URL.String(),
				)

				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()

		c.Next()
	}
}

func MwCors() gin.HandlerFunc {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           604800,
	})
}
