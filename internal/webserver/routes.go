// SPDX-License-Identifier: MPL-2.0

package webserver

import (
	_ "embed"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/powcalc/powcalc/internal/boundary"
	"github.com/powcalc/powcalc/internal/issue"
	"github.com/powcalc/powcalc/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	//go:embed assets/index.html
	indexHTML []byte
	//go:embed assets/app.js
	appJS []byte
)

type (
	// PowerResponse is the body of GET /api/power.
	PowerResponse struct {
		Base     int64  `json:"base"`
		Exponent int64  `json:"exponent"`
		Result   string `json:"result"`
		Digits   int    `json:"digits"`
	}

	// DigitsResponse is the body of GET /api/digits.
	DigitsResponse struct {
		Base     int64 `json:"base"`
		Exponent int64 `json:"exponent"`
		Digits   int   `json:"digits"`
	}

	// NameRequest is the body of POST /api/validate/name.
	NameRequest struct {
		Name *string `json:"name"`
	}

	// NameResponse is the reply to POST /api/validate/name.
	NameResponse struct {
		Name  string `json:"name"`
		Valid bool   `json:"valid"`
		Error string `json:"error,omitempty"`
	}

	// ErrorResponse is the body of every 4xx reply.
	ErrorResponse struct {
		Error string `json:"error"`
	}
)

func (s *Server) newEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), isolationHeaders(), corsMiddleware(), s.observe())

	engine.GET("/", s.handleIndex)
	engine.GET("/index.html", s.handleIndex)
	engine.GET("/app.js", s.handleAppJS)
	engine.GET("/"+WasmFileName, s.handleWasm)

	api := engine.Group("/api")
	api.GET("/power", s.handlePower)
	api.GET("/digits", s.handleDigits)
	api.POST("/validate/name", s.handleValidateName)

	engine.GET("/healthz", s.handleHealth)
	if s.cfg.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	})

	return engine
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) handleAppJS(c *gin.Context) {
	c.Data(http.StatusOK, "text/javascript; charset=utf-8", appJS)
}

func (s *Server) handleWasm(c *gin.Context) {
	path := filepath.Join(s.cfg.Dir, WasmFileName)
	if s.cfg.Dir == "" || !isFile(path) {
		s.cfg.Logger.Warn("wasm module missing", "path", path, "issue", issue.WasmModuleMissingId)
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "powcalc.wasm not found; build it with GOOS=wasip1 GOARCH=wasm and pass --dir",
		})
		return
	}
	c.Header("Content-Type", "application/wasm")
	c.File(path)
}

func (s *Server) handlePower(c *gin.Context) {
	base, exponent, ok := operands(c)
	if !ok {
		return
	}
	result, err := s.cfg.Calculator.Exact(base, exponent)
	if err != nil {
		abortWithCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, PowerResponse{
		Base:     base,
		Exponent: exponent,
		Result:   result,
		Digits:   len(result),
	})
}

func (s *Server) handleDigits(c *gin.Context) {
	base, exponent, ok := operands(c)
	if !ok {
		return
	}
	n, err := s.cfg.Calculator.DigitCount(base, exponent)
	if err != nil {
		abortWithCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, DigitsResponse{Base: base, Exponent: exponent, Digits: n})
}

func (s *Server) handleValidateName(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "expected a JSON body with a \"name\" string"})
		return
	}

	resp := NameResponse{Name: *req.Name, Valid: true}
	if err := types.PersonName(*req.Name).Validate(); err != nil {
		resp.Valid = false
		resp.Error = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "state": s.State().String()})
}

// operands parses the base and exponent query parameters, replying 400 when
// either is missing or not an integer.
func operands(c *gin.Context) (base, exponent int64, ok bool) {
	base, err := strconv.ParseInt(c.Query("base"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "base must be an integer"})
		return 0, 0, false
	}
	exponent, err = strconv.ParseInt(c.Query("exponent"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "exponent must be an integer"})
		return 0, 0, false
	}
	return base, exponent, true
}

func abortWithCalcError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, boundary.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, boundary.ErrExponentTooLarge):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
