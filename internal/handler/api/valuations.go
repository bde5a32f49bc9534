package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	icache "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/service/cache"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/service/metrics"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/service/ratelimit"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/usecase"
	xhttp "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/http"
	applogger "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/logger"
)

// ValuationsHandler exposes the valuation endpoints over Echo.
type ValuationsHandler struct {
	logger    *applogger.Logger
	crypto    *usecase.CryptoAnalyzer
	property  *usecase.PropertyAnalyzer
	cache     icache.BytesCache
	rl        *ratelimit.Limiter
	resultTTL time.Duration
}

func NewValuationsHandler(logger *applogger.Logger, crypto *usecase.CryptoAnalyzer, property *usecase.PropertyAnalyzer) *ValuationsHandler {
	metrics.Register()
	return &ValuationsHandler{
		logger:    logger,
		crypto:    crypto,
		property:  property,
		rl:        ratelimit.New(),
		resultTTL: 30 * time.Second,
	}
}

// SetResponseCache injects a response-bytes cache.
func (h *ValuationsHandler) SetResponseCache(c icache.BytesCache) { h.cache = c }

// SetResultTTL overrides how long rendered results stay cached.
func (h *ValuationsHandler) SetResultTTL(ttl time.Duration) {
	if ttl > 0 {
		h.resultTTL = ttl
	}
}

func (h *ValuationsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/crypto", h.Crypto)
	g.POST("/property", h.Property)
	g.GET("/health", h.Health)
}

func (h *ValuationsHandler) Crypto(c echo.Context) error {
	start := time.Now()
	endpoint := "crypto"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.CryptoAnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.rl.Allow(c.RealIP()+":"+endpoint, 5, 2) {
		h.logger.Warn("crypto rate_limited", applogger.String("remote", c.RealIP()))
		return xhttp.TooManyRequestsResponse(c)
	}

	key := cryptoCacheKey(req)
	if b, ok := h.cachedResult(endpoint, key); ok {
		return xhttp.SuccessResponse(c, json.RawMessage(b))
	}

	res, err := h.crypto.Analyze(c.Request().Context(), req)
	if err != nil {
		metrics.ValuationErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("crypto usecase error", applogger.String("asset", req.Asset), applogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	h.storeResult(endpoint, key, res)
	return xhttp.SuccessResponse(c, res)
}

func (h *ValuationsHandler) Property(c echo.Context) error {
	start := time.Now()
	endpoint := "property"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.PropertyAnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.rl.Allow(c.RealIP()+":"+endpoint, 5, 2) {
		h.logger.Warn("property rate_limited", applogger.String("remote", c.RealIP()))
		return xhttp.TooManyRequestsResponse(c)
	}

	key := propertyCacheKey(req)
	if b, ok := h.cachedResult(endpoint, key); ok {
		return xhttp.SuccessResponse(c, json.RawMessage(b))
	}

	res, err := h.property.Analyze(c.Request().Context(), req)
	if err != nil {
		metrics.ValuationErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("property usecase error", applogger.String("area", req.Area), applogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	h.storeResult(endpoint, key, res)
	return xhttp.SuccessResponse(c, res)
}

func (h *ValuationsHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *ValuationsHandler) cachedResult(endpoint, key string) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	b, ok, err := h.cache.GetBytes(key)
	if err != nil {
		h.logger.Warn("result cache get error", applogger.String("key", key), applogger.Error(err))
		return nil, false
	}
	if ok {
		metrics.CacheHits.WithLabelValues(endpoint).Inc()
	}
	return b, ok
}

func (h *ValuationsHandler) storeResult(endpoint, key string, res interface{}) {
	if h.cache == nil {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		h.logger.Warn("result marshal error", applogger.String("endpoint", endpoint), applogger.Error(err))
		return
	}
	if err := h.cache.SetBytes(key, b, h.resultTTL); err != nil {
		h.logger.Warn("result cache set error", applogger.String("key", key), applogger.Error(err))
	}
}

func cryptoCacheKey(req *models.CryptoAnalyzeRequest) string {
	return fmt.Sprintf("crypto:%s:%v:%v", req.Asset, f64(req.NewUnitsPerYear), f64(req.ValueLockedUSD))
}

func propertyCacheKey(req *models.PropertyAnalyzeRequest) string {
	return fmt.Sprintf("property:%s:%s:%d:%.0f:%.0f",
		req.Area, req.PropertyType, req.Bedrooms, req.SizeSqft, req.AskingAED)
}

func f64(p *float64) float64 {
	if p == nil {
		return -1
	}
	return *p
}
