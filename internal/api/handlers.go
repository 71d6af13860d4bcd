package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rshade/canteenco2/internal/impact"
	"github.com/rshade/canteenco2/internal/sourcing"
	"github.com/rshade/canteenco2/pkg/version"
)

// GET /healthz
func (s *Server) handleHealth(c *gin.Context) {
	if err := s.Warm(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	store, _ := s.factors.Store(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"version":        version.GetVersion(),
		"factors_schema": store.SchemaVersion(),
	})
}

// POST /api/v1/impact  {"employees": 200, "meat_distribution": {...}, ...}
func (s *Server) handleImpact(c *gin.Context) {
	var params impact.CanteenParameters
	if err := c.ShouldBindJSON(&params); err != nil {
		writeError(c, fmt.Errorf("%w: invalid JSON body: %w", errBadRequest, err))
		return
	}
	out, err := s.calculateImpact(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/sourcing/:month (0 = January)
func (s *Server) handleSourcing(c *gin.Context) {
	month, err := monthParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := s.sourcingRecommendations(c.Request.Context(), month)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/factors?category=red_meat
func (s *Server) handleListFactors(c *gin.Context) {
	out, err := s.listFactors(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/factors/:item?organic=true
func (s *Server) handleFactor(c *gin.Context) {
	organic, err := strconv.ParseBool(c.DefaultQuery("organic", "false"))
	if err != nil {
		writeError(c, fmt.Errorf("%w: organic must be true or false", errBadRequest))
		return
	}
	f, err := s.lookupFactor(c.Request.Context(), c.Param("item"), organic)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// GET /api/v1/categories
func (s *Server) handleCategories(c *gin.Context) {
	store, err := s.factors.Store(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": store.Categories()})
}

// GET /api/v1/alternatives/:meat
func (s *Server) handleAlternatives(c *gin.Context) {
	out, err := s.plantAlternatives(c.Request.Context(), c.Param("meat"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/waste-tips?category=Portionskontrol
func (s *Server) handleWasteTips(c *gin.Context) {
	out, err := s.wasteTips(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/organic/:item
func (s *Server) handleOrganic(c *gin.Context) {
	out, err := s.organicComparison(c.Request.Context(), c.Param("item"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/seasonal/:month (0 = January)
func (s *Server) handleSeasonal(c *gin.Context) {
	month, err := monthParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := s.seasonalProduce(c.Request.Context(), month)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/transport
func (s *Server) handleTransport(c *gin.Context) {
	out, err := s.transportFactors(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/canteens
func (s *Server) handleListCanteens(c *gin.Context) {
	out, err := s.listCanteens(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/canteens/:id
func (s *Server) handleCanteen(c *gin.Context) {
	id, err := canteenParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := s.canteenProfile(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/canteens/:id/impact
func (s *Server) handleCanteenImpact(c *gin.Context) {
	id, err := canteenParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := s.canteenImpact(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func canteenParam(c *gin.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: canteen id %q is not a number", errBadRequest, raw)
	}
	return id, nil
}

func monthParam(c *gin.Context) (int, error) {
	raw := c.Param("month")
	month, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", sourcing.ErrInvalidMonth, raw)
	}
	return month, nil
}
