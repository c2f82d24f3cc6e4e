package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/internal/assistant"
)

func (s *Server) handleHealth(c *gin.Context) {
	respondOK(c, gin.H{
		"status":        "ok",
		"service":       "harmonia",
		"version":       s.cfg.Version,
		"uptimeSeconds": int(time.Since(s.started).Seconds()),
		"llmEnabled":    s.cfg.LLMEnabled,
	})
}

// handleSummary builds the assistant state from the default context.
func (s *Server) handleSummary(c *gin.Context) {
	state := s.builder.Build(c.Request.Context(), nil)
	respondOK(c, state)
}

// handleAnalyze builds the state from a caller-supplied partial
// context. An empty body means the defaults; a malformed body is the
// caller's error.
func (s *Server) handleAnalyze(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondErrorDetails(c, http.StatusBadRequest, "Unable to analyse context payload", err.Error())
		return
	}

	var patch *assistant.ContextPatch
	if len(body) > 0 {
		patch, err = assistant.ParsePatch(body)
		if err != nil {
			respondErrorDetails(c, http.StatusBadRequest, "Unable to analyse context payload", err.Error())
			return
		}
	}

	state := s.builder.Build(c.Request.Context(), patch)
	respondOK(c, state)
}

func (s *Server) handleScenarios(c *gin.Context) {
	respondOK(c, s.catalog.List())
}

// handleScenario builds the state from a named scenario context.
func (s *Server) handleScenario(c *gin.Context) {
	key := c.Param("key")
	patch, ok := s.catalog.Context(key)
	if !ok {
		respondError(c, http.StatusNotFound, "Scenario not found")
		return
	}

	state := s.builder.Build(c.Request.Context(), patch)
	respondOKMeta(c, state, gin.H{"scenario": key})
}
