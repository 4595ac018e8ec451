package server

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/domain"
)

const defaultServerHorizon = 60

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProject(ctx *fasthttp.RequestCtx) {
	var req ProjectRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Scenario == nil {
		writeError(ctx, fasthttp.StatusBadRequest, "scenario is required")
		return
	}
	if req.Scenario.Name == "" {
		req.Scenario.Name = "request"
	}

	var profile domain.Profile
	if req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "invalid birth date, want YYYY-MM-DD: "+err.Error())
			return
		}
		profile.BirthDate = parsed
	}

	horizon := req.HorizonYears
	if horizon <= 0 {
		horizon = defaultServerHorizon
	}

	result, err := s.engine.RunScenario(req.Scenario, req.CurrentNetWorth, time.Now().UTC(), profile, horizon)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	if !req.IncludeMonthly {
		result.Projection.MonthlyRows = nil
	}

	writeJSON(ctx, fasthttp.StatusOK, ProjectResponse{
		Scenario:   result.Scenario,
		Projection: result.Projection,
		Milestones: result.Milestones,
		Tax:        result.Tax,
	})
}

func (s *Server) handleTax(ctx *fasthttp.RequestCtx) {
	var req TaxRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.GrossIncome.IsNegative() {
		writeError(ctx, fasthttp.StatusBadRequest, "gross income cannot be negative")
		return
	}
	if req.FilingStatus != "" && !req.FilingStatus.Valid() {
		writeError(ctx, fasthttp.StatusBadRequest, "unknown filing status: "+string(req.FilingStatus))
		return
	}

	tax := calculation.ComputeTax(req.GrossIncome, req.FilingStatus, req.StateCode, req.PreTax)
	writeJSON(ctx, fasthttp.StatusOK, tax)
}

func (s *Server) handleMilestoneCatalog(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, calculation.MilestoneCatalog())
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "encode response: "+err.Error())
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	data, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}
