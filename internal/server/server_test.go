package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/domain"
)

func doRequest(t *testing.T, method, path string, body any) *fasthttp.RequestCtx {
	t.Helper()

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		ctx.Request.SetBody(payload)
	}

	NewServer(calculation.NewEngine(), nil).Handler()(ctx)
	return ctx
}

func decodeBody(t *testing.T, ctx *fasthttp.RequestCtx, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), out))
}

func TestHealth(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/healthz", nil)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
}

func TestProject(t *testing.T) {
	s := &domain.Scenario{
		Name:               "baseline",
		BaseMonthlyBudget:  decimal.NewFromInt(3000),
		YearlyContribution: decimal.NewFromInt(30000),
	}

	ctx := doRequest(t, fasthttp.MethodPost, "/v1/project", ProjectRequest{
		Scenario:        s,
		CurrentNetWorth: decimal.NewFromInt(200000),
		HorizonYears:    30,
	})
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))

	var resp ProjectResponse
	decodeBody(t, ctx, &resp)
	require.NotNil(t, resp.Projection)
	assert.Len(t, resp.Projection.YearlyRows, 31)
	assert.Empty(t, resp.Projection.MonthlyRows, "monthly rows are opt-in")
	assert.NotNil(t, resp.Milestones)
	assert.True(t, resp.Projection.YearlyRows[0].FITarget.Equal(decimal.NewFromInt(900000)))
}

func TestProject_IncludeMonthly(t *testing.T) {
	s := &domain.Scenario{
		Name:              "baseline",
		BaseMonthlyBudget: decimal.NewFromInt(3000),
	}

	ctx := doRequest(t, fasthttp.MethodPost, "/v1/project", ProjectRequest{
		Scenario:        s,
		CurrentNetWorth: decimal.NewFromInt(200000),
		HorizonYears:    5,
		IncludeMonthly:  true,
	})
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp ProjectResponse
	decodeBody(t, ctx, &resp)
	assert.Len(t, resp.Projection.MonthlyRows, 60)
}

func TestProject_WithBirthDate(t *testing.T) {
	s := &domain.Scenario{
		Name:              "baseline",
		BaseMonthlyBudget: decimal.NewFromInt(3000),
	}

	ctx := doRequest(t, fasthttp.MethodPost, "/v1/project", ProjectRequest{
		Scenario:        s,
		CurrentNetWorth: decimal.NewFromInt(100000),
		HorizonYears:    10,
		BirthDate:       "1990-06-15",
	})
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp ProjectResponse
	decodeBody(t, ctx, &resp)
	assert.Greater(t, resp.Projection.YearlyRows[0].Age, 0, "ages come from the birth date")
}

func TestProject_BadRequests(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodPost, "/v1/project", ProjectRequest{})
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode(), "missing scenario")

	ctx = &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI("/v1/project")
	ctx.Request.SetBodyString("{not json")
	NewServer(calculation.NewEngine(), nil).Handler()(ctx)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var errResp ErrorResponse
	decodeBody(t, ctx, &errResp)
	assert.Equal(t, fasthttp.StatusBadRequest, errResp.Status)
	assert.NotEmpty(t, errResp.Message)
}

func TestProject_InvalidBirthDate(t *testing.T) {
	s := &domain.Scenario{Name: "baseline", BaseMonthlyBudget: decimal.NewFromInt(3000)}
	ctx := doRequest(t, fasthttp.MethodPost, "/v1/project", ProjectRequest{
		Scenario:        s,
		CurrentNetWorth: decimal.NewFromInt(100000),
		BirthDate:       "15/06/1990",
	})
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestTax(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodPost, "/v1/tax", TaxRequest{
		GrossIncome:  decimal.NewFromInt(100000),
		FilingStatus: domain.FilingSingle,
	})
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var tax domain.TaxCalculation
	decodeBody(t, ctx, &tax)
	assert.True(t, tax.TotalTax.Equal(decimal.NewFromInt(21491)),
		"expected the known single-filer breakdown, got %s", tax.TotalTax)
}

func TestTax_Invalid(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodPost, "/v1/tax", TaxRequest{
		GrossIncome:  decimal.NewFromInt(-1),
		FilingStatus: domain.FilingSingle,
	})
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	ctx = doRequest(t, fasthttp.MethodPost, "/v1/tax", TaxRequest{
		GrossIncome:  decimal.NewFromInt(100),
		FilingStatus: "common_law",
	})
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestMilestoneCatalog(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/v1/milestones", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var catalog []calculation.MilestoneSpec
	decodeBody(t, ctx, &catalog)
	assert.Len(t, catalog, len(calculation.MilestoneCatalog()))
}

func TestUnknownRoute(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/v1/nope", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	// Wrong method on a known path.
	ctx = doRequest(t, fasthttp.MethodGet, "/v1/project", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
