package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "stage-shift/docs" // swagger spec, generated by swag init
	"stage-shift/internal/api/handler"
	"stage-shift/pkg/router"
)

// RegisterRoutes wires the comparison API onto the router. More specific
// routes go first; the bare comparison route matches last.
func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/comparisons", handler.CreateComparison)
	r.GET("/api/v1/comparisons", handler.ListComparisons)
	r.GET("/api/v1/comparisons/*/errors", handler.GetComparisonErrors)
	r.GET("/api/v1/comparisons/*/results", handler.GetComparisonResults)
	r.GET("/api/v1/comparisons/*/summary", handler.GetComparisonSummary)
	r.GET("/api/v1/comparisons/*/logs", handler.GetComparisonLogs)
	r.POST("/api/v1/comparisons/*/retry", handler.RetryComparison)
	r.GET("/api/v1/comparisons/*", handler.GetComparison)
	r.GET("/api/v1/download/*/*", handler.DownloadExport)
	r.GET("/swagger/*", func(w http.ResponseWriter, req *http.Request) {
		httpSwagger.WrapHandler(w, req)
	})
}
