package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	RouteAssets = RouteApiV1 + "/assets"
	RouteAsset  = RouteAssets + "/:asset_id"

	// admin
	RouteAdmin      = RouteApiV1 + "/admin"
	RouteSyncSchema = RouteAdmin + "/sync-schema"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
