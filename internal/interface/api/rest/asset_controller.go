package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"asset-manager-api/internal/application/ports"
	assetDB "asset-manager-api/internal/infrastructure/db/postgres/asset"
	"asset-manager-api/internal/infrastructure/jwt"
	"asset-manager-api/internal/interface/api/rest/dto/asset"
	"asset-manager-api/internal/interface/api/rest/middleware"
	"asset-manager-api/internal/interface/api/rest/validator"
)

type AssetController struct {
	assetService ports.AssetService
	logger       *zap.Logger
}

// NewAssetController registers the asset routes. A nil jwtService
// leaves the write routes open; otherwise they require a Bearer token.
func NewAssetController(
	r *gin.Engine,
	assetService ports.AssetService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AssetController {
	ac := &AssetController{
		assetService: assetService,
		logger:       logger,
	}

	r.GET(RouteAssets, ac.GetAssetsHandler)
	r.GET(RouteAsset, ac.GetAssetHandler)
	if jwtService != nil {
		auth := middleware.AuthMiddleware(jwtService)
		r.POST(RouteAssets, auth, ac.CreateAssetHandler)
		r.PATCH(RouteAsset, auth, ac.UpdateAssetHandler)
		r.DELETE(RouteAsset, auth, ac.DeleteAssetHandler)
	} else {
		r.POST(RouteAssets, ac.CreateAssetHandler)
		r.PATCH(RouteAsset, ac.UpdateAssetHandler)
		r.DELETE(RouteAsset, ac.DeleteAssetHandler)
	}

	return ac
}

func (ac *AssetController) GetAssetsHandler(c *gin.Context) {
	filter := validator.ParseListFilter(c.Query("ownerId"), c.Query("category"))
	page := validator.ParsePage(c.Query("limit"), c.Query("offset"))

	assets, total, err := ac.assetService.FindAssets(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to get assets")
		ac.logger.Error("FindAssets() error", zap.Error(err))
		return
	}

	respondData(c, http.StatusOK, asset.ListResponse{
		Assets:     asset.ToResponseAssets(assets),
		Pagination: asset.NewPagination(total, page.Limit, page.Offset),
	})
}

func (ac *AssetController) GetAssetHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("asset_id"))
	if !ok {
		respondValidation(c, &validator.FieldError{
			Field:   "asset_id",
			Message: "asset_id must be a valid UUID",
		})
		return
	}

	a, err := ac.assetService.FindAssetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to get an asset")
		ac.logger.Error("FindAssetByID() error", zap.Error(err))
		return
	}

	if a == nil {
		respondError(c, http.StatusNotFound, "asset not found")
		return
	}

	respondData(c, http.StatusOK, asset.ToResponseAsset(*a))
}

func (ac *AssetController) CreateAssetHandler(c *gin.Context) {
	var req asset.CreateRequest
	// for a good boost of performance(x3 minimum) and to avoid reflection under the hood
	// better to use codegen for marshal/unmarshal for example:
	// https://github.com/mailru/easyjson
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// ownerId can come from the request or from an authenticated principal
	if req.OwnerID == "" {
		req.OwnerID = c.GetString(middleware.CtxOwnerID)
	}

	aDomain, ferr := validator.ValidateCreateAsset(req)
	if ferr != nil {
		respondValidation(c, ferr)
		return
	}

	a, err := ac.assetService.CreateAsset(c.Request.Context(), aDomain)
	if err != nil {
		if errors.Is(err, assetDB.ErrDuplicateID) || errors.Is(err, assetDB.ErrCategoryRejected) {
			respondError(c, http.StatusConflict, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create an asset")
		ac.logger.Error("CreateAsset() error", zap.Error(err))
		return
	}

	respondData(c, http.StatusCreated, asset.ToResponseAsset(*a))
}

func (ac *AssetController) UpdateAssetHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("asset_id"))
	if !ok {
		respondValidation(c, &validator.FieldError{
			Field:   "asset_id",
			Message: "asset_id must be a valid UUID",
		})
		return
	}

	var req asset.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	upd, ferr := validator.ValidateUpdateAsset(req)
	if ferr != nil {
		respondValidation(c, ferr)
		return
	}

	a, err := ac.assetService.UpdateAsset(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update an asset")
		ac.logger.Error("UpdateAsset() error", zap.Error(err))
		return
	}

	if a == nil {
		respondError(c, http.StatusNotFound, "asset not found")
		return
	}

	respondData(c, http.StatusOK, asset.ToResponseAsset(*a))
}

func (ac *AssetController) DeleteAssetHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("asset_id"))
	if !ok {
		respondValidation(c, &validator.FieldError{
			Field:   "asset_id",
			Message: "asset_id must be a valid UUID",
		})
		return
	}

	// deleting an absent id is still a success, delete is idempotent
	if _, err := ac.assetService.DeleteAsset(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete an asset")
		ac.logger.Error("DeleteAsset() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
