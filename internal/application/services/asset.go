package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"asset-manager-api/internal/application/ports"
	domain "asset-manager-api/internal/domain/asset"
	"asset-manager-api/internal/infrastructure/mq"
	"asset-manager-api/internal/interface/api/rest/dto/asset"
)

type AssetService struct {
	assetRepository domain.Repository
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
}

func NewAssetService(
	assetRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.AssetService {
	return &AssetService{
		assetRepository: assetRepository,
		mq:              mq,
		mCounter:        mCounter,
	}
}

func (as *AssetService) FindAssetByID(ctx context.Context, id domain.ID) (*domain.Asset, error) {
	a, err := as.assetRepository.FetchAssetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (as *AssetService) FindAssets(ctx context.Context, filter domain.ListFilter, page domain.Page) (domain.Assets, int, error) {
	assets, total, err := as.assetRepository.FetchAssets(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

func (as *AssetService) CreateAsset(ctx context.Context, a domain.Asset) (*domain.Asset, error) {
	a.ID = uuid.New()

	aRet, err := as.assetRepository.CreateAsset(ctx, a)
	if err != nil {
		return nil, err
	}

	if aRet != nil {
		as.publishEvent(http.MethodPost, aRet.ID, aRet)
		as.mCounter.WithLabelValues("asset_created_total").Inc()
	}

	return aRet, nil
}

func (as *AssetService) UpdateAsset(ctx context.Context, id domain.ID, upd domain.Update) (*domain.Asset, error) {
	aRet, err := as.assetRepository.UpdateAsset(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	if aRet != nil {
		as.publishEvent(http.MethodPatch, aRet.ID, aRet)
		as.mCounter.WithLabelValues("asset_updated_total").Inc()
	}

	return aRet, nil
}

func (as *AssetService) DeleteAsset(ctx context.Context, id domain.ID) (bool, error) {
	deleted, err := as.assetRepository.DeleteAsset(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		as.publishEvent(http.MethodDelete, id, nil)
		as.mCounter.WithLabelValues("asset_deleted_total").Inc()
	}

	return deleted, nil
}

// publishEvent hands the event to the publisher worker without ever
// blocking the request path; a full buffer drops the event and counts it.
func (as *AssetService) publishEvent(method string, id domain.ID, a *domain.Asset) {
	e := mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		AssetID: id.String(),
	}
	if a != nil {
		p := asset.ToResponseAsset(*a)
		e.Payload = &p
	}

	select {
	case as.mq.GetInputChan() <- e:
	default:
		as.mCounter.WithLabelValues("asset_events_dropped_total").Inc()
	}
}
