package repository

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/pricing"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
)

//go:generate mockgen -source=rate.go -destination=../../../tests/mock/repository/rate_queries.go -package=repositorymock

type RateQueries interface {
	ListShippingRates(ctx context.Context, db sqlc.DBTX, region string) ([]sqlc.ShippingRates, error)
	GetTaxRate(ctx context.Context, db sqlc.DBTX, region string) (sqlc.TaxRates, error)
}

type RateRepository struct {
	queries RateQueries
	db      sqlc.DBTX
}

func NewRateRepository(queries RateQueries, db sqlc.DBTX) *RateRepository {
	return &RateRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RateRepository) ShippingRates(ctx context.Context, tx sqlc.DBTX, region string) ([]pricing.ShippingRate, error) {
	rows, err := r.queries.ListShippingRates(ctx, tx, region)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shipping rates", err)
	}

	rates := make([]pricing.ShippingRate, len(rows))
	for i, row := range rows {
		var maxWeight *int
		if row.MaxWeightGrams.Valid {
			w := int(row.MaxWeightGrams.Int32)
			maxWeight = &w
		}
		rates[i] = pricing.ShippingRate{
			Region:         row.Region,
			MinWeightGrams: int(row.MinWeightGrams),
			MaxWeightGrams: maxWeight,
			PriceCents:     row.PriceCents,
		}
	}
	return rates, nil
}

func (r *RateRepository) TaxRate(ctx context.Context, tx sqlc.DBTX, region string) (pricing.TaxRate, error) {
	row, err := r.queries.GetTaxRate(ctx, tx, region)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return pricing.TaxRate{}, infra.WrapRepoErr("tax rate not found", err, infra.KindNotFound)
		}
		return pricing.TaxRate{}, infra.WrapRepoErr("failed to get tax rate", err)
	}
	return pricing.TaxRate{Region: row.Region, BasisPoints: int64(row.BasisPoints)}, nil
}
