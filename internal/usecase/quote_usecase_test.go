package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/pricing"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"
	mock_interfaces "github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validQuoteRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		Location:      entities.LocationReference{Address: "123 Pine Rd, Brooksville FL"},
		Service:       entities.ServiceMulching,
		Acreage:       2.5,
		Density:       entities.DensityModerate,
		Terrain:       entities.TerrainRolling,
		Accessibility: 6,
		Property:      entities.PropertyResidential,
		Urgency:       entities.UrgencyStandard,
	}
}

func TestQuoteUseCase_ComputeQuote(t *testing.T) {
	t.Run("validation runs before the location lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		locations := mock_interfaces.NewMockILocationVerifier(ctrl)
		uc := NewQuoteUseCase(pricing.DefaultConfig(), locations)

		req := validQuoteRequest()
		req.Acreage = 0

		_, err := uc.ComputeQuote(context.Background(), req)
		var vErr *pricing.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
	})

	t.Run("location failure surfaces unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		locations := mock_interfaces.NewMockILocationVerifier(ctrl)
		uc := NewQuoteUseCase(pricing.DefaultConfig(), locations)

		locations.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(entities.VerifiedLocation{}, interfaces.ErrLocationUnresolved)

		_, err := uc.ComputeQuote(context.Background(), validQuoteRequest())
		if !errors.Is(err, interfaces.ErrLocationUnresolved) {
			t.Fatalf("expected ErrLocationUnresolved, got %v", err)
		}
	})

	t.Run("success assigns an id and prices the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		locations := mock_interfaces.NewMockILocationVerifier(ctrl)
		uc := NewQuoteUseCase(pricing.DefaultConfig(), locations)

		req := validQuoteRequest()
		locations.EXPECT().Verify(gomock.Any(), req.Location).Return(entities.VerifiedLocation{OneWayDurationSeconds: 2400}, nil)

		quote, err := uc.ComputeQuote(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.ID == "" {
			t.Fatalf("expected a generated quote id")
		}
		if quote.FinalPrice != 7575 {
			t.Fatalf("expected final 7575, got %v", quote.FinalPrice)
		}
	})
}
