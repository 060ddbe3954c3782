package service

import (
	"context"
	"fmt"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/ws"
)

// PromotionService administers discounts and fees. Neither is applied to
// cart totals.
type PromotionService interface {
	ListDiscounts(ctx context.Context) ([]model.Discount, error)
	CreateDiscount(ctx context.Context, in DiscountInput) (*model.Discount, error)
	UpdateDiscount(ctx context.Context, id int64, in DiscountInput) (*model.Discount, error)
	DeleteDiscount(ctx context.Context, id int64) error
	ToggleDiscount(ctx context.Context, id int64) (*model.Discount, error)

	ListFees(ctx context.Context) ([]model.Fee, error)
	CreateFee(ctx context.Context, in FeeInput) (*model.Fee, error)
	UpdateFee(ctx context.Context, id int64, in FeeInput) (*model.Fee, error)
	DeleteFee(ctx context.Context, id int64) error
	ToggleFee(ctx context.Context, id int64) (*model.Fee, error)
}

type DiscountInput struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Percentage  int    `json:"percentage"`
	ValidUntil  string `json:"validUntil"`
}

type FeeInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Amount      int64         `json:"amount"`
	Type        model.FeeType `json:"type"`
}

func (in DiscountInput) toModel() model.Discount {
	return model.Discount{
		Code:        in.Code,
		Description: in.Description,
		Percentage:  in.Percentage,
		ValidUntil:  in.ValidUntil,
		Active:      true,
	}
}

func (in FeeInput) toModel() model.Fee {
	return model.Fee{
		Name:        in.Name,
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Active:      true,
	}
}

func validateFee(f *model.Fee) error {
	if err := validate(f); err != nil {
		return err
	}
	if f.Type == model.FeePercentage && f.Amount > 100 {
		return fmt.Errorf("%w: field 'Amount' failed on tag 'max'", ErrInvalidField)
	}
	return nil
}

type promotionService struct {
	discountRepo repository.DiscountRepository
	feeRepo      repository.FeeRepository
	notifier     Notifier
}

func NewPromotionService(dRepo repository.DiscountRepository, fRepo repository.FeeRepository, n Notifier) PromotionService {
	return &promotionService{
		discountRepo: dRepo,
		feeRepo:      fRepo,
		notifier:     orNop(n),
	}
}

func (s *promotionService) ListDiscounts(ctx context.Context) ([]model.Discount, error) {
	return s.discountRepo.FindAll(ctx)
}

func (s *promotionService) CreateDiscount(ctx context.Context, in DiscountInput) (*model.Discount, error) {
	d := in.toModel()
	if err := validate(&d); err != nil {
		return nil, err
	}
	if err := s.discountRepo.Create(ctx, &d); err != nil {
		return nil, err
	}
	s.notifier.Notify(ws.Success("discount.create", "Discount added", d.Code))
	return &d, nil
}

// UpdateDiscount replaces every editable field. Active is kept.
func (s *promotionService) UpdateDiscount(ctx context.Context, id int64, in DiscountInput) (*model.Discount, error) {
	next := in.toModel()
	if err := validate(&next); err != nil {
		return nil, err
	}
	updated, err := s.discountRepo.Update(ctx, id, func(d *model.Discount) {
		d.Code = next.Code
		d.Description = next.Description
		d.Percentage = next.Percentage
		d.ValidUntil = next.ValidUntil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ws.Success("discount.update", "Discount updated", updated.Code))
	return updated, nil
}

func (s *promotionService) DeleteDiscount(ctx context.Context, id int64) error {
	if err := s.discountRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(ws.Success("discount.delete", "Discount deleted", "The discount has been removed"))
	return nil
}

func (s *promotionService) ToggleDiscount(ctx context.Context, id int64) (*model.Discount, error) {
	updated, err := s.discountRepo.Update(ctx, id, func(d *model.Discount) {
		d.Active = !d.Active
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ws.Success("discount.toggle", "Discount updated", fmt.Sprintf("%s is now %s", updated.Code, activeLabel(updated.Active))))
	return updated, nil
}

func (s *promotionService) ListFees(ctx context.Context) ([]model.Fee, error) {
	return s.feeRepo.FindAll(ctx)
}

func (s *promotionService) CreateFee(ctx context.Context, in FeeInput) (*model.Fee, error) {
	f := in.toModel()
	if err := validateFee(&f); err != nil {
		return nil, err
	}
	if err := s.feeRepo.Create(ctx, &f); err != nil {
		return nil, err
	}
	s.notifier.Notify(ws.Success("fee.create", "Fee added", f.Name))
	return &f, nil
}

// UpdateFee replaces every editable field. Active is kept.
func (s *promotionService) UpdateFee(ctx context.Context, id int64, in FeeInput) (*model.Fee, error) {
	next := in.toModel()
	if err := validateFee(&next); err != nil {
		return nil, err
	}
	updated, err := s.feeRepo.Update(ctx, id, func(f *model.Fee) {
		f.Name = next.Name
		f.Description = next.Description
		f.Amount = next.Amount
		f.Type = next.Type
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ws.Success("fee.update", "Fee updated", updated.Name))
	return updated, nil
}

func (s *promotionService) DeleteFee(ctx context.Context, id int64) error {
	if err := s.feeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(ws.Success("fee.delete", "Fee deleted", "The fee has been removed"))
	return nil
}

func (s *promotionService) ToggleFee(ctx context.Context, id int64) (*model.Fee, error) {
	updated, err := s.feeRepo.Update(ctx, id, func(f *model.Fee) {
		f.Active = !f.Active
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ws.Success("fee.toggle", "Fee updated", fmt.Sprintf("%s is now %s", updated.Name, activeLabel(updated.Active))))
	return updated, nil
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
