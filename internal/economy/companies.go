package economy

import (
	"context"
	"strconv"

	"github.com/pajbot/bankbot-discord/internal/store"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Company struct {
	ID        string
	Name      string
	BasePrice int64
}

// Catalog is the fixed list of companies that can be bought
var Catalog = []Company{
	{ID: "food", Name: "🍔 شركة الأغذية", BasePrice: 10000},
	{ID: "cars", Name: "🚗 معرض السيارات", BasePrice: 20000},
	{ID: "tech", Name: "💻 شركة التقنية", BasePrice: 30000},
	{ID: "oil", Name: "🛢️ شركة النفط", BasePrice: 50000},
	{ID: "bank", Name: "🏦 البنك المركزي", BasePrice: 100000},
}

// Every purchase raises the price by 20%
const (
	priceIncreaseNumerator   = 6
	priceIncreaseDenominator = 5
)

func FindCompany(id string) (Company, bool) {
	for _, company := range Catalog {
		if company.ID == id {
			return company, true
		}
	}

	return Company{}, false
}

// CompanyRecord is a catalog entry overlaid with its persisted owner and price
type CompanyRecord struct {
	Company

	// Owner is the user ID of the current owner, empty if nobody owns the company
	Owner string
	Price int64
}

func (b *Bank) companyRecord(ctx context.Context, company Company) (CompanyRecord, error) {
	record := CompanyRecord{
		Company: company,
		Price:   company.BasePrice,
	}

	owner, _, err := b.store.Get(ctx, store.CompanyOwnerKey(company.ID))
	if err != nil {
		return record, errors.Wrapf(err, "failed to read owner of company %s", company.ID)
	}
	record.Owner = owner

	price, err := store.GetInt(ctx, b.store, store.CompanyPriceKey(company.ID))
	if err != nil {
		return record, errors.Wrapf(err, "failed to read price of company %s", company.ID)
	}
	if price > 0 {
		record.Price = price
	}

	return record, nil
}

func (b *Bank) Company(ctx context.Context, id string) (CompanyRecord, error) {
	company, ok := FindCompany(id)
	if !ok {
		return CompanyRecord{}, pkg.ValidationErrorf("❌ لا توجد شركة بالمعرف %s", id)
	}

	return b.companyRecord(ctx, company)
}

func (b *Bank) Companies(ctx context.Context) ([]CompanyRecord, error) {
	records := make([]CompanyRecord, 0, len(Catalog))

	for _, company := range Catalog {
		record, err := b.companyRecord(ctx, company)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// ValidatePurchase rejects buying a company the user already owns or cannot afford
func ValidatePurchase(record CompanyRecord, userID string, balance int64) error {
	if record.Owner == userID {
		return pkg.NewValidationError("❌ أنت تملك هذه الشركة بالفعل")
	}

	if balance < record.Price {
		return pkg.ValidationErrorf("❌ رصيدك غير كافٍ! سعر الشركة %d ذهب ورصيدك %d ذهب", record.Price, balance)
	}

	return nil
}

func nextPrice(price int64) int64 {
	return price * priceIncreaseNumerator / priceIncreaseDenominator
}

// BuyCompany transfers company id to the account's user.
// If the company already has an owner it is bought out: the previous owner receives the price.
// Returns the record as it was before the purchase.
func (b *Bank) BuyCompany(ctx context.Context, account pkg.Account, id string) (CompanyRecord, error) {
	if _, ok := FindCompany(id); !ok {
		return CompanyRecord{}, pkg.ValidationErrorf("❌ لا توجد شركة بالمعرف %s", id)
	}

	unlock := b.Lock("company_" + id)
	defer unlock()

	record, err := b.Company(ctx, id)
	if err != nil {
		return record, err
	}

	if err := ValidatePurchase(record, account.UserID(), account.Balance()); err != nil {
		return record, err
	}

	if _, err := account.Add(ctx, -record.Price); err != nil {
		return record, err
	}

	if err := b.store.Set(ctx, store.CompanyOwnerKey(id), account.UserID()); err != nil {
		if refundErr := account.Undo(ctx); refundErr != nil {
			logrus.WithContext(ctx).Errorf("failed to refund %d to %s after failed purchase of %s: %v", record.Price, account.UserID(), id, refundErr)
		}
		return record, errors.Wrapf(err, "failed to set owner of company %s", id)
	}

	if err := b.store.Set(ctx, store.CompanyPriceKey(id), strconv.FormatInt(nextPrice(record.Price), 10)); err != nil {
		logrus.WithContext(ctx).Warnf("failed to raise price of company %s: %v", id, err)
	}

	if record.Owner != "" {
		if _, err := b.Credit(ctx, record.Owner, record.Price); err != nil {
			logrus.WithContext(ctx).Errorf("failed to pay %d to previous owner %s of %s: %v", record.Price, record.Owner, id, err)
		}
	}

	return record, nil
}
