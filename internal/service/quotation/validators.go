package quotation

import (
	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/access"
)

var itemTolerance = decimal.NewFromFloat(0.01)

func itemsMatchTotal(items []entities.QuotationItem, total decimal.Decimal) bool {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum.Sub(total).Abs().LessThanOrEqual(itemTolerance)
}

func canSee(q *entities.Quotation, actor entities.Principal) bool {
	switch actor.Role {
	case entities.RoleCustomer:
		return actor.ID == q.CustomerID
	case entities.RoleVendor:
		return actor.ID == q.VendorID
	}
	return access.Can(actor.Role, access.ActionViewAnyQuotation)
}
