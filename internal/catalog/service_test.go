package catalog_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pos-billing/internal/catalog"
	"github.com/noah-isme/pos-billing/internal/common"
)

func TestRegisterItemKeepsRegistrationOrder(t *testing.T) {
	svc := catalog.NewService()
	require.NoError(t, svc.RegisterItem("PHONE", decimal.NewFromInt(70000), "Electronics", "Smartphone"))
	require.NoError(t, svc.RegisterItem("LAPTOP", decimal.NewFromInt(150000), "Electronics", "Laptop"))
	require.NoError(t, svc.RegisterItem("TABLET", decimal.NewFromInt(35000), "Electronics", "Tablet"))

	items := svc.Items()
	require.Len(t, items, 3)
	require.Equal(t, "PHONE", items[0].Name)
	require.Equal(t, "LAPTOP", items[1].Name)
	require.Equal(t, "TABLET", items[2].Name)
}

func TestRegisterItemOverwritesInPlace(t *testing.T) {
	svc := catalog.NewService()
	require.NoError(t, svc.RegisterItem("PHONE", decimal.NewFromInt(70000), "Electronics", "old"))
	require.NoError(t, svc.RegisterItem("LAPTOP", decimal.NewFromInt(150000), "Electronics", ""))
	require.NoError(t, svc.RegisterItem("PHONE", decimal.NewFromInt(65000), "Electronics", "new"))

	items := svc.Items()
	require.Len(t, items, 2)
	require.Equal(t, "PHONE", items[0].Name)
	require.True(t, items[0].Price.Equal(decimal.NewFromInt(65000)))
	require.Equal(t, "new", items[0].Description)
}

func TestRegisterItemRejectsNegativePrice(t *testing.T) {
	svc := catalog.NewService()
	err := svc.RegisterItem("PHONE", decimal.NewFromInt(-1), "Electronics", "")
	require.Error(t, err)
	require.Equal(t, common.CodeValidation, common.CodeOf(err))
	require.Empty(t, svc.Items())
}

func TestRegisterPromotionRequiresKnownItem(t *testing.T) {
	svc := catalog.NewService()
	err := svc.RegisterPromotion("GHOST", catalog.PromotionPercentage, decimal.NewFromInt(10))
	require.Error(t, err)
	require.True(t, errors.Is(err, catalog.ErrItemNotFound))
	require.Equal(t, common.CodeNotFound, common.CodeOf(err))
}

func TestRegisterPromotionReplacesEarlier(t *testing.T) {
	svc := catalog.NewService()
	require.NoError(t, svc.RegisterItem("LAPTOP", decimal.NewFromInt(150000), "Electronics", ""))
	require.NoError(t, svc.RegisterPromotion("LAPTOP", catalog.PromotionPercentage, decimal.NewFromInt(10)))
	require.NoError(t, svc.RegisterPromotion("LAPTOP", catalog.PromotionFixed, decimal.NewFromInt(5000)))

	promo, ok := svc.PromotionFor("LAPTOP")
	require.True(t, ok)
	require.Equal(t, catalog.PromotionFixed, promo.Kind)
	require.True(t, promo.Value.Equal(decimal.NewFromInt(5000)))
}

func TestRegisterPromotionRejectsUnknownKind(t *testing.T) {
	svc := catalog.NewService()
	require.NoError(t, svc.RegisterItem("LAPTOP", decimal.NewFromInt(150000), "Electronics", ""))
	err := svc.RegisterPromotion("LAPTOP", catalog.PromotionKind("bogo"), decimal.NewFromInt(1))
	require.Equal(t, common.CodeValidation, common.CodeOf(err))
}

func TestLookupUnknownItem(t *testing.T) {
	svc := catalog.NewService()
	_, err := svc.Lookup("GHOST")
	require.True(t, errors.Is(err, catalog.ErrItemNotFound))
}

func TestCategoryIndex(t *testing.T) {
	svc := catalog.NewService()
	require.NoError(t, svc.RegisterItem("PHONE", decimal.NewFromInt(70000), "Electronics", ""))
	require.NoError(t, svc.RegisterItem("SMART WATCH", decimal.NewFromInt(5000), "Gadgets", ""))
	require.NoError(t, svc.RegisterItem("LAPTOP", decimal.NewFromInt(150000), "Electronics", ""))
	// re-registration must not duplicate the category member
	require.NoError(t, svc.RegisterItem("PHONE", decimal.NewFromInt(71000), "Electronics", ""))

	require.Equal(t, []string{"Electronics", "Gadgets"}, svc.Categories())
	require.Equal(t, []string{"PHONE", "LAPTOP"}, svc.ItemsInCategory("Electronics"))
}

func TestDefaultCategory(t *testing.T) {
	svc := catalog.NewService()
	require.NoError(t, svc.RegisterItem("CABLE", decimal.NewFromInt(200), "", ""))
	item, err := svc.Lookup("CABLE")
	require.NoError(t, err)
	require.Equal(t, "General", item.Category)
}
