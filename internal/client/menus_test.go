package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/commonwealth-codeunion/iiko-api/internal/client"
	"github.com/commonwealth-codeunion/iiko-api/pkg/iiko"
)

func newAuthenticatedClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/api/1/access_token" {
			_ = json.NewEncoder(writer).Encode(iiko.AccessTokenResponse{Token: "token-abc"})

			return
		}

		handler(writer, request)
	}))

	c, err := New(&iiko.Config{APILogin: "test-key", APIEndpoint: server.URL})
	require.NoError(t, err)

	_, err = c.Authenticate(context.Background())
	require.NoError(t, err)

	return c, server
}

func TestMenusClient_List(t *testing.T) {
	t.Parallel()

	c, server := newAuthenticatedClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/2/menu", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var req iiko.MenusRequest

		_ = json.NewDecoder(request.Body).Decode(&req)
		assert.Equal(t, []string{"org-1", "org-2"}, req.OrganizationIDs)

		_ = json.NewEncoder(writer).Encode(iiko.MenusResponse{
			CorrelationID: "corr-7",
			ExternalMenus: []iiko.ExternalMenu{
				{ID: "67964", Name: "Доставка"},
				{ID: "67965", Name: "Зал"},
			},
			PriceCategories: []iiko.PriceCategory{
				{ID: "pc-1", Name: "Базовая"},
			},
		})
	})
	defer server.Close()

	result, err := c.Menus().List(context.Background(), &iiko.MenusRequest{
		OrganizationIDs: []string{"org-1", "org-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "corr-7", result.CorrelationID)
	require.Len(t, result.ExternalMenus, 2)
	assert.Equal(t, "67964", result.ExternalMenus[0].ID)
	assert.Equal(t, "Доставка", result.ExternalMenus[0].Name)
	require.Len(t, result.PriceCategories, 1)
	assert.Equal(t, "Базовая", result.PriceCategories[0].Name)
}

// menuByIDFixture is a trimmed real-world menu document: one category with
// one item in two sizes, null sizeCode on the unnamed size, and non-ASCII
// names throughout.
const menuByIDFixture = `{
	"id": 67964,
	"name": "Доставка",
	"description": "Меню для доставки",
	"revision": 1712041234,
	"formatVersion": 2,
	"intervals": [],
	"productCategories": [{"id": "pcat-1", "name": "Пицца"}],
	"customerTagGroups": [],
	"comboCategories": [],
	"itemCategories": [
		{
			"id": "cat-1",
			"name": "Пицца",
			"description": "",
			"buttonImageUrl": null,
			"items": [
				{
					"itemId": "item-1",
					"sku": "00001",
					"name": "Пепперони",
					"description": "Пикантная пепперони, сыр моцарелла",
					"orderItemType": "Product",
					"itemSizes": [
						{
							"sku": "00001-S",
							"sizeCode": null,
							"sizeName": null,
							"sizeId": null,
							"isDefault": true,
							"portionWeightGrams": 470,
							"prices": [
								{"organizationId": "org-1", "price": 599.5}
							],
							"itemModifierGroups": [
								{
									"itemGroupId": "mg-1",
									"name": "Добавки",
									"restrictions": {"minQuantity": 0, "maxQuantity": 3},
									"items": [
										{
											"itemId": "mod-1",
											"sku": "M-001",
											"name": "Сыр",
											"portionWeightGrams": 30,
											"prices": [{"organizationId": "org-1", "price": 79}]
										}
									]
								}
							],
							"nutritionPerHundredGrams": {
								"fats": 11.5,
								"proteins": 10.2,
								"carbs": 26.8,
								"energy": 252
							}
						},
						{
							"sku": "00001-L",
							"sizeCode": "L",
							"sizeName": "Большая",
							"sizeId": "size-l",
							"isDefault": false,
							"portionWeightGrams": 780,
							"prices": [
								{"organizationId": "org-1", "price": 899}
							],
							"itemModifierGroups": []
						}
					]
				}
			]
		}
	]
}`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestMenusClient_GetByID(t *testing.T) {
	t.Parallel()

	c, server := newAuthenticatedClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/2/menu/by_id", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var req iiko.MenuByIDRequest

		_ = json.NewDecoder(request.Body).Decode(&req)
		assert.Equal(t, "67964", req.ExternalMenuID)
		assert.Equal(t, []string{"org-1"}, req.OrganizationIDs)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(menuByIDFixture))
	})
	defer server.Close()

	menu, err := c.Menus().GetByID(context.Background(), &iiko.MenuByIDRequest{
		ExternalMenuID:  "67964",
		OrganizationIDs: []string{"org-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(67964), menu.ID)
	assert.Equal(t, "Доставка", menu.Name)
	assert.Equal(t, "Меню для доставки", menu.Description)
	assert.Equal(t, int64(1712041234), menu.Revision)
	assert.Equal(t, 2, menu.FormatVersion)
	require.Len(t, menu.ProductCategories, 1)
	assert.Equal(t, "Пицца", menu.ProductCategories[0].Name)

	require.Len(t, menu.ItemCategories, 1)
	category := menu.ItemCategories[0]
	assert.Equal(t, "Пицца", category.Name)
	assert.Nil(t, category.ButtonImageURL)

	require.Len(t, category.Items, 1)
	item := category.Items[0]
	assert.Equal(t, "Пепперони", item.Name)
	assert.Equal(t, "00001", item.SKU)

	require.Len(t, item.ItemSizes, 2)

	defaultSize := item.ItemSizes[0]
	assert.Nil(t, defaultSize.SizeCode)
	assert.Nil(t, defaultSize.SizeName)
	assert.True(t, defaultSize.IsDefault)
	assert.InEpsilon(t, 470.0, defaultSize.PortionWeightGrams, 0.001)
	require.Len(t, defaultSize.Prices, 1)
	assert.Equal(t, "org-1", defaultSize.Prices[0].OrganizationID)
	assert.InEpsilon(t, 599.5, defaultSize.Prices[0].Price, 0.001)

	require.Len(t, defaultSize.ItemModifierGroups, 1)
	group := defaultSize.ItemModifierGroups[0]
	assert.Equal(t, "Добавки", group.Name)
	require.NotNil(t, group.Restrictions)
	assert.Equal(t, 3, group.Restrictions.MaxQuantity)
	require.Len(t, group.Items, 1)
	assert.Equal(t, "Сыр", group.Items[0].Name)

	require.NotNil(t, defaultSize.NutritionPerHundredGrams)
	require.NotNil(t, defaultSize.NutritionPerHundredGrams.Energy)
	assert.InEpsilon(t, 252.0, *defaultSize.NutritionPerHundredGrams.Energy, 0.001)

	largeSize := item.ItemSizes[1]
	require.NotNil(t, largeSize.SizeCode)
	assert.Equal(t, "L", *largeSize.SizeCode)
	require.NotNil(t, largeSize.SizeName)
	assert.Equal(t, "Большая", *largeSize.SizeName)
	assert.False(t, largeSize.IsDefault)
	assert.Nil(t, largeSize.NutritionPerHundredGrams)
}

func TestMenusClient_GetByIDOptionalFields(t *testing.T) {
	t.Parallel()

	c, server := newAuthenticatedClient(t, func(writer http.ResponseWriter, request *http.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)

		// Unset optional fields stay off the wire
		assert.Contains(t, body, "externalMenuId")
		assert.Contains(t, body, "organizationIds")
		assert.NotContains(t, body, "priceCategoryId")
		assert.NotContains(t, body, "version")
		assert.NotContains(t, body, "language")

		_, _ = writer.Write([]byte(`{"id": 1, "name": "Меню"}`))
	})
	defer server.Close()

	_, err := c.Menus().GetByID(context.Background(), &iiko.MenuByIDRequest{
		ExternalMenuID:  "67964",
		OrganizationIDs: []string{"org-1"},
	})
	require.NoError(t, err)
}
