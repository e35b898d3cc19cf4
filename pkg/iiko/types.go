package iiko

// AccessTokenRequest is the body sent to the authentication endpoint.
type AccessTokenRequest struct {
	APILogin string `json:"apiLogin" yaml:"apiLogin"`
}

// AccessTokenResponse is the result of a successful authentication. Some API
// variants echo a correlation id alongside the token.
type AccessTokenResponse struct {
	CorrelationID string `json:"correlationId,omitempty" yaml:"correlationId,omitempty"`
	Token         string `json:"token"                   yaml:"token"`
}

// OrganizationsRequest filters the organization listing. All fields are
// optional; the zero value marshals to an empty JSON object, which the server
// treats as "all enabled organizations, ids and names only".
type OrganizationsRequest struct {
	OrganizationIDs      []string `json:"organizationIds,omitempty"      yaml:"organizationIds,omitempty"`
	ReturnAdditionalInfo bool     `json:"returnAdditionalInfo,omitempty" yaml:"returnAdditionalInfo,omitempty"`
	IncludeDisabled      bool     `json:"includeDisabled,omitempty"      yaml:"includeDisabled,omitempty"`
}

// OrganizationsResponse is the organization listing.
type OrganizationsResponse struct {
	CorrelationID string         `json:"correlationId" yaml:"correlationId"`
	Organizations []Organization `json:"organizations" yaml:"organizations"`
}

// Organization describes a single venue. Fields beyond ID and Name are only
// populated when the request set ReturnAdditionalInfo.
type Organization struct {
	ID                string   `json:"id"                          yaml:"id"`
	Name              string   `json:"name"                        yaml:"name"`
	ResponseType      string   `json:"responseType,omitempty"      yaml:"responseType,omitempty"`
	Country           *string  `json:"country,omitempty"           yaml:"country,omitempty"`
	RestaurantAddress *string  `json:"restaurantAddress,omitempty" yaml:"restaurantAddress,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"          yaml:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"         yaml:"longitude,omitempty"`
	TimeZone          *string  `json:"timeZone,omitempty"          yaml:"timeZone,omitempty"`
	CurrencyISOName   *string  `json:"currencyIsoName,omitempty"   yaml:"currencyIsoName,omitempty"`
	Version           *string  `json:"version,omitempty"           yaml:"version,omitempty"`
	IsCloud           *bool    `json:"isCloud,omitempty"           yaml:"isCloud,omitempty"`
}

// MenusRequest selects the organizations whose external menus are listed.
type MenusRequest struct {
	OrganizationIDs []string `json:"organizationIds" yaml:"organizationIds"`
}

// MenusResponse lists the external menus and price categories available to
// the requested organizations.
type MenusResponse struct {
	CorrelationID   string          `json:"correlationId"   yaml:"correlationId"`
	ExternalMenus   []ExternalMenu  `json:"externalMenus"   yaml:"externalMenus"`
	PriceCategories []PriceCategory `json:"priceCategories" yaml:"priceCategories"`
}

// ExternalMenu identifies a configured external menu.
type ExternalMenu struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// PriceCategory identifies a configured price category.
type PriceCategory struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// MenuByIDRequest fetches a full external menu document.
// PriceCategoryID, Version, and Language are optional refinements.
type MenuByIDRequest struct {
	ExternalMenuID  string   `json:"externalMenuId"            yaml:"externalMenuId"`
	OrganizationIDs []string `json:"organizationIds"           yaml:"organizationIds"`
	PriceCategoryID string   `json:"priceCategoryId,omitempty" yaml:"priceCategoryId,omitempty"`
	Version         int      `json:"version,omitempty"         yaml:"version,omitempty"`
	Language        string   `json:"language,omitempty"        yaml:"language,omitempty"`
}

// Menu is the full external menu document: categories nest items, items nest
// sizes, sizes nest modifier groups, prices, and nutrition.
type Menu struct {
	ID                int64              `json:"id"                yaml:"id"`
	Name              string             `json:"name"              yaml:"name"`
	Description       string             `json:"description"       yaml:"description"`
	Revision          int64              `json:"revision"          yaml:"revision"`
	FormatVersion     int                `json:"formatVersion"     yaml:"formatVersion"`
	Intervals         []MenuInterval     `json:"intervals"         yaml:"intervals"`
	ProductCategories []ProductCategory  `json:"productCategories" yaml:"productCategories"`
	CustomerTagGroups []CustomerTagGroup `json:"customerTagGroups" yaml:"customerTagGroups"`
	ItemCategories    []ItemCategory     `json:"itemCategories"    yaml:"itemCategories"`
	ComboCategories   []ComboCategory    `json:"comboCategories"   yaml:"comboCategories"`
}

// MenuInterval is an availability window for the menu.
type MenuInterval struct {
	StartTime  string `json:"startTime"            yaml:"startTime"`
	EndTime    string `json:"endTime"              yaml:"endTime"`
	DaysOfWeek []int  `json:"daysOfWeek,omitempty" yaml:"daysOfWeek,omitempty"`
}

// ProductCategory maps menu items back to back-office product categories.
type ProductCategory struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CustomerTagGroup groups the customer tags a menu can be filtered by.
type CustomerTagGroup struct {
	ID           string        `json:"id"                     yaml:"id"`
	Name         string        `json:"name"                   yaml:"name"`
	CustomerTags []CustomerTag `json:"customerTags,omitempty" yaml:"customerTags,omitempty"`
}

// CustomerTag is a single customer tag within a group.
type CustomerTag struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ItemCategory is a menu section containing sellable items.
type ItemCategory struct {
	ID             string  `json:"id"                       yaml:"id"`
	Name           string  `json:"name"                     yaml:"name"`
	Description    string  `json:"description"              yaml:"description"`
	ButtonImageURL *string `json:"buttonImageUrl,omitempty" yaml:"buttonImageUrl,omitempty"`
	HeaderImageURL *string `json:"headerImageUrl,omitempty" yaml:"headerImageUrl,omitempty"`
	IIKOGroupID    *string `json:"iikoGroupId,omitempty"    yaml:"iikoGroupId,omitempty"`
	Items          []Item  `json:"items"                    yaml:"items"`
}

// Item is a sellable product with one or more size variants.
type Item struct {
	ItemID           string     `json:"itemId"                     yaml:"itemId"`
	SKU              string     `json:"sku"                        yaml:"sku"`
	Name             string     `json:"name"                       yaml:"name"`
	Description      string     `json:"description"                yaml:"description"`
	OrderItemType    string     `json:"orderItemType,omitempty"    yaml:"orderItemType,omitempty"`
	ModifierSchemaID *string    `json:"modifierSchemaId,omitempty" yaml:"modifierSchemaId,omitempty"`
	CanBeDivided     bool       `json:"canBeDivided,omitempty"     yaml:"canBeDivided,omitempty"`
	Allergens        []Allergen `json:"allergens,omitempty"        yaml:"allergens,omitempty"`
	Tags             []string   `json:"tags,omitempty"             yaml:"tags,omitempty"`
	ItemSizes        []ItemSize `json:"itemSizes"                  yaml:"itemSizes"`
}

// Allergen identifies an allergen group an item belongs to.
type Allergen struct {
	ID   string `json:"id"             yaml:"id"`
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
	Name string `json:"name"           yaml:"name"`
}

// ItemSize is one size variant of an item. SizeCode and SizeID are null on
// the wire for items with a single unnamed size.
type ItemSize struct {
	SKU                      string              `json:"sku"                                yaml:"sku"`
	SizeCode                 *string             `json:"sizeCode"                           yaml:"sizeCode"`
	SizeName                 *string             `json:"sizeName"                           yaml:"sizeName"`
	SizeID                   *string             `json:"sizeId"                             yaml:"sizeId"`
	IsDefault                bool                `json:"isDefault"                          yaml:"isDefault"`
	PortionWeightGrams       float64             `json:"portionWeightGrams"                 yaml:"portionWeightGrams"`
	ButtonImageURL           *string             `json:"buttonImageUrl,omitempty"           yaml:"buttonImageUrl,omitempty"`
	Prices                   []Price             `json:"prices"                             yaml:"prices"`
	ItemModifierGroups       []ItemModifierGroup `json:"itemModifierGroups"                 yaml:"itemModifierGroups"`
	NutritionPerHundredGrams *Nutrition          `json:"nutritionPerHundredGrams,omitempty" yaml:"nutritionPerHundredGrams,omitempty"`
	Nutritions               []Nutrition         `json:"nutritions,omitempty"               yaml:"nutritions,omitempty"`
}

// Price is the price of a size in one organization.
type Price struct {
	OrganizationID string  `json:"organizationId" yaml:"organizationId"`
	Price          float64 `json:"price"          yaml:"price"`
}

// Nutrition holds per-portion or per-hundred-grams nutrition values. All
// fields are nullable; the back office does not always fill them in.
type Nutrition struct {
	Fats          *float64 `json:"fats"                    yaml:"fats"`
	Proteins      *float64 `json:"proteins"                yaml:"proteins"`
	Carbs         *float64 `json:"carbs"                   yaml:"carbs"`
	Energy        *float64 `json:"energy"                  yaml:"energy"`
	Organizations []string `json:"organizations,omitempty" yaml:"organizations,omitempty"`
}

// ItemModifierGroup is a group of modifiers attachable to a size.
type ItemModifierGroup struct {
	ItemGroupID  *string               `json:"itemGroupId"            yaml:"itemGroupId"`
	Name         string                `json:"name"                   yaml:"name"`
	Description  string                `json:"description,omitempty"  yaml:"description,omitempty"`
	Restrictions *ModifierRestrictions `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
	Items        []ModifierItem        `json:"items"                  yaml:"items"`
}

// ModifierRestrictions bounds how many modifiers from a group an order line
// may carry.
type ModifierRestrictions struct {
	MinQuantity  int  `json:"minQuantity"            yaml:"minQuantity"`
	MaxQuantity  int  `json:"maxQuantity"            yaml:"maxQuantity"`
	FreeQuantity int  `json:"freeQuantity,omitempty" yaml:"freeQuantity,omitempty"`
	ByDefault    *int `json:"byDefault,omitempty"    yaml:"byDefault,omitempty"`
}

// ModifierItem is a single modifier inside a modifier group.
type ModifierItem struct {
	ItemID             string                `json:"itemId"                 yaml:"itemId"`
	SKU                string                `json:"sku"                    yaml:"sku"`
	Name               string                `json:"name"                   yaml:"name"`
	Description        string                `json:"description,omitempty"  yaml:"description,omitempty"`
	PortionWeightGrams float64               `json:"portionWeightGrams"     yaml:"portionWeightGrams"`
	Prices             []Price               `json:"prices"                 yaml:"prices"`
	Restrictions       *ModifierRestrictions `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
}

// ComboCategory is a menu section containing combo offers.
type ComboCategory struct {
	ID     string  `json:"id"               yaml:"id"`
	Name   string  `json:"name"             yaml:"name"`
	Combos []Combo `json:"combos,omitempty" yaml:"combos,omitempty"`
}

// Combo is a fixed-price bundle of menu items.
type Combo struct {
	ID          string  `json:"id"                    yaml:"id"`
	Name        string  `json:"name"                  yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Price       float64 `json:"price"                 yaml:"price"`
}
