package models

// TruckType selects the per-km transport rate class for a SKU.
type TruckType string

const (
	TruckMini   TruckType = "MINI_TRUCK"
	TruckLCV    TruckType = "LCV"
	TruckMedium TruckType = "MEDIUM_TRUCK"
	TruckHeavy  TruckType = "HEAVY_TRUCK"
)

// SKU is a sellable catalog entry with pricing tiers and logistics
// metadata. Catalog lifecycle is owned externally; the pipeline reads
// SKUs only for matching and pricing.
type SKU struct {
	SKUID              string            `json:"skuId" yaml:"skuId"`
	ProductName        string            `json:"productName" yaml:"productName"`
	ProductCategory    string            `json:"productCategory" yaml:"productCategory"`
	ProductSubCategory string            `json:"productSubCategory" yaml:"productSubCategory"`
	OEMBrand           string            `json:"oemBrand" yaml:"oemBrand"`
	Specification      map[string]string `json:"specification" yaml:"specification"`
	AvailableQuantity  int               `json:"availableQuantity" yaml:"availableQuantity"`
	WarehouseLocation  string            `json:"warehouseLocation" yaml:"warehouseLocation"`
	WarehouseCode      string            `json:"warehouseCode" yaml:"warehouseCode"`
	WarehouseLat       float64           `json:"warehouseLat" yaml:"warehouseLat"`
	WarehouseLon       float64           `json:"warehouseLon" yaml:"warehouseLon"`
	TruckType          TruckType         `json:"truckType" yaml:"truckType"`
	LeadTime           int               `json:"leadTime" yaml:"leadTime"` // days
	CostPrice          float64           `json:"costPrice" yaml:"costPrice"`
	UnitSalesPrice     float64           `json:"unitSalesPrice" yaml:"unitSalesPrice"`
	BulkSalesPrice     float64           `json:"bulkSalesPrice" yaml:"bulkSalesPrice"`
	GSTRate            float64           `json:"gstRate" yaml:"gstRate"` // percent
	Brokerage          float64           `json:"brokerage,omitempty" yaml:"brokerage,omitempty"`
	MinMarginPercent   float64           `json:"minMarginPercent" yaml:"minMarginPercent"`
	IsActive           bool              `json:"isActive" yaml:"isActive"`
	IsCustomMade       bool              `json:"isCustomMadePossible" yaml:"isCustomMadePossible"`
	IsComplianceReady  bool              `json:"isComplianceReady" yaml:"isComplianceReady"`
}

// ScoredSKU is a catalog entry annotated with its specification-overlap
// score against one RFP line item.
type ScoredSKU struct {
	SKU
	MatchPercentage float64 `json:"matchPercentage"`
}
