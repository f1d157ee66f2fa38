package catalog

import "github.com/bidforge/bidforge-go/internal/models"

// Seed returns the built-in demo inventory used when no catalog file is
// supplied. Warehouse coordinates are real city locations so transport
// costing produces sensible distances.
func Seed() []models.SKU {
	return []models.SKU{
		{
			SKUID:              "SKU-MS-1001",
			ProductName:        "MS ERW Black Pipe 50mm",
			ProductCategory:    "Pipes & Tubes",
			ProductSubCategory: "Mild Steel",
			OEMBrand:           "Tata Structura",
			Specification: map[string]string{
				"Material": "Mild Steel ERW",
				"Diameter": "50mm NB Medium",
				"Length":   "6m single piece",
				"Coating":  "Black varnish",
				"Standard": "IS 1239, IS 4923",
			},
			AvailableQuantity: 1200,
			WarehouseLocation: "Rourkela, OD",
			WarehouseCode:     "WH-RKL-01",
			WarehouseLat:      22.2604,
			WarehouseLon:      84.8536,
			TruckType:         models.TruckMedium,
			LeadTime:          12,
			CostPrice:         1450,
			UnitSalesPrice:    1890,
			BulkSalesPrice:    1740,
			GSTRate:           18,
			Brokerage:         1.5,
			MinMarginPercent:  8,
			IsActive:          true,
			IsComplianceReady: true,
		},
		{
			SKUID:              "SKU-MS-1002",
			ProductName:        "MS ERW Black Pipe 80mm",
			ProductCategory:    "Pipes & Tubes",
			ProductSubCategory: "Mild Steel",
			OEMBrand:           "APL Apollo",
			Specification: map[string]string{
				"Material": "Mild Steel ERW",
				"Diameter": "80mm NB Heavy",
				"Length":   "6m single piece",
				"Standard": "IS 1239 Part-1",
			},
			AvailableQuantity: 800,
			WarehouseLocation: "Kolkata, WB",
			WarehouseCode:     "WH-KOL-02",
			WarehouseLat:      22.5726,
			WarehouseLon:      88.3639,
			TruckType:         models.TruckHeavy,
			LeadTime:          18,
			CostPrice:         2350,
			UnitSalesPrice:    2990,
			BulkSalesPrice:    2780,
			GSTRate:           18,
			MinMarginPercent:  8,
			IsActive:          true,
			IsComplianceReady: true,
		},
		{
			SKUID:              "SKU-CB-2001",
			ProductName:        "Armoured Power Cable 4-Core 16sqmm",
			ProductCategory:    "Cables & Wires",
			ProductSubCategory: "LT Power Cable",
			OEMBrand:           "Polycab",
			Specification: map[string]string{
				"Conductor":  "Aluminium 4-Core 16sqmm",
				"Insulation": "XLPE armoured",
				"Voltage":    "1.1kV grade",
				"Standard":   "IS 7098, IS 8130",
			},
			AvailableQuantity: 5000,
			WarehouseLocation: "Ahmedabad, GJ",
			WarehouseCode:     "WH-AMD-01",
			WarehouseLat:      23.0258,
			WarehouseLon:      72.5873,
			TruckType:         models.TruckLCV,
			LeadTime:          10,
			CostPrice:         185,
			UnitSalesPrice:    240,
			BulkSalesPrice:    218,
			GSTRate:           18,
			Brokerage:         2,
			MinMarginPercent:  10,
			IsActive:          true,
			IsComplianceReady: true,
		},
		{
			SKUID:              "SKU-SF-3001",
			ProductName:        "Safety Shoes Leather DIP",
			ProductCategory:    "Safety Equipment",
			ProductSubCategory: "Footwear",
			OEMBrand:           "Bata Industrials",
			Specification: map[string]string{
				"Upper":    "Leather chrome tanned",
				"Sole":     "PU double density",
				"Toe":      "Steel toe 200J",
				"Standard": "IS 15298 Part-2",
			},
			AvailableQuantity: 2400,
			WarehouseLocation: "Mumbai, MH",
			WarehouseCode:     "WH-BOM-03",
			WarehouseLat:      18.9388,
			WarehouseLon:      72.8354,
			TruckType:         models.TruckMini,
			LeadTime:          7,
			CostPrice:         640,
			UnitSalesPrice:    850,
			BulkSalesPrice:    790,
			GSTRate:           12,
			MinMarginPercent:  12,
			IsActive:          true,
			IsComplianceReady: true,
		},
		{
			SKUID:              "SKU-VL-4001",
			ProductName:        "Gate Valve CI 100mm",
			ProductCategory:    "Valves & Fittings",
			ProductSubCategory: "Cast Iron",
			OEMBrand:           "Kirloskar",
			Specification: map[string]string{
				"Body":     "Cast Iron flanged",
				"Size":     "100mm PN16",
				"Trim":     "Stainless steel",
				"Standard": "IS 14846",
			},
			AvailableQuantity: 300,
			WarehouseLocation: "Pune, MH",
			WarehouseCode:     "WH-PNQ-01",
			WarehouseLat:      18.5204,
			WarehouseLon:      73.8567,
			TruckType:         models.TruckLCV,
			LeadTime:          21,
			CostPrice:         5400,
			UnitSalesPrice:    6900,
			BulkSalesPrice:    6450,
			GSTRate:           18,
			Brokerage:         1,
			MinMarginPercent:  9,
			IsActive:          true,
			IsComplianceReady: true,
		},
		{
			// Discontinued line kept for reporting continuity; never
			// eligible for matching.
			SKUID:              "SKU-MS-0900",
			ProductName:        "MS ERW Black Pipe 25mm (legacy)",
			ProductCategory:    "Pipes & Tubes",
			ProductSubCategory: "Mild Steel",
			OEMBrand:           "Surya Roshni",
			Specification: map[string]string{
				"Material": "Mild Steel ERW",
				"Diameter": "25mm NB Light",
				"Standard": "IS 1239",
			},
			AvailableQuantity: 60,
			WarehouseLocation: "Rourkela, OD",
			WarehouseCode:     "WH-RKL-01",
			WarehouseLat:      22.2604,
			WarehouseLon:      84.8536,
			TruckType:         models.TruckMini,
			LeadTime:          30,
			CostPrice:         820,
			UnitSalesPrice:    1040,
			BulkSalesPrice:    980,
			GSTRate:           18,
			MinMarginPercent:  8,
			IsActive:          false,
			IsComplianceReady: true,
		},
		{
			SKUID:              "SKU-CB-2002",
			ProductName:        "Control Cable 12-Core 2.5sqmm",
			ProductCategory:    "Cables & Wires",
			ProductSubCategory: "Control Cable",
			OEMBrand:           "Havells",
			Specification: map[string]string{
				"Conductor":  "Copper 12-Core 2.5sqmm",
				"Insulation": "PVC FRLS",
				"Standard":   "IS 1554 Part-1",
			},
			AvailableQuantity: 1800,
			WarehouseLocation: "Faridabad, HR",
			WarehouseCode:     "WH-FBD-01",
			WarehouseLat:      28.4089,
			WarehouseLon:      77.3178,
			TruckType:         models.TruckLCV,
			LeadTime:          14,
			CostPrice:         310,
			UnitSalesPrice:    395,
			BulkSalesPrice:    365,
			GSTRate:           18,
			MinMarginPercent:  10,
			IsActive:          true,
			IsComplianceReady: false,
		},
	}
}
