package service

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/bidforge/bidforge-go/internal/geo"
	"github.com/bidforge/bidforge-go/internal/models"
)

const (
	// bulkQuantityThreshold switches a line item to the bulk price tier.
	bulkQuantityThreshold = 5

	// testingFee is charged once per run, not per line item.
	testingFee = 2500

	// transportAdjustmentFactor covers tolls and route variance on top
	// of the straight-line distance rate.
	transportAdjustmentFactor = 1.2

	// defaultGSTRate applies when the first selected SKU carries no rate.
	defaultGSTRate = 18
)

// truckCostPerKM is the per-km rate by truck class, in INR.
var truckCostPerKM = map[models.TruckType]float64{
	models.TruckMini:   25,
	models.TruckLCV:    35,
	models.TruckMedium: 50,
	models.TruckHeavy:  70,
}

// consigneePIN extracts a 6-digit PIN code from a consignee address.
var consigneePIN = regexp.MustCompile(`PIN-?(\d{6})`)

// PricingBreakdown carries the ordered cost lines plus the totals the
// risk analysis needs.
type PricingBreakdown struct {
	Lines          models.Pricing
	MaterialTotal  float64
	TransportTotal float64
	BrokerageTotal float64
}

// ComputePricing rolls up material, transport, testing, and brokerage
// costs across all line items and applies GST once on the subtotal,
// using the first selected SKU's rate.
//
// An unresolved consignee PIN is not an error: transport cost simply
// contributes zero for every line item.
func ComputePricing(parsed *models.ParsedRfpData, analyses []models.LineItemTechnicalAnalysis) PricingBreakdown {
	consigneeLoc, consigneeKnown := resolveConsignee(parsed.Consignee)

	var material, transport, brokerage float64
	for _, analysis := range analyses {
		sku := analysis.SelectedSKU
		quantity := analysis.RfpLineItem.Quantity

		price := sku.UnitSalesPrice
		if quantity >= bulkQuantityThreshold {
			price = sku.BulkSalesPrice
		}
		lineMaterial := price * float64(quantity)
		material += lineMaterial

		if consigneeKnown {
			distance := geo.DistanceKM(sku.WarehouseLat, sku.WarehouseLon, consigneeLoc.Lat, consigneeLoc.Lon)
			transport += distance * truckCostPerKM[sku.TruckType] * transportAdjustmentFactor
		}

		brokerage += lineMaterial * (sku.Brokerage / 100)
	}

	subtotal := material + transport + testingFee + brokerage

	gstRate := float64(defaultGSTRate)
	if len(analyses) > 0 && analyses[0].SelectedSKU.GSTRate != 0 {
		gstRate = analyses[0].SelectedSKU.GSTRate
	}
	gst := subtotal * (gstRate / 100)

	return PricingBreakdown{
		Lines: models.Pricing{
			{Label: "Total Material Cost", Amount: material},
			{Label: "Total Transportation Cost", Amount: transport},
			{Label: "Testing Costs", Amount: testingFee},
			{Label: "Total Brokerage", Amount: brokerage},
			{Label: "Subtotal", Amount: subtotal},
			{Label: fmt.Sprintf("GST (approx. %s%%)", strconv.FormatFloat(gstRate, 'f', -1, 64)), Amount: gst},
			{Label: "Final Bid Value", Amount: subtotal + gst},
		},
		MaterialTotal:  material,
		TransportTotal: transport,
		BrokerageTotal: brokerage,
	}
}

// resolveConsignee finds the delivery coordinates for a consignee
// address, falling back to the default PIN when no code is present.
func resolveConsignee(address string) (geo.Location, bool) {
	pin := geo.DefaultPIN
	if m := consigneePIN.FindStringSubmatch(address); m != nil {
		pin = m[1]
	}
	return geo.LookupPIN(pin)
}
