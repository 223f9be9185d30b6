package models

// MarketType identifies the kind of betting market a snapshot belongs to
type MarketType string

const (
	MarketMoneyline MarketType = "moneyline"
	MarketSpread    MarketType = "spread"
	MarketTotal     MarketType = "total"
	MarketThreeWay  MarketType = "three_way"
)

// Side identifies the outcome a snapshot refers to within a market
type Side string

const (
	SideHome  Side = "home"
	SideAway  Side = "away"
	SideDraw  Side = "draw"
	SideOver  Side = "over"
	SideUnder Side = "under"
)

// ValidMarketType reports whether s is one of the recognized market types
func ValidMarketType(s string) bool {
	switch MarketType(s) {
	case MarketMoneyline, MarketSpread, MarketTotal, MarketThreeWay:
		return true
	}
	return false
}

// ValidSide reports whether s is one of the recognized sides
func ValidSide(s string) bool {
	switch Side(s) {
	case SideHome, SideAway, SideDraw, SideOver, SideUnder:
		return true
	}
	return false
}
