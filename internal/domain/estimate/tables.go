package estimate

// ProjectRate is the fixed setup cost plus the per-square-meter rate
// for one project type.
type ProjectRate struct {
	Label  string
	Setup  int64
	PerSqm int64
}

// Pricing tables are fixed at release time. Changing a rate is a
// deploy, not an admin operation.
var projectRates = map[string]ProjectRate{
	"pension": {Label: "펜션", Setup: 12000000, PerSqm: 130000},
	"cafe":    {Label: "카페", Setup: 18000000, PerSqm: 150000},
	"caravan": {Label: "카라반", Setup: 6000000, PerSqm: 220000},
	"camping": {Label: "캠핑장", Setup: 20000000, PerSqm: 90000},
	"outdoor": {Label: "야외시설", Setup: 8000000, PerSqm: 110000},
}

// Grade scales the base cost.
type Grade struct {
	Label      string
	Multiplier float64
}

var grades = map[string]Grade{
	"standard": {Label: "스탠다드", Multiplier: 1.0},
	"premium":  {Label: "프리미엄", Multiplier: 1.2},
	"luxury":   {Label: "럭셔리", Multiplier: 1.4},
}

// Extra is an optional add-on priced as a flat amount.
type Extra struct {
	Label string
	Price int64
}

var extras = map[string]Extra{
	"lighting":  {Label: "조명 시공", Price: 4500000},
	"outdoor":   {Label: "야외 가구", Price: 6500000},
	"furniture": {Label: "맞춤 가구", Price: 5200000},
}

// recommendationMap names the catalog categories suggested alongside
// an estimate for each project type, in display order.
var recommendationMap = map[string][]string{
	"pension": {"outdoor", "lighting"},
	"cafe":    {"lighting", "furniture"},
	"caravan": {"furniture", "lighting"},
	"camping": {"outdoor", "lighting"},
	"outdoor": {"outdoor", "accessories"},
}

// MinArea is the smallest area the calculator accepts, in square meters.
const MinArea = 30
