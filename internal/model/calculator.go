package model

// AreaUnit is the unit a rate is quoted in.
type AreaUnit string

const (
	AreaSqFt AreaUnit = "sqft"
	AreaSqMt AreaUnit = "sqmt"
)

// mmPerFoot and mmPerMeter are the linear divisors for each area unit.
// 1 sq ft = 304.8 mm x 304.8 mm = 92903.04 sq mm.
const (
	mmPerFoot  = 304.8
	mmPerMeter = 1000.0

	SqMMPerSqFt = mmPerFoot * mmPerFoot
	SqMMPerSqMt = mmPerMeter * mmPerMeter
)

// Divisor returns the linear mm divisor for the unit. Unknown units are
// treated as square feet.
func (u AreaUnit) Divisor() float64 {
	if u == AreaSqMt {
		return mmPerMeter
	}
	return mmPerFoot
}

func (u AreaUnit) String() string {
	if u == AreaSqMt {
		return "sq.mt"
	}
	return "sq.ft"
}

// SqFt converts an area in sq mm to square feet.
func SqFt(sqmm float64) float64 { return sqmm / SqMMPerSqFt }

// SqMt converts an area in sq mm to square metres.
func SqMt(sqmm float64) float64 { return sqmm / SqMMPerSqMt }
