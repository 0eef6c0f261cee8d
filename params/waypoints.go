package params

// WaypointParams are the filter options of the /waypoints list endpoint.
type WaypointParams struct {
	BaseParams

	Activities    []string // act
	WaypointTypes []string // wtyp

	// Numeric ranges
	Elevation       *Range // walt
	Prominence      *Range // prom
	HeightMin       *Range // tminh
	HeightMax       *Range // tmaxh
	HeightMedian    *Range // tmedh
	RoutesQuantity  *Range // rqua
	Length          *Range // len
	Capacity        *Range // hucap
	CapacityStaffed *Range // hscap

	// Enums and lists
	RockTypes                 []string // wrock
	Orientations              []string // wfac
	BestPeriods               []string // period
	LiftAccess                *bool    // plift
	Custodianship             string   // hsta
	ClimbingStyles            []string // tcsty
	AccessTime                *Range   // tappt, enum range
	ClimbingRatingMax         *Range   // tmaxr
	ClimbingRatingMin         *Range   // tminr
	ClimbingRatingMedian      *Range   // tmedr
	ChildrenProof             string   // chil
	RainProof                 string   // rain
	ClimbingOutdoorTypes      []string // ctout
	ClimbingIndoorTypes       []string // ctin
	ParaglidingRating         *Range   // pgrat
	ExpositionRating          *Range   // pglexp
	WeatherStationTypes       []string // whtyp
	EquipmentRatings          *Range   // anchq
	PublicTransportationTypes []string // tpty
	PublicTransportationRate  string   // tp
	SnowClearanceRating       string   // psnow
	ProductTypes              []string // ftyp
}

func (p *WaypointParams) ToQuery() map[string]string {
	query := p.baseQuery()

	setList(query, "act", p.Activities)
	setList(query, "wtyp", p.WaypointTypes)

	ranges := []struct {
		key   string
		value *Range
	}{
		{"walt", p.Elevation},
		{"prom", p.Prominence},
		{"tminh", p.HeightMin},
		{"tmaxh", p.HeightMax},
		{"tmedh", p.HeightMedian},
		{"rqua", p.RoutesQuantity},
		{"len", p.Length},
		{"hucap", p.Capacity},
		{"hscap", p.CapacityStaffed},
		{"tappt", p.AccessTime},
		{"tmaxr", p.ClimbingRatingMax},
		{"tminr", p.ClimbingRatingMin},
		{"tmedr", p.ClimbingRatingMedian},
		{"pgrat", p.ParaglidingRating},
		{"pglexp", p.ExpositionRating},
		{"anchq", p.EquipmentRatings},
	}
	for _, r := range ranges {
		setRange(query, r.key, r.value)
	}

	setList(query, "wrock", p.RockTypes)
	setList(query, "wfac", p.Orientations)
	setList(query, "period", p.BestPeriods)
	if p.LiftAccess != nil {
		if *p.LiftAccess {
			query["plift"] = "true"
		} else {
			query["plift"] = "false"
		}
	}
	setString(query, "hsta", p.Custodianship)
	setList(query, "tcsty", p.ClimbingStyles)
	setString(query, "chil", p.ChildrenProof)
	setString(query, "rain", p.RainProof)
	setList(query, "ctout", p.ClimbingOutdoorTypes)
	setList(query, "ctin", p.ClimbingIndoorTypes)
	setList(query, "whtyp", p.WeatherStationTypes)
	setList(query, "tpty", p.PublicTransportationTypes)
	setString(query, "tp", p.PublicTransportationRate)
	setString(query, "psnow", p.SnowClearanceRating)
	setList(query, "ftyp", p.ProductTypes)

	p.mergeExtras(query)
	return query
}
