package params

// RouteParams are the filter options of the /routes list endpoint. The field
// comments name the wire parameter each option maps to.
type RouteParams struct {
	BaseParams

	Activities []string // act
	Waypoints  []int64  // w, associated waypoint ids
	Users      []string // u, associated user ids

	// Elevations and lengths
	Elevation              *Range // ele
	ElevationMin           *int   // rmina
	ElevationMax           *int   // rmaxa
	HeightDiffUp           *Range // hdif
	HeightDiffDown         *Range // ddif
	RouteLength            *Range // rlen
	DifficultiesHeight     *Range // ralt
	HeightDiffAccess       *Range // rappr
	HeightDiffDifficulties *Range // dhei

	// Enums and lists
	RouteTypes    []string // rtyp
	Orientations  []string // fac
	Durations     *Range   // time, enum range
	GlacierGear   string   // glac
	Configuration []string // conf

	// Ratings, all enum ranges
	SkiRating            *Range // trat
	SkiExposition        *Range // sexpo
	LabandeSkiRating     *Range // srat
	LabandeGlobalRating  *Range // lrat
	GlobalRating         *Range // grat
	EngagementRating     *Range // erat
	RiskRating           *Range // orrat
	EquipmentRating      *Range // prat
	IceRating            *Range // irat
	MixedRating          *Range // mrat
	ExpositionRockRating *Range // rexpo
	RockFreeRating       *Range // frat
	RockRequiredRating   *Range // rrat
	AidRating            *Range // arat
	ViaFerrataRating     *Range // krat
	HikingRating         *Range // hrat
	HikingMtbExposition  *Range // hexpo
	SnowshoeRating       *Range // wrat
	MtbUpRating          *Range // mbur
	MtbDownRating        *Range // mbdr

	// MTB numeric fields
	MtbLengthAsphalt      *Range // mbroad
	MtbLengthTrail        *Range // mbtrack
	MtbHeightDiffPortages *Range // mbpush

	// Rock and styles
	RockTypes           []string // rock
	ClimbingOutdoorType []string // crtyp
	SlacklineType       string   // sltyp
}

func (p *RouteParams) ToQuery() map[string]string {
	query := p.baseQuery()

	setList(query, "act", p.Activities)
	setIdList(query, "w", p.Waypoints)
	setList(query, "u", p.Users)

	setRange(query, "ele", p.Elevation)
	setInt(query, "rmina", p.ElevationMin)
	setInt(query, "rmaxa", p.ElevationMax)

	ranges := []struct {
		key   string
		value *Range
	}{
		{"hdif", p.HeightDiffUp},
		{"ddif", p.HeightDiffDown},
		{"rlen", p.RouteLength},
		{"ralt", p.DifficultiesHeight},
		{"rappr", p.HeightDiffAccess},
		{"dhei", p.HeightDiffDifficulties},
		{"time", p.Durations},
		{"trat", p.SkiRating},
		{"sexpo", p.SkiExposition},
		{"srat", p.LabandeSkiRating},
		{"lrat", p.LabandeGlobalRating},
		{"grat", p.GlobalRating},
		{"erat", p.EngagementRating},
		{"orrat", p.RiskRating},
		{"prat", p.EquipmentRating},
		{"irat", p.IceRating},
		{"mrat", p.MixedRating},
		{"rexpo", p.ExpositionRockRating},
		{"frat", p.RockFreeRating},
		{"rrat", p.RockRequiredRating},
		{"arat", p.AidRating},
		{"krat", p.ViaFerrataRating},
		{"hrat", p.HikingRating},
		{"hexpo", p.HikingMtbExposition},
		{"wrat", p.SnowshoeRating},
		{"mbur", p.MtbUpRating},
		{"mbdr", p.MtbDownRating},
		{"mbroad", p.MtbLengthAsphalt},
		{"mbtrack", p.MtbLengthTrail},
		{"mbpush", p.MtbHeightDiffPortages},
	}
	for _, r := range ranges {
		setRange(query, r.key, r.value)
	}

	setList(query, "rtyp", p.RouteTypes)
	setList(query, "fac", p.Orientations)
	setString(query, "glac", p.GlacierGear)
	setList(query, "conf", p.Configuration)
	setList(query, "rock", p.RockTypes)
	setList(query, "crtyp", p.ClimbingOutdoorType)
	setString(query, "sltyp", p.SlacklineType)

	p.mergeExtras(query)
	return query
}
