package model

// Enumerated domain values are stored as their short English code; the Bangla
// display text lives in the label maps so presentation never leaks into the
// database.

type Rank string

const (
	RankMWO Rank = "MWO"
	RankSWO Rank = "SWO"
	RankWO  Rank = "WO"
	RankSgt Rank = "Sgt"
	RankCpl Rank = "Cpl"
	RankLAC Rank = "LAC"
	RankAC  Rank = "AC"
)

// AllRanks is ordered senior to junior; the overview report relies on this order.
var AllRanks = []Rank{RankMWO, RankSWO, RankWO, RankSgt, RankCpl, RankLAC, RankAC}

var RankLabels = map[Rank]string{
	RankMWO: "মাঃওঃঅঃ",
	RankSWO: "সিঃওঃঅঃ",
	RankWO:  "ওঃঅঃ",
	RankSgt: "সার্জেন্ট",
	RankCpl: "কর্পোর‌্যাল",
	RankLAC: "এলএসি",
	RankAC:  "এসি",
}

func (r Rank) Valid() bool {
	for _, v := range AllRanks {
		if r == v {
			return true
		}
	}
	return false
}

type Trade string

const (
	TradeSecAsstGD Trade = "Sec Asst (GD)"
	TradeRadOp     Trade = "Rad Op"
	TradeRadioFit  Trade = "Radio Fit"
	TradeLogAsst   Trade = "Log Asst"
	TradeAdminAsst Trade = "Admin Asst"
	TradeMTOF      Trade = "MTOF"
	TradeArmtFitt  Trade = "Armt Fitt"
	TradeEIFitt    Trade = "E&I Fitt"
)

var AllTrades = []Trade{
	TradeSecAsstGD, TradeRadOp, TradeRadioFit, TradeLogAsst,
	TradeAdminAsst, TradeMTOF, TradeArmtFitt, TradeEIFitt,
}

var TradeLabels = map[Trade]string{
	TradeSecAsstGD: "সেক এসি (জিডি)",
	TradeRadOp:     "র‌্যাডার অপাঃ",
	TradeRadioFit:  "রেডিও ফিটার",
	TradeLogAsst:   "লগ এসিঃ",
	TradeAdminAsst: "এডমিন এসিঃ",
	TradeMTOF:      "এমটিওএফ",
	TradeArmtFitt:  "আর্মা ফিঃ",
	TradeEIFitt:    "ইএন্ডআই ফিঃ",
}

func (t Trade) Valid() bool {
	for _, v := range AllTrades {
		if t == v {
			return true
		}
	}
	return false
}

type Flight string

const (
	FlightAdmin Flight = "Admin"
	FlightOps   Flight = "Ops"
	FlightRadio Flight = "Radio"
	FlightMTOps Flight = "MT (Ops)"
	FlightMTRI  Flight = "MT (R&I)"
	FlightArmt  Flight = "Armt"
	FlightElect Flight = "Elect"
	FlightRadar Flight = "Radar"
)

var AllFlights = []Flight{
	FlightAdmin, FlightOps, FlightRadio, FlightMTOps,
	FlightMTRI, FlightArmt, FlightElect, FlightRadar,
}

func (f Flight) Valid() bool {
	for _, v := range AllFlights {
		if f == v {
			return true
		}
	}
	return false
}

type Accommodation string

const (
	AccomAirmenMess Accommodation = "Airmen Mess"
	AccomSgtMess    Accommodation = "Sgt Mess"
	AccomLOSQ       Accommodation = "L/O (SQ)"
	AccomLOOA       Accommodation = "L/O (OA)"
	AccomLOOAT      Accommodation = "L/O (OAT)"
)

var AllAccommodations = []Accommodation{
	AccomAirmenMess, AccomSgtMess, AccomLOSQ, AccomLOOA, AccomLOOAT,
}

func (a Accommodation) Valid() bool {
	for _, v := range AllAccommodations {
		if a == v {
			return true
		}
	}
	return false
}

// LivingOut reports whether the living-out effective date applies to this mode.
func (a Accommodation) LivingOut() bool {
	return a == AccomLOSQ || a == AccomLOOA || a == AccomLOOAT
}

type ServiceCategory string

const (
	CategoryAbove15 ServiceCategory = "Above 15 Years"
	CategoryBelow15 ServiceCategory = "Below 15 Years"
)

// Record lifecycle states. Rejection is a hard delete, so there is no
// rejected state to represent.
const (
	StatusPending = "pending"
	StatusActive  = "active"
)
