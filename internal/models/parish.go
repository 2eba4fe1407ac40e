package models

// Parish is the fixed location taxonomy for users and job listings.
type Parish string

const (
	ParishKingston     Parish = "Kingston"
	ParishStAndrew     Parish = "St. Andrew"
	ParishStCatherine  Parish = "St. Catherine"
	ParishClarendon    Parish = "Clarendon"
	ParishManchester   Parish = "Manchester"
	ParishStElizabeth  Parish = "St. Elizabeth"
	ParishWestmoreland Parish = "Westmoreland"
	ParishHanover      Parish = "Hanover"
	ParishStJames      Parish = "St. James"
	ParishTrelawny     Parish = "Trelawny"
	ParishStAnn        Parish = "St. Ann"
	ParishStMary       Parish = "St. Mary"
	ParishPortland     Parish = "Portland"
	ParishStThomas     Parish = "St. Thomas"
)

var Parishes = []Parish{
	ParishKingston, ParishStAndrew, ParishStCatherine, ParishClarendon,
	ParishManchester, ParishStElizabeth, ParishWestmoreland, ParishHanover,
	ParishStJames, ParishTrelawny, ParishStAnn, ParishStMary,
	ParishPortland, ParishStThomas,
}

func (p Parish) Valid() bool {
	for _, known := range Parishes {
		if p == known {
			return true
		}
	}
	return false
}
