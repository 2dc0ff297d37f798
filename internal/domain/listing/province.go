package listing

// Province is a Canadian province or territory code as used in the upstream
// StateOrProvince field.
type Province string

const (
	ProvinceON Province = "ON"
	ProvinceBC Province = "BC"
	ProvinceAB Province = "AB"
	ProvinceQC Province = "QC"
	ProvinceNS Province = "NS"
	ProvinceNB Province = "NB"
	ProvinceMB Province = "MB"
	ProvincePE Province = "PE"
	ProvinceSK Province = "SK"
	ProvinceNL Province = "NL"
	ProvinceYT Province = "YT"
	ProvinceNT Province = "NT"
	ProvinceNU Province = "NU"
)

// IsKnown reports whether p is one of the defined codes.
func (p Province) IsKnown() bool {
	switch p {
	case ProvinceON, ProvinceBC, ProvinceAB, ProvinceQC, ProvinceNS, ProvinceNB, ProvinceMB,
		ProvincePE, ProvinceSK, ProvinceNL, ProvinceYT, ProvinceNT, ProvinceNU:
		return true
	default:
		return false
	}
}
