package domain

import "strconv"

const (
	UnknownPropertyType = ""
	UnknownLeadSource   = "Unknown Source"
)

// BedroomLabel é o rótulo de quartos do negócio. Códigos desconhecidos
// ficam vazios e são serializados como o número 0.
type BedroomLabel string

func (b BedroomLabel) MarshalJSON() ([]byte, error) {
	if b == "" {
		return []byte("0"), nil
	}
	return []byte(strconv.Quote(string(b))), nil
}

func (b *BedroomLabel) UnmarshalJSON(data []byte) error {
	if string(data) == "0" || string(data) == "null" {
		*b = ""
		return nil
	}
	label, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	*b = BedroomLabel(label)
	return nil
}

// PropertyTypes mapeia o código da lista UF_CRM_66E3D8D1A13F7 para o tipo de imóvel
var PropertyTypes = map[int]string{
	574:  "Apartment",
	576:  "Villa",
	578:  "Townhouse",
	580:  "Office",
	582:  "Plot",
	1203: "Building",
	1205: "Half Floor",
	1207: "Full Floor",
}

// Bedrooms mapeia o código da lista UF_CRM_1727854068559 para a quantidade de quartos
var Bedrooms = map[int]BedroomLabel{
	1227: "STD",
	1229: "1BR",
	1231: "2BR",
	1233: "3BR",
	1235: "4BR",
	1237: "5BR",
	1239: "6BR",
	1241: "7BR",
}

// LeadSources mapeia o SOURCE_ID do Bitrix para a origem do lead
var LeadSources = map[string]string{
	"CALL":           "Call",
	"EMAIL":          "E-Mail",
	"WEB":            "Website",
	"ADVERTISING":    "Advertising",
	"PARTNER":        "Existing Client",
	"RECOMMENDATION": "By Recommendation",
	"TRADE_SHOW":     "Show/Exhibition",
	"WEBFORM":        "CRM form",
	"CALLBACK":       "Callback",
	"RC_GENERATOR":   "Sales boost",
	"STORE":          "Online Store",
	"OTHER":          "Other",
	"2|FACEBOOK":     "Facebook - Open Channel",
	"UC_WXX77T":      "Company lead",
	"UC_WXHO9P":      "HubSpot Import",
	"UC_Q8BGPL":      "Facebook",
	"UC_FLEQ4P":      "Instagram",
	"UC_5D5SVF":      "Email-Camp",
	"UC_32S5MT":      "Google Adwords",
	"UC_SW1FK0":      "Bayut",
	"UC_W4DK0R":      "Property Finder",
	"UC_N8HODU":      "Dubizzle",
	"UC_ESN0RB":      "IVR / Convolo",
	"UC_JDIBT3":      "EM / Convolo",
	"UC_IPIF3D":      "Facebook / Convolo",
	"UC_2R7T9N":      "Tiktok / Convolo",
	"UC_8P22IR":      "Website / Convolo",
	"UC_SEYC1C":      "GA / Convolo",
	"UC_0RA5D0":      "Instagram / Convolo",
	"UC_PV7S3O":      "Offplan Portal Ads",
	"UC_N0X55E":      "Email/Landing Page",
	"UC_NU9VE9":      "Signature Ad",
	"UC_RVXXS7":      "Facebook Via Convolo",
	"UC_A736LI":      "Own reference buyer.",
	"UC_I8E0DH":      "Own social media lead",
	"UC_UFMJ0J":      "Own data lead",
	"UC_NKWR7D":      "Own Refrence",
	"UC_AO2TID":      "Portal",
	"UC_O8CS6J":      "Vedank",
	"UC_ABYWI9":      "Convolo",
	"UC_0AB5OH":      "Instagram Springfield",
	"UC_DMGYHC":      "Sir Farooq Social Media",
	"UC_LYJKY1":      "Snapchat",
	"UC_3TNW9U":      "Farooq Instagram",
	"UC_0OFJJ4":      "Tiktok",
	"UC_XNP1B4":      "Farooq bhai social media",
	"UC_5FBGT3":      "SMS",
	"UC_B103FQ":      "Youtube",
	"UC_PWD4BH":      "Expertise",
	"UC_K21PPH":      "-",
	"UC_DCCQN2":      "referral",
	"UC_5ZA3XT":      "PropertyFinder.ae",
	"UC_OH9H73":      "JustProperty.com",
	"UC_OLDOK0":      "Event",
	"UC_ZLCNP3":      "Roadshow",
	"UC_1DIMU5":      "Bayut.com",
	"UC_5SJTXN":      "Open House",
	"UC_QP27PS":      "Company Email",
	"UC_A8WMQA":      "Company Lead",
	"UC_US9TA3":      "Google",
	"UC_G2OZRM":      "Nigeria Roadshow",
	"UC_JGVD07":      "Reshfled",
}

func PropertyTypeLabel(code int) string {
	if label, ok := PropertyTypes[code]; ok {
		return label
	}
	return UnknownPropertyType
}

func BedroomsLabel(code int) BedroomLabel {
	return Bedrooms[code]
}

func LeadSourceLabel(sourceID string) string {
	if label, ok := LeadSources[sourceID]; ok {
		return label
	}
	return UnknownLeadSource
}
