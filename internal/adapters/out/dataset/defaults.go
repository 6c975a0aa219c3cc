package dataset

import "maps"

// DefaultAliases maps common alternate spellings and the misspellings found
// in carrier price sheets to canonical country names.
func DefaultAliases() map[string]string {
	return maps.Clone(defaultAliases)
}

// DefaultZones returns the FedEx, DHL and UPS zone tables used when the
// master file carries no zone_mappings.
func DefaultZones() map[string]map[string]string {
	out := make(map[string]map[string]string, len(defaultZones))
	for carrier, table := range defaultZones {
		out[carrier] = maps.Clone(table)
	}
	return out
}

var defaultAliases = map[string]string{
	"USA":                      "UNITED STATES",
	"US":                       "UNITED STATES",
	"AMERICA":                  "UNITED STATES",
	"UNITED STATES OF AMERICA": "UNITED STATES",
	"UK":                       "UNITED KINGDOM",
	"GB":                       "UNITED KINGDOM",
	"GREAT BRITAIN":            "UNITED KINGDOM",
	"ENGLAND":                  "UNITED KINGDOM",
	"BRITAIN":                  "UNITED KINGDOM",
	"UAE":                      "UNITED ARAB EMIRATES",
	"EMIRATES":                 "UNITED ARAB EMIRATES",
	"DUBAI":                    "UNITED ARAB EMIRATES",
	"HK":                       "HONG KONG",
	"NZ":                       "NEW ZEALAND",
	"AUS":                      "AUSTRALIA",
	"KSA":                      "SAUDI ARABIA",
	"ARABIA":                   "SAUDI ARABIA",
	"KOREA":                    "SOUTH KOREA",
	"REPUBLIC OF KOREA":        "SOUTH KOREA",
	"HOLLAND":                  "NETHERLANDS",
	"THE NETHERLANDS":          "NETHERLANDS",
	"DEUTSCHLAND":              "GERMANY",
	"CZECHIA":                  "CZECH REPUBLIC",
	"TURKIYE":                  "TURKEY",
	"MACAO":                    "MACAU",
	"SLOVAK":                   "SLOVAKIA",
	"SLOVAK REPUBLIC":          "SLOVAKIA",
	"BURMA":                    "MYANMAR",
	"FRENCH GUYANA":            "FRENCH GUIANA",
	"IRAQ REPUBLIC":            "IRAQ",
	"RUSSIAN FEDERATION":       "RUSSIA",
	"VIET NAM":                 "VIETNAM",
	"SWAZILAND":                "ESWATINI",
	"IVORY COAST":              "COTE D'IVOIRE",
	"CENT AFR REP":             "CENTRAL AFRICAN REPUBLIC",
	"DR CONGO":                 "DEMOCRATIC REPUBLIC OF THE CONGO",
	"DRC":                      "DEMOCRATIC REPUBLIC OF THE CONGO",
	"BOSNIA":                   "BOSNIA AND HERZEGOVINA",
	"ANTIGUA":                  "ANTIGUA AND BARBUDA",
	"TRINIDAD":                 "TRINIDAD AND TOBAGO",
	"ST KITTS":                 "ST KITTS AND NEVIS",
	"SAINT LUCIA":              "ST LUCIA",
	"SAINT VINCENT":            "ST VINCENT",
	"ST MARTEN":                "ST MAARTEN",
	"SINT MAARTEN":             "ST MAARTEN",
	"PAPUA":                    "PAPUA NEW GUINEA",
	"SAIPAN":                   "NORTHERN MARIANA ISLANDS",
	"BRUTAN":                   "BHUTAN",
	"MYAMMAR":                  "MYANMAR",
	"TAWAN":                    "TAIWAN",
	"GROATIA":                  "CROATIA",
	"SUBINAME":                 "SURINAME",
	"KYRCYZSTAN":               "KYRGYZSTAN",
	"MALAVII":                  "MALAWI",
	"MONTSEBRAT":               "MONTSERRAT",
	"ST MARRTEN":               "ST MAARTEN",
	"SAPAN":                    "NORTHERN MARIANA ISLANDS",
}

var defaultZones = map[string]map[string]string{
	"FedEx": {
		"UNITED ARAB EMIRATES": "A",
		"BANGLADESH":           "B", "BHUTAN": "B", "MALDIVES": "B", "NEPAL": "B", "PAKISTAN": "B", "SINGAPORE": "B",
		"SRI LANKA":   "B",
		"AFGHANISTAN": "C", "IRAQ": "C", "JORDAN": "C", "LEBANON": "C", "MYANMAR": "C", "PALESTINE": "C",
		"SAUDI ARABIA": "C", "SYRIA": "C", "TURKMENISTAN": "C", "YEMEN": "C", "EGYPT": "C", "IRAN": "C",
		"CHINA": "D", "THAILAND": "D", "HONG KONG": "D",
		"AMERICAN SAMOA": "E", "AUSTRALIA": "E", "BRUNEI": "E", "CAMBODIA": "E", "COOK ISLANDS": "E",
		"LAOS": "E", "MACAU": "E", "MALAYSIA": "E", "MARSHALL ISLANDS": "E", "MICRONESIA": "E",
		"MONGOLIA": "E", "NEW CALEDONIA": "E", "NEW ZEALAND": "E", "PALAU": "E", "PAPUA NEW GUINEA": "E",
		"PHILIPPINES": "E", "NORTHERN MARIANA ISLANDS": "E", "SAMOA": "E", "SOLOMON ISLANDS": "E",
		"SOUTH KOREA": "E", "TAIWAN": "E", "TONGA": "E", "TUVALU": "E", "VANUATU": "E", "VIETNAM": "E",
		"EAST TIMOR": "E", "FIJI": "E", "FRENCH POLYNESIA": "E", "GUAM": "E", "INDONESIA": "E",
		"BELGIUM": "F", "ITALY": "F", "LIECHTENSTEIN": "F", "LUXEMBOURG": "F", "NETHERLANDS": "F",
		"SPAIN": "F", "SWITZERLAND": "F", "UNITED KINGDOM": "F", "DENMARK": "F", "FAROE ISLANDS": "F",
		"FRANCE": "F", "GERMANY": "F", "GREENLAND": "F",
		"MEXICO": "G", "UNITED STATES": "G",
		"JAPAN":   "H",
		"ALBANIA": "I", "ANDORRA": "I", "ARMENIA": "I", "AUSTRIA": "I", "AZERBAIJAN": "I", "BELARUS": "I",
		"BOSNIA AND HERZEGOVINA": "I", "BULGARIA": "I", "IRELAND": "I", "ISRAEL": "I", "KAZAKHSTAN": "I",
		"KIRIBATI": "I", "KYRGYZSTAN": "I", "LATVIA": "I", "LITHUANIA": "I", "MACEDONIA": "I", "MALTA": "I",
		"MOLDOVA": "I", "MONACO": "I", "MONTENEGRO": "I", "NORWAY": "I", "POLAND": "I", "PORTUGAL": "I",
		"ROMANIA": "I", "RUSSIA": "I", "SERBIA": "I", "SLOVAKIA": "I", "SLOVENIA": "I", "SWEDEN": "I",
		"TURKEY": "I", "UKRAINE": "I", "UZBEKISTAN": "I", "CROATIA": "I", "CYPRUS": "I",
		"CZECH REPUBLIC": "I", "ESTONIA": "I", "FINLAND": "I", "GEORGIA": "I", "GIBRALTAR": "I",
		"GREECE": "I", "HUNGARY": "I", "ICELAND": "I",
		"ANGUILLA": "J", "ANTIGUA AND BARBUDA": "J", "ARGENTINA": "J", "ARUBA": "J", "BAHAMAS": "J",
		"BARBADOS": "J", "BELIZE": "J", "BERMUDA": "J", "BOLIVIA": "J", "BONAIRE": "J", "BRAZIL": "J",
		"BRITISH VIRGIN ISLANDS": "J", "CAYMAN ISLANDS": "J", "CHILE": "J", "COLOMBIA": "J", "JAMAICA": "J",
		"MARTINIQUE": "J", "MONTSERRAT": "J", "NICARAGUA": "J", "PANAMA": "J", "PARAGUAY": "J",
		"ST KITTS AND NEVIS": "J", "ST MAARTEN": "J", "ST MARTIN": "J", "ST LUCIA": "J", "ST VINCENT": "J",
		"SURINAME": "J", "TRINIDAD AND TOBAGO": "J", "TURKS AND CAICOS ISLANDS": "J", "URUGUAY": "J",
		"VENEZUELA": "J", "VIRGIN ISLANDS": "J", "COSTA RICA": "J", "CURACAO": "J", "DOMINICA": "J",
		"DOMINICAN REPUBLIC": "J", "ECUADOR": "J", "EL SALVADOR": "J", "FRENCH GUIANA": "J", "GRENADA": "J",
		"GUADELOUPE": "J", "GUATEMALA": "J", "GUYANA": "J", "HAITI": "J", "HONDURAS": "J",
		"SOUTH AFRICA": "K",
		"CANADA":       "L",
		"BAHRAIN":      "M", "KUWAIT": "M", "OMAN": "M", "QATAR": "M",
		"CENTRAL AFRICAN REPUBLIC": "N", "CHAD": "N", "KENYA": "N", "MAURITIUS": "N", "SUDAN": "N",
		"TANZANIA": "N", "UGANDA": "N", "DEMOCRATIC REPUBLIC OF THE CONGO": "N", "DJIBOUTI": "N",
		"ERITREA": "N", "ETHIOPIA": "N",
		"ALGERIA": "O", "ANGOLA": "O", "COTE D'IVOIRE": "O", "LIBYA": "O", "MOROCCO": "O", "NIGERIA": "O",
		"SEYCHELLES": "O", "GHANA": "O",
		"BOTSWANA": "P", "LESOTHO": "P", "NAMIBIA": "P", "RWANDA": "P", "ESWATINI": "P", "ZAMBIA": "P",
		"ZIMBABWE": "P",
		"BENIN":    "Q", "BURKINA FASO": "Q", "BURUNDI": "Q", "CAMEROON": "Q", "CAPE VERDE": "Q", "CONGO": "Q",
		"LIBERIA": "Q", "MADAGASCAR": "Q", "MALAWI": "Q", "MALI": "Q", "MAURITANIA": "Q", "MOZAMBIQUE": "Q",
		"NIGER": "Q", "REUNION ISLAND": "Q", "SENEGAL": "Q", "SIERRA LEONE": "Q", "TOGO": "Q",
		"TUNISIA": "Q", "EQUATORIAL GUINEA": "Q", "GABON": "Q", "GAMBIA": "Q", "GUINEA": "Q",
		"GUINEA BISSAU": "Q",
	},
	"DHL": {
		"BANGLADESH": "1", "BHUTAN": "1", "MALDIVES": "1", "NEPAL": "1", "SRI LANKA": "1",
		"UNITED ARAB EMIRATES": "1",
		"HONG KONG":            "2", "MALAYSIA": "2", "SINGAPORE": "2", "THAILAND": "2",
		"CHINA":   "3",
		"BAHRAIN": "4", "JORDAN": "4", "KUWAIT": "4", "OMAN": "4", "PAKISTAN": "4", "QATAR": "4",
		"SAUDI ARABIA": "4",
		"BRUNEI":       "5", "CAMBODIA": "5", "EAST TIMOR": "5", "INDONESIA": "5", "JAPAN": "5",
		"SOUTH KOREA": "5", "LAOS": "5", "MACAU": "5", "MYANMAR": "5", "PHILIPPINES": "5", "TAIWAN": "5",
		"VIETNAM":     "5",
		"NEW ZEALAND": "6", "PAPUA NEW GUINEA": "6",
		"AUSTRIA": "7", "BELGIUM": "7", "CZECH REPUBLIC": "7", "DENMARK": "7", "FRANCE": "7", "GERMANY": "7",
		"HUNGARY": "7", "IRELAND": "7", "ITALY": "7", "LIECHTENSTEIN": "7", "LUXEMBOURG": "7", "MONACO": "7",
		"NETHERLANDS": "7", "POLAND": "7", "PORTUGAL": "7", "ROMANIA": "7", "SLOVAKIA": "7", "SPAIN": "7",
		"SWEDEN": "7", "SWITZERLAND": "7", "UNITED KINGDOM": "7", "VATICAN CITY STATE": "7",
		"ANDORRA": "8", "BELARUS": "8", "BULGARIA": "8", "CANARY ISLANDS": "8", "CYPRUS": "8",
		"ESTONIA": "8", "FALKLAND ISLANDS": "8", "FAROE ISLANDS": "8", "GIBRALTAR": "8", "GREECE": "8",
		"GREENLAND": "8", "GUERNSEY": "8", "ICELAND": "8", "ISRAEL": "8", "JERSEY": "8", "LATVIA": "8",
		"LITHUANIA": "8", "MALTA": "8", "NORWAY": "8", "SLOVENIA": "8", "TURKEY": "8",
		"AMERICAN SAMOA": "9", "CANADA": "9", "GUAM": "9", "MARSHALL ISLANDS": "9", "MEXICO": "9",
		"PUERTO RICO": "9", "VIRGIN ISLANDS": "9",
		"ARGENTINA": "10", "ANTIGUA AND BARBUDA": "10", "ARUBA": "10", "BAHAMAS": "10", "BARBADOS": "10",
		"BELIZE": "10", "BOLIVIA": "10", "BRAZIL": "10", "CAYMAN ISLANDS": "10", "CHILE": "10",
		"COLOMBIA": "10", "COSTA RICA": "10", "CUBA": "10", "CURACAO": "10", "DOMINICA": "10",
		"DOMINICAN REPUBLIC": "10", "ECUADOR": "10", "EL SALVADOR": "10", "FRENCH GUIANA": "10",
		"GRENADA": "10", "GUADELOUPE": "10", "GUATEMALA": "10", "HAITI": "10", "HONDURAS": "10",
		"JAMAICA": "10", "MARTINIQUE": "10", "MONTSERRAT": "10", "NICARAGUA": "10", "PANAMA": "10",
		"PARAGUAY": "10", "PERU": "10", "ST BARTHELEMY": "10", "ST LUCIA": "10", "ST MAARTEN": "10",
		"SURINAME": "10", "TRINIDAD AND TOBAGO": "10", "TURKS AND CAICOS ISLANDS": "10", "URUGUAY": "10",
		"VENEZUELA": "10",
		"TANZANIA":  "13", "UGANDA": "13", "ZIMBABWE": "13",
		"AUSTRALIA": "14",
	},
	"UPS": {
		"BANGLADESH": "1", "NEPAL": "1", "SRI LANKA": "1", "UNITED ARAB EMIRATES": "1",
		"MACAU": "2", "TAIWAN": "2", "VIETNAM": "2",
		"BRUNEI": "3", "INDONESIA": "3", "JORDAN": "3", "KUWAIT": "3", "LEBANON": "3", "NORFOLK ISLAND": "3",
		"OMAN": "3", "PAKISTAN": "3", "PHILIPPINES": "3", "QATAR": "3", "SAUDI ARABIA": "3", "YEMEN": "3",
		"CHINA":   "3",
		"ANDORRA": "4", "LIECHTENSTEIN": "4", "MONACO": "4", "SAN MARINO": "4",
		"CHANNEL ISLANDS": "5", "GUERNSEY": "5", "JERSEY": "5", "NEW CALEDONIA": "5", "MAURITIUS": "5",
		"CANADA": "6", "UNITED STATES": "6", "GERMANY": "6", "FRANCE": "6", "UNITED KINGDOM": "6",
		"ITALY": "6", "SPAIN": "6", "NETHERLANDS": "6", "BELGIUM": "6", "AUSTRIA": "6", "SWITZERLAND": "6",
		"DENMARK": "6", "SWEDEN": "6", "NORWAY": "6", "FINLAND": "6", "IRELAND": "6", "PORTUGAL": "6",
		"GREECE": "6", "TURKEY": "6", "RUSSIA": "6", "UKRAINE": "6", "BELARUS": "6", "KAZAKHSTAN": "6",
		"JAPAN": "6", "SOUTH KOREA": "6", "HONG KONG": "6", "SINGAPORE": "6", "MALAYSIA": "6",
		"THAILAND": "6", "AUSTRALIA": "6", "NEW ZEALAND": "6", "BRAZIL": "6", "ARGENTINA": "6", "CHILE": "6",
		"COLOMBIA": "6", "PERU": "6", "VENEZUELA": "6", "MEXICO": "6", "INDIA": "6",
		"CZECH REPUBLIC": "7", "HUNGARY": "7", "POLAND": "7",
	},
}
