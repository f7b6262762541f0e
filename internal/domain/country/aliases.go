package country

// codes is the set of recognized ISO 3166-1 alpha-2 codes.
var codes = func() map[string]struct{} {
	set := make(map[string]struct{}, len(names)+len(aliases)+len(fallbacks))
	for _, m := range []map[string]string{names, aliases, fallbacks} {
		for _, c := range m {
			set[c] = struct{}{}
		}
	}
	return set
}()

// names maps normalized canonical country names to alpha-2 codes.
var names = map[string]string{
	"afghanistan":                      "af",
	"albania":                          "al",
	"algeria":                          "dz",
	"andorra":                          "ad",
	"angola":                           "ao",
	"argentina":                        "ar",
	"armenia":                          "am",
	"australia":                        "au",
	"austria":                          "at",
	"azerbaijan":                       "az",
	"bahamas":                          "bs",
	"bahrain":                          "bh",
	"bangladesh":                       "bd",
	"barbados":                         "bb",
	"belarus":                          "by",
	"belgium":                          "be",
	"belize":                           "bz",
	"benin":                            "bj",
	"bhutan":                           "bt",
	"bolivia":                          "bo",
	"bosnia and herzegovina":           "ba",
	"botswana":                         "bw",
	"brazil":                           "br",
	"brunei":                           "bn",
	"bulgaria":                         "bg",
	"burkina faso":                     "bf",
	"burundi":                          "bi",
	"cambodia":                         "kh",
	"cameroon":                         "cm",
	"canada":                           "ca",
	"cape verde":                       "cv",
	"central african republic":         "cf",
	"chad":                             "td",
	"chile":                            "cl",
	"china":                            "cn",
	"colombia":                         "co",
	"comoros":                          "km",
	"costa rica":                       "cr",
	"cote divoire":                     "ci",
	"croatia":                          "hr",
	"cuba":                             "cu",
	"cyprus":                           "cy",
	"czechia":                          "cz",
	"democratic republic of the congo": "cd",
	"denmark":                          "dk",
	"djibouti":                         "dj",
	"dominica":                         "dm",
	"dominican republic":               "do",
	"ecuador":                          "ec",
	"egypt":                            "eg",
	"el salvador":                      "sv",
	"equatorial guinea":                "gq",
	"eritrea":                          "er",
	"estonia":                          "ee",
	"eswatini":                         "sz",
	"ethiopia":                         "et",
	"fiji":                             "fj",
	"finland":                          "fi",
	"france":                           "fr",
	"gabon":                            "ga",
	"gambia":                           "gm",
	"georgia":                          "ge",
	"germany":                          "de",
	"ghana":                            "gh",
	"greece":                           "gr",
	"grenada":                          "gd",
	"guatemala":                        "gt",
	"guinea":                           "gn",
	"guinea bissau":                    "gw",
	"guyana":                           "gy",
	"haiti":                            "ht",
	"honduras":                         "hn",
	"hungary":                          "hu",
	"iceland":                          "is",
	"india":                            "in",
	"indonesia":                        "id",
	"iran":                             "ir",
	"iraq":                             "iq",
	"ireland":                          "ie",
	"israel":                           "il",
	"italy":                            "it",
	"jamaica":                          "jm",
	"japan":                            "jp",
	"jordan":                           "jo",
	"kazakhstan":                       "kz",
	"kenya":                            "ke",
	"kiribati":                         "ki",
	"kuwait":                           "kw",
	"kyrgyzstan":                       "kg",
	"laos":                             "la",
	"latvia":                           "lv",
	"lebanon":                          "lb",
	"lesotho":                          "ls",
	"liberia":                          "lr",
	"libya":                            "ly",
	"liechtenstein":                    "li",
	"lithuania":                        "lt",
	"luxembourg":                       "lu",
	"madagascar":                       "mg",
	"malawi":                           "mw",
	"malaysia":                         "my",
	"maldives":                         "mv",
	"mali":                             "ml",
	"malta":                            "mt",
	"marshall islands":                 "mh",
	"mauritania":                       "mr",
	"mauritius":                        "mu",
	"mexico":                           "mx",
	"micronesia":                       "fm",
	"moldova":                          "md",
	"monaco":                           "mc",
	"mongolia":                         "mn",
	"montenegro":                       "me",
	"morocco":                          "ma",
	"mozambique":                       "mz",
	"myanmar":                          "mm",
	"namibia":                          "na",
	"nauru":                            "nr",
	"nepal":                            "np",
	"netherlands":                      "nl",
	"new zealand":                      "nz",
	"nicaragua":                        "ni",
	"niger":                            "ne",
	"nigeria":                          "ng",
	"north korea":                      "kp",
	"north macedonia":                  "mk",
	"norway":                           "no",
	"oman":                             "om",
	"pakistan":                         "pk",
	"palau":                            "pw",
	"palestine":                        "ps",
	"panama":                           "pa",
	"papua new guinea":                 "pg",
	"paraguay":                         "py",
	"peru":                             "pe",
	"philippines":                      "ph",
	"poland":                           "pl",
	"portugal":                         "pt",
	"qatar":                            "qa",
	"republic of the congo":            "cg",
	"romania":                          "ro",
	"russia":                           "ru",
	"rwanda":                           "rw",
	"saint kitts and nevis":            "kn",
	"saint lucia":                      "lc",
	"saint vincent and the grenadines": "vc",
	"samoa":                            "ws",
	"san marino":                       "sm",
	"sao tome and principe":            "st",
	"saudi arabia":                     "sa",
	"senegal":                          "sn",
	"serbia":                           "rs",
	"seychelles":                       "sc",
	"sierra leone":                     "sl",
	"singapore":                        "sg",
	"slovakia":                         "sk",
	"slovenia":                         "si",
	"solomon islands":                  "sb",
	"somalia":                          "so",
	"south africa":                     "za",
	"south korea":                      "kr",
	"south sudan":                      "ss",
	"spain":                            "es",
	"sri lanka":                        "lk",
	"sudan":                            "sd",
	"suriname":                         "sr",
	"sweden":                           "se",
	"switzerland":                      "ch",
	"syria":                            "sy",
	"taiwan":                           "tw",
	"tajikistan":                       "tj",
	"tanzania":                         "tz",
	"thailand":                         "th",
	"timor leste":                      "tl",
	"togo":                             "tg",
	"tonga":                            "to",
	"trinidad and tobago":              "tt",
	"tunisia":                          "tn",
	"turkey":                           "tr",
	"turkmenistan":                     "tm",
	"tuvalu":                           "tv",
	"uganda":                           "ug",
	"ukraine":                          "ua",
	"united arab emirates":             "ae",
	"united kingdom":                   "gb",
	"united states":                    "us",
	"uruguay":                          "uy",
	"uzbekistan":                       "uz",
	"vanuatu":                          "vu",
	"vatican city":                     "va",
	"venezuela":                        "ve",
	"vietnam":                          "vn",
	"yemen":                            "ye",
	"zambia":                           "zm",
	"zimbabwe":                         "zw",
}

// aliases maps common historical, official and colloquial names to
// codes. Keys are stored pre-normalized.
var aliases = map[string]string{
	"usa":                              "us",
	"united states of america":         "us",
	"america":                          "us",
	"us of a":                          "us",
	"uk":                               "gb",
	"great britain":                    "gb",
	"britain":                          "gb",
	"england":                          "gb",
	"scotland":                         "gb",
	"wales":                            "gb",
	"northern ireland":                 "gb",
	"uae":                              "ae",
	"emirates":                         "ae",
	"russian federation":               "ru",
	"republic of korea":                "kr",
	"korea":                            "kr",
	"korea south":                      "kr",
	"korea republic of":                "kr",
	"czech republic":                   "cz",
	"holland":                          "nl",
	"the netherlands":                  "nl",
	"turkiye":                          "tr",
	"republic of turkiye":              "tr",
	"ivory coast":                      "ci",
	"burma":                            "mm",
	"swaziland":                        "sz",
	"macedonia":                        "mk",
	"bolivia plurinational state of":   "bo",
	"venezuela bolivarian republic of": "ve",
	"iran islamic republic of":         "ir",
	"syrian arab republic":             "sy",
	"lao peoples democratic republic":  "la",
	"viet nam":                         "vn",
	"brunei darussalam":                "bn",
	"cabo verde":                       "cv",
	"east timor":                       "tl",
	"drc":                              "cd",
	"dr congo":                         "cd",
	"congo kinshasa":                   "cd",
	"congo brazzaville":                "cg",
	"congo":                            "cg",
	"the gambia":                       "gm",
	"the bahamas":                      "bs",
	"slovak republic":                  "sk",
	"kyrgyz republic":                  "kg",
	"saint vincent":                    "vc",
	"st kitts and nevis":               "kn",
	"st lucia":                         "lc",
	"st vincent and the grenadines":    "vc",
	"tanzania united republic of":      "tz",
	"moldova republic of":              "md",
	"palestinian territory":            "ps",
	"state of palestine":               "ps",
	"vatican":                          "va",
	"holy see":                         "va",
	"chinese taipei":                   "tw",
	"taiwan province of china":         "tw",
	"hong kong":                        "hk",
	"hong kong sar":                    "hk",
	"macau":                            "mo",
	"macao":                            "mo",
	"puerto rico":                      "pr",
	"greenland":                        "gl",
	"new caledonia":                    "nc",
	"french polynesia":                 "pf",
	"bosnia":                           "ba",
	"herzegovina":                      "ba",
	"papua":                            "pg",
}

// fallbacks catches territory spellings the alias table cannot map to
// a distinct flag; they resolve to a fixed neighboring code.
var fallbacks = map[string]string{
	"kosovo":            "xk",
	"curacao":           "cw",
	"aruba":             "aw",
	"cayman islands":    "ky",
	"bermuda":           "bm",
	"gibraltar":         "gi",
	"isle of man":       "im",
	"jersey":            "je",
	"guernsey":          "gg",
	"faroe islands":     "fo",
	"reunion":           "re",
	"martinique":        "mq",
	"guadeloupe":        "gp",
	"french guiana":     "gf",
	"mayotte":           "yt",
	"virgin islands":    "vg",
	"us virgin islands": "vi",
	"american samoa":    "as",
	"guam":              "gu",
	"anguilla":          "ai",
	"montserrat":        "ms",
	"turks and caicos":  "tc",
	"falkland islands":  "fk",
	"western sahara":    "eh",
}
