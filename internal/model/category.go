package model

import "strings"

type Icon int

const (
	IconBusiness Icon = iota
	IconGov
	IconHealth
	IconPeople
	IconScience
	IconWorld
	IconFinance
	IconMap
	iconCount
)

var iconNames = [iconCount]string{
	IconBusiness: "business",
	IconGov:      "gov",
	IconHealth:   "health",
	IconPeople:   "people",
	IconScience:  "science",
	IconWorld:    "world",
	IconFinance:  "finance",
	IconMap:      "map",
}

// Icons lists every defined icon, in declaration order.
func Icons() []Icon {
	out := make([]Icon, 0, iconCount)
	for i := Icon(0); i < iconCount; i++ {
		out = append(out, i)
	}
	return out
}

func (i Icon) String() string {
	if i < 0 || i >= iconCount {
		return "unknown"
	}
	return iconNames[i]
}

const (
	DefaultCategoryID = "destaques"
	MapCategoryID     = "mapa_rede"
)

type Category struct {
	ID       string
	Label    string
	Icon     Icon
	Keywords string
	Sources  string
}

func (c Category) IsNetworkMap() bool {
	return c.ID == MapCategoryID
}

// LeadSources returns up to n entries of the comma separated source list.
func (c Category) LeadSources(n int) []string {
	var out []string
	for _, s := range strings.Split(c.Sources, ",") {
		if len(out) == n {
			break
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

var NetworkMap = Category{
	ID:    MapCategoryID,
	Label: "Mapa da Rede",
	Icon:  IconMap,
}

var categories = []Category{
	{
		ID:       "destaques",
		Label:    "Destaques Gerais",
		Icon:     IconBusiness,
		Keywords: "Mercado de seguros, planos de saúde, saúde suplementar no Brasil, fusões e aquisições",
		Sources:  "Valor Econômico, InfoMoney, CNSeg, Abramge, ANS",
	},
	{
		ID:       "regulacao",
		Label:    "Regulação & Governo",
		Icon:     IconGov,
		Keywords: "Novas regras ANS, leis saúde suplementar, Ministério da Saúde, Anvisa decisões, Rol da ANS",
		Sources:  "ANS, Ministério da Saúde, Anvisa, Diário Oficial da União, Idec, Procon",
	},
	{
		ID:       "operadoras",
		Label:    "Operadoras & Seguradoras",
		Icon:     IconHealth,
		Keywords: "Resultados financeiros operadoras de saúde, Unimed, Bradesco Saúde, SulAmérica, Amil, Hapvida, NotreDame",
		Sources:  "Relatórios de Investidores, Susep, ANS, Fenacor",
	},
	{
		ID:       "administradoras",
		Label:    "Administradoras & Corretoras",
		Icon:     IconPeople,
		Keywords: "Qualicorp, Allcare, mercado de administradoras de benefícios, grandes corretoras de seguros Aon Marsh Willis",
		Sources:  "Fenacor, Sincor, CQCS, Revista Apólice",
	},
	{
		ID:       "prestadores",
		Label:    "Hospitais & Laboratórios",
		Icon:     IconScience,
		Keywords: "Rede D'Or, Hospital Albert Einstein, Sirio Libanes, Dasa, Fleury, setor hospitalar",
		Sources:  "Anahp, Saúde Business, FBH",
	},
	{
		ID:       "internacional",
		Label:    "Mercado Global",
		Icon:     IconWorld,
		Keywords: "Health insurance global trends, UnitedHealth Group global, reinsurance market trends",
		Sources:  "Reuters, Bloomberg Insurance, Swiss Re, Munich Re",
	},
}

// Categories returns the news categories in display order. The network map
// pseudo-category is not included.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// FindCategory looks up a news category or the network map by id.
func FindCategory(id string) (Category, bool) {
	if id == MapCategoryID {
		return NetworkMap, true
	}
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
