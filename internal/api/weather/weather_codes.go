package weather

// codeInfo describes one WMO weather code as shown to the user.
type codeInfo struct {
	Icon   string
	Label  string
	Advice string
	Indoor bool
}

// wmoCodes maps WMO interpretation codes to display info. Labels and advice
// are in French, matching the rest of the product copy.
var wmoCodes = map[int]codeInfo{
	0:  {Icon: "☀️", Label: "Ciel dégagé", Advice: "Parfait pour des activités extérieures !"},
	1:  {Icon: "🌤️", Label: "Principalement dégagé", Advice: "Idéal pour sortir"},
	2:  {Icon: "⛅", Label: "Partiellement nuageux", Advice: "Bonne journée pour toutes activités"},
	3:  {Icon: "☁️", Label: "Couvert", Advice: "Prévoir des activités en intérieur", Indoor: true},
	45: {Icon: "🌫️", Label: "Brouillard", Advice: "Activités calmes recommandées", Indoor: true},
	48: {Icon: "🌫️", Label: "Brouillard givrant", Advice: "Rester au chaud", Indoor: true},
	51: {Icon: "🌦️", Label: "Bruine légère", Advice: "Activités sous abri", Indoor: true},
	53: {Icon: "🌦️", Label: "Bruine modérée", Advice: "Activités en intérieur", Indoor: true},
	55: {Icon: "🌧️", Label: "Bruine dense", Advice: "Journée intérieure", Indoor: true},
	61: {Icon: "🌧️", Label: "Pluie légère", Advice: "Jeux en salle", Indoor: true},
	63: {Icon: "🌧️", Label: "Pluie modérée", Advice: "Activités manuelles", Indoor: true},
	65: {Icon: "🌧️", Label: "Pluie forte", Advice: "Créativité en intérieur", Indoor: true},
	71: {Icon: "🌨️", Label: "Neige légère", Advice: "Bataille de boules de neige !"},
	73: {Icon: "🌨️", Label: "Neige modérée", Advice: "Bonhomme de neige ?"},
	75: {Icon: "🌨️", Label: "Neige forte", Advice: "Restez au chaud", Indoor: true},
	77: {Icon: "🌨️", Label: "Grésil", Advice: "Intérieur obligatoire", Indoor: true},
	80: {Icon: "🌦️", Label: "Averses légères", Advice: "Surveillez le ciel"},
	81: {Icon: "🌦️", Label: "Averses modérées", Advice: "Activités rapides dehors"},
	82: {Icon: "⛈️", Label: "Averses violentes", Advice: "Intérieur impératif", Indoor: true},
	85: {Icon: "🌨️", Label: "Averses de neige légères", Advice: "Sortie courte possible"},
	86: {Icon: "🌨️", Label: "Averses de neige fortes", Advice: "Intérieur recommandé", Indoor: true},
	95: {Icon: "⛈️", Label: "Orage", Advice: "Sécurité : restez à l'intérieur", Indoor: true},
	96: {Icon: "⛈️", Label: "Orage avec grêle légère", Advice: "Danger : intérieur", Indoor: true},
	99: {Icon: "⛈️", Label: "Orage avec grêle forte", Advice: "Danger : intérieur", Indoor: true},
}

// infoForCode resolves a WMO code, falling back to a neutral entry for codes
// the table does not know.
func infoForCode(code int) codeInfo {
	if info, ok := wmoCodes[code]; ok {
		return info
	}
	return codeInfo{Icon: "🌈", Label: "Météo variable", Advice: "Préparez des activités variées"}
}
