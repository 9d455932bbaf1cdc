package translate

// Static per-language dictionaries for common UI terms, keyed by the English
// phrase. The language set is closed: fr, de, rw (Kinyarwanda).
var dictionaries = map[string]map[string]string{
	"fr": {
		"Dashboard":    "Tableau de bord",
		"Analytics":    "Analytique",
		"Programs":     "Programmes",
		"Activities":   "Activités",
		"Progress":     "Progrès",
		"Status":       "Statut",
		"Budget":       "Budget",
		"Participants": "Participants",
		"Active":       "Actif",
		"Completed":    "Terminé",
		"Pending":      "En attente",
		"Scheduled":    "Programmé",
	},
	"de": {
		"Dashboard":    "Dashboard",
		"Analytics":    "Analytik",
		"Programs":     "Programme",
		"Activities":   "Aktivitäten",
		"Progress":     "Fortschritt",
		"Status":       "Status",
		"Budget":       "Budget",
		"Participants": "Teilnehmer",
		"Active":       "Aktiv",
		"Completed":    "Abgeschlossen",
		"Pending":      "Ausstehend",
		"Scheduled":    "Geplant",
	},
	"rw": {
		"Dashboard":    "Imbuga",
		"Analytics":    "Isesengura",
		"Programs":     "Gahunda",
		"Activities":   "Ibikorwa",
		"Progress":     "Iterambere",
		"Status":       "Uko bimeze",
		"Budget":       "Ingengo y'imari",
		"Participants": "Abitabiriye",
		"Active":       "Birakora",
		"Completed":    "Byarangiye",
		"Pending":      "Bitegereje",
		"Scheduled":    "Byateganyijwe",
	},
}
