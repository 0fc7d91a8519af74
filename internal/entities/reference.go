package entities

// Reference lists backing the request forms. They are configuration
// vocabulary rather than stored records.

var Categories = []string{
	"Ordinateur",
	"Téléphone",
	"Tablette",
	"Écran",
	"Accessoire",
	"Audio",
	"Réseau",
	"Autre",
}

var Filiales = []string{
	"TechCorp SAS",
	"InnoSolutions",
	"DataPrime",
	"CloudFirst",
	"DevFactory",
}

var Directions = []string{
	"Direction Générale",
	"Direction Technique",
	"Direction Commerciale",
	"Direction RH",
	"Direction Financière",
	"Direction Marketing",
	"DSI",
}

var GroupesMail = []string{
	"all-company@entreprise.fr",
	"tech-team@entreprise.fr",
	"marketing@entreprise.fr",
	"sales@entreprise.fr",
	"hr@entreprise.fr",
	"finance@entreprise.fr",
	"management@entreprise.fr",
	"devs@entreprise.fr",
}

var Logiciels = []string{
	"Microsoft 365",
	"Slack",
	"Jira",
	"Confluence",
	"GitLab",
	"VS Code",
	"Figma",
	"Adobe Creative Suite",
	"SAP",
	"Salesforce",
	"Zendesk",
	"Teams",
	"Zoom",
}

var Droits = []string{
	"Lecture seule",
	"Lecture/Écriture",
	"Administrateur",
	"Super Admin",
}
