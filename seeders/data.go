package seeders

import (
	"time"

	"handover-system/internal/entities"
	"handover-system/pkg/utils"
)

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func stamp(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

var companies = []entities.Company{
	{ID: "1", Name: "TechCorp SAS", Address: "15 Rue de la Paix, 75001 Paris"},
	{ID: "2", Name: "InnoSolutions", Address: "42 Avenue des Champs-Élysées, 75008 Paris"},
	{ID: "3", Name: "DataPrime", Address: "8 Boulevard Haussmann, 75009 Paris"},
}

var users = []entities.User{
	{ID: "1", Name: "Jean Dupont", Email: "jean.dupont@techcorp.fr", CompanyID: "1"},
	{ID: "2", Name: "Marie Martin", Email: "marie.martin@techcorp.fr", CompanyID: "1"},
	{ID: "3", Name: "Pierre Bernard", Email: "pierre.bernard@innosolutions.fr", CompanyID: "2"},
	{ID: "4", Name: "Sophie Leroy", Email: "sophie.leroy@dataprime.fr", CompanyID: "3"},
	{ID: "5", Name: "Thomas Moreau", Email: "thomas.moreau@dataprime.fr", CompanyID: "3"},
}

// Assigned equipment points at the collaborator profile when the owner
// has one, so the departure flow works on seeded data out of the box.
var equipment = []entities.Equipment{
	{ID: "1", Name: `MacBook Pro 14"`, SerialNumber: "MBP-2024-001", Category: "Ordinateur", Status: entities.EquipmentAssigned, AssignedTo: "collab-001", AssignedDate: utils.TimePtr(day("2024-01-15")), CompanyID: "1"},
	{ID: "2", Name: "iPhone 15 Pro", SerialNumber: "IPH-2024-001", Category: "Téléphone", Status: entities.EquipmentAssigned, AssignedTo: "collab-002", AssignedDate: utils.TimePtr(day("2024-02-01")), CompanyID: "1"},
	{ID: "3", Name: "Dell XPS 15", SerialNumber: "XPS-2024-001", Category: "Ordinateur", Status: entities.EquipmentAvailable},
	{ID: "4", Name: `iPad Pro 12.9"`, SerialNumber: "IPD-2024-001", Category: "Tablette", Status: entities.EquipmentAssigned, AssignedTo: "collab-003", AssignedDate: utils.TimePtr(day("2024-01-20")), CompanyID: "2"},
	{ID: "5", Name: `Écran Dell 27"`, SerialNumber: "MON-2024-001", Category: "Écran", Status: entities.EquipmentMaintenance},
	{ID: "6", Name: "Clavier Magic Keyboard", SerialNumber: "KBD-2024-001", Category: "Accessoire", Status: entities.EquipmentAvailable},
	{ID: "7", Name: "Souris MX Master 3", SerialNumber: "MOU-2024-001", Category: "Accessoire", Status: entities.EquipmentAssigned, AssignedTo: "4", AssignedDate: utils.TimePtr(day("2024-03-01")), CompanyID: "3"},
	{ID: "8", Name: "Casque Sony WH-1000XM5", SerialNumber: "AUD-2024-001", Category: "Audio", Status: entities.EquipmentAvailable},
}

var handovers = []entities.Handover{
	{ID: "1", EquipmentID: "1", UserID: "collab-001", CompanyID: "1", Date: day("2024-01-15"), Type: entities.HandoverAssignment, Notes: "Nouveau collaborateur"},
	{ID: "2", EquipmentID: "2", UserID: "collab-002", CompanyID: "1", Date: day("2024-02-01"), Type: entities.HandoverAssignment},
	{ID: "3", EquipmentID: "4", UserID: "collab-003", CompanyID: "2", Date: day("2024-01-20"), Type: entities.HandoverAssignment, Notes: "Projet client"},
}

var requests = []entities.CollaboratorRequest{
	{
		ID:        "req-001",
		Type:      entities.RequestNew,
		Filiale:   "TechCorp SAS",
		Direction: "Direction Technique",
		Poste:     "Développeur Full Stack",
		Nom:       "Lefevre",
		Prenom:    "Antoine",
		GroupesMail: []string{
			"tech-team@entreprise.fr",
			"devs@entreprise.fr",
		},
		PCType:                entities.PCPortable,
		EcransSupplementaires: 2,
		TelephoneType:         entities.PhoneMobile,
		AutresMateriels:       "Casque audio, webcam HD",
		Logiciels: []entities.Software{
			{ID: "1", Name: "Microsoft 365", Rights: "Lecture/Écriture"},
			{ID: "2", Name: "GitLab", Rights: "Lecture/Écriture"},
			{ID: "3", Name: "VS Code", Rights: "Administrateur"},
			{ID: "4", Name: "Slack", Rights: "Lecture/Écriture"},
		},
		Status:    entities.RequestPending,
		CreatedAt: stamp("2024-03-10T09:00:00Z"),
	},
	{
		ID:            "req-002",
		Type:          entities.RequestReplacement,
		ReplacedEmail: "jean.dupont@techcorp.fr",
		Filiale:       "TechCorp SAS",
		Direction:     "Direction Commerciale",
		Poste:         "Commercial Senior",
		Nom:           "Dubois",
		Prenom:        "Claire",
		GroupesMail: []string{
			"sales@entreprise.fr",
			"all-company@entreprise.fr",
		},
		PCType:                entities.PCPortable,
		EcransSupplementaires: 1,
		TelephoneType:         entities.PhoneBoth,
		Logiciels: []entities.Software{
			{ID: "1", Name: "Microsoft 365", Rights: "Lecture/Écriture"},
			{ID: "2", Name: "Salesforce", Rights: "Lecture/Écriture"},
		},
		Status:      entities.RequestValidated,
		CreatedAt:   stamp("2024-03-08T14:30:00Z"),
		ValidatedAt: utils.TimePtr(stamp("2024-03-09T10:00:00Z")),
		ValidatedBy: "Admin Support",
	},
}

var profiles = []entities.CollaboratorProfile{
	{
		ID:        "collab-001",
		RequestID: "req-old-001",
		Nom:       "Dupont",
		Prenom:    "Jean",
		Email:     "jean.dupont@techcorp.fr",
		Telephone: "+33 6 12 34 56 78",
		Filiale:   "TechCorp SAS",
		Direction: "Direction Commerciale",
		Poste:     "Commercial Senior",
		GroupesMail: []string{
			"sales@entreprise.fr",
			"all-company@entreprise.fr",
		},
		Logiciels: []entities.Software{
			{ID: "1", Name: "Microsoft 365", Rights: "Lecture/Écriture"},
			{ID: "2", Name: "Salesforce", Rights: "Lecture/Écriture"},
		},
		CreatedAt: stamp("2023-06-15T09:00:00Z"),
		Status:    entities.CollaboratorActive,
	},
	{
		ID:        "collab-002",
		RequestID: "req-old-002",
		Nom:       "Martin",
		Prenom:    "Marie",
		Email:     "marie.martin@techcorp.fr",
		Telephone: "+33 6 98 76 54 32",
		Filiale:   "TechCorp SAS",
		Direction: "Direction Technique",
		Poste:     "Chef de projet",
		GroupesMail: []string{
			"tech-team@entreprise.fr",
			"management@entreprise.fr",
		},
		Logiciels: []entities.Software{
			{ID: "1", Name: "Microsoft 365", Rights: "Lecture/Écriture"},
			{ID: "2", Name: "Jira", Rights: "Administrateur"},
			{ID: "3", Name: "Confluence", Rights: "Lecture/Écriture"},
		},
		CreatedAt: stamp("2023-09-01T09:00:00Z"),
		Status:    entities.CollaboratorActive,
	},
	{
		ID:        "collab-003",
		RequestID: "req-old-003",
		Nom:       "Bernard",
		Prenom:    "Pierre",
		Email:     "pierre.bernard@innosolutions.fr",
		Filiale:   "InnoSolutions",
		Direction: "Direction Technique",
		Poste:     "Architecte Solutions",
		GroupesMail: []string{
			"tech-team@entreprise.fr",
		},
		Logiciels: []entities.Software{
			{ID: "1", Name: "Microsoft 365", Rights: "Lecture/Écriture"},
			{ID: "2", Name: "VS Code", Rights: "Administrateur"},
		},
		CreatedAt: stamp("2023-11-20T09:00:00Z"),
		Status:    entities.CollaboratorActive,
	},
}
