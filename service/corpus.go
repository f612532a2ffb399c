package service

import (
	"legaladvisor-backend/models"
)

// LawCorpus is the set of laws one analysis runs against: the jurisdiction's
// local laws followed by the shared global laws
type LawCorpus struct {
	Local         []models.Law
	GlobalLegal   []models.Law
	GlobalIllegal []models.Law
}

// NewLawCorpus pairs local laws with copies of the global set
func NewLawCorpus(local []models.Law) LawCorpus {
	legal, illegal := GlobalLaws()
	return LawCorpus{
		Local:         local,
		GlobalLegal:   legal,
		GlobalIllegal: illegal,
	}
}

// GlobalLaws returns copies of the global legal and illegal sets
func GlobalLaws() (legal []models.Law, illegal []models.Law) {
	legal = append([]models.Law(nil), globalLegal...)
	illegal = append([]models.Law(nil), globalIllegal...)
	return legal, illegal
}

func globalLaw(category models.Category, title, text string) models.Law {
	return models.Law{
		Title:             title,
		Text:              text,
		Category:          category,
		Source:            models.SourceGlobal,
		EnforcementAgency: models.GlobalEnforcementAgency,
	}
}

// The global sets are never mutated after package init.
var (
	globalLegal = []models.Law{
		globalLaw(models.CategoryLegal, "Freedom of Speech",
			"Freedom of Speech is the right to articulate one's opinions without fear of retaliation. "+
				"Subject to limitations such as defamation and incitement laws."),
		globalLaw(models.CategoryLegal, "Right to Privacy",
			"The right to privacy protects individuals against unlawful searches and surveillance, "+
				"and is supported by data protection regulations like GDPR."),
		globalLaw(models.CategoryLegal, "Right to Fair Trial",
			"A fair trial involves due process, the right to counsel, and the presumption of innocence."),
		globalLaw(models.CategoryLegal, "Ownership of Property",
			"Ownership rights include possession, use, and transfer of property, subject to zoning laws and eminent domain."),
		globalLaw(models.CategoryLegal, "Business Contracts",
			"Contracts are legally binding agreements requiring offer, acceptance, and consideration. Breaches can lead to damages."),
		globalLaw(models.CategoryLegal, "Marriage and Divorce Laws",
			"These laws govern marriage rights and divorce proceedings, including custody and support."),
		globalLaw(models.CategoryLegal, "Tax Compliance",
			"Tax compliance involves proper filing and payment of taxes. Non‑compliance can lead to fines or criminal charges."),
		globalLaw(models.CategoryLegal, "Intellectual Property Rights",
			"IP laws protect patents, copyrights, trademarks, and trade secrets. Enforcement varies by jurisdiction."),
	}

	globalIllegal = []models.Law{
		globalLaw(models.CategoryIllegal, "Theft and Robbery",
			"Theft is taking property without permission, while robbery involves force. Penalties vary with the offense."),
		globalLaw(models.CategoryIllegal, "Hacking Without Consent",
			"Unauthorized access to computer systems is illegal and may result in fines or imprisonment."),
		globalLaw(models.CategoryIllegal, "Drug Trafficking",
			"Drug trafficking involves the illegal distribution of controlled substances with severe penalties."),
		globalLaw(models.CategoryIllegal, "Violent Crimes",
			"Violent crimes such as assault and murder carry harsh penalties and long-term imprisonment."),
		globalLaw(models.CategoryIllegal, "Bribery and Corruption",
			"Bribery and corruption involve illicit payments to influence actions, which are illegal."),
		globalLaw(models.CategoryIllegal, "Cybercrime",
			"Cybercrimes include fraud, phishing, and identity theft, with specialized laws addressing these offenses."),
		globalLaw(models.CategoryIllegal, "Human Trafficking",
			"Human trafficking is the exploitation of people for labor or sexual purposes, carrying strict penalties."),
		globalLaw(models.CategoryIllegal, "Tax Evasion",
			"Tax evasion is the illegal avoidance of tax payments through unreported income or false deductions."),
	}
)
