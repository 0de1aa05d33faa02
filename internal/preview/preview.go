// Package preview renders the form emails from sample submissions so the
// templates can be reviewed without sending anything.
package preview

import (
	"fmt"

	"zk-contact-backend/internal/domain"
	"zk-contact-backend/internal/usecase"
	"zk-contact-backend/pkg/email"
)

// Document selects which of the two emails to render.
type Document string

const (
	DocumentInternal Document = "internal"
	DocumentClient   Document = "client"
)

var (
	Kinds     = []domain.FormKind{domain.FormContact, domain.FormQuote, domain.FormWorkTogether}
	Documents = []Document{DocumentInternal, DocumentClient}
)

// Sample returns a representative submission for a form kind.
func Sample(kind domain.FormKind) domain.RawSubmission {
	raw := domain.RawSubmission{
		"formType":      string(kind),
		"fullName":      "Jean Dupont",
		"company":       "ZK Logistics",
		"email":         "jean.dupont@exemple.com",
		"phone":         "+32 489 39 57 80",
		"service":       "Livraison de colis",
		"monthlyVolume": "1200 livraisons / mois",
		"startDate":     "2026-03-15",
		"budget":        "6 000 EUR / mois",
		"message":       "Bonjour,\nNous cherchons un partenaire fiable pour nos livraisons en Belgique, avec un démarrage rapide.",
	}

	switch kind {
	case domain.FormContact:
		raw["subject"] = "Demande d'information"
	case domain.FormQuote:
		raw["role"] = "Responsable logistique"
		raw["activitySector"] = "E-commerce"
		raw["averageWeight"] = "2 kg"
		raw["packageType"] = "Colis standard"
		raw["pickupAddress"] = "Rue de l'Industrie 12"
		raw["deliveryArea"] = "Bruxelles et périphérie"
		raw["city"] = "Bruxelles"
		raw["postalCode"] = "1000"
		raw["frequency"] = "Quotidienne"
		raw["urgency"] = "Standard"
		raw["pickupWindow"] = "08:00 - 10:00"
		raw["deliveryWindow"] = "10:00 - 18:00"
	}
	return raw
}

// Render sanitizes raw and renders the requested document.
func Render(raw domain.RawSubmission, doc Document, brand email.Branding) (string, error) {
	safe := usecase.SanitizeSubmission(raw)

	switch doc {
	case DocumentInternal:
		return email.RenderInternal(safe, brand)
	case DocumentClient:
		return email.RenderClient(safe, brand)
	default:
		return "", fmt.Errorf("unknown document %q", doc)
	}
}

// ParseDocument validates a document name.
func ParseDocument(name string) (Document, error) {
	for _, d := range Documents {
		if string(d) == name {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown document %q (want internal or client)", name)
}

// ParseKind validates a form kind name. Unlike domain.ParseFormKind it
// rejects unknown names instead of defaulting.
func ParseKind(name string) (domain.FormKind, error) {
	switch name {
	case string(domain.FormContact), string(domain.FormQuote), string(domain.FormWorkTogether):
		return domain.FormKind(name), nil
	case "devis":
		return domain.FormQuote, nil
	}
	return "", fmt.Errorf("unknown form kind %q", name)
}
