package email

import (
	"bytes"
	"fmt"
	"html/template"

	"zk-contact-backend/internal/domain"
)

const (
	DefaultCompanyName  = "ZK Concept"
	DefaultCompanyEmail = "zakaria@zkconcept.be"
	DefaultCompanyPhone = "+32 489 39 57 80 | +32 486 92 31 82"
	DefaultPrivacyURL   = "https://zkconcept.be/politique-de-confidentialite"
	DefaultLegalURL     = "https://zkconcept.be/mentions-legales"
)

// Branding is the operator-supplied footer and header content.
type Branding struct {
	LogoURL      string `yaml:"logoUrl"`
	PrivacyURL   string `yaml:"privacyUrl"`
	LegalURL     string `yaml:"legalUrl"`
	CompanyEmail string `yaml:"companyEmail"`
	CompanyPhone string `yaml:"companyPhone"`
}

// WithDefaults fills every blank field with its hardcoded fallback.
// LogoURL stays blank so the header falls back to the company name.
func (b Branding) WithDefaults() Branding {
	if b.PrivacyURL == "" {
		b.PrivacyURL = DefaultPrivacyURL
	}
	if b.LegalURL == "" {
		b.LegalURL = DefaultLegalURL
	}
	if b.CompanyEmail == "" {
		b.CompanyEmail = DefaultCompanyEmail
	}
	if b.CompanyPhone == "" {
		b.CompanyPhone = DefaultCompanyPhone
	}
	return b
}

// Submission is a sanitized form submission. Every field is already
// HTML-escaped and is emitted verbatim by the templates.
type Submission struct {
	Kind           domain.FormKind
	FullName       template.HTML
	Company        template.HTML
	Email          template.HTML
	Phone          template.HTML
	Subject        template.HTML
	Service        template.HTML
	MonthlyVolume  template.HTML
	StartDate      template.HTML
	Budget         template.HTML
	Message        template.HTML
	Role           template.HTML
	ActivitySector template.HTML
	AverageWeight  template.HTML
	PackageType    template.HTML
	PickupAddress  template.HTML
	DeliveryArea   template.HTML
	City           template.HTML
	PostalCode     template.HTML
	Frequency      template.HTML
	Urgency        template.HTML
	PickupWindow   template.HTML
	DeliveryWindow template.HTML
}

type tableRow struct {
	Label string
	Value template.HTML
}

type view struct {
	Title    string
	Width    string
	Sub      Submission
	Brand    Branding
	Company  string
	Contact  template.HTML
	Fallback template.HTML
}

func newView(title, width string, sub Submission, brand Branding) view {
	brand = brand.WithDefaults()
	return view{
		Title:   title,
		Width:   width,
		Sub:     sub,
		Brand:   brand,
		Company: DefaultCompanyName,
		Contact: template.HTML(EscapeHTML(brand.CompanyEmail) + " - " + EscapeHTML(brand.CompanyPhone)),
	}
}

var templates = template.Must(template.New("email").Funcs(template.FuncMap{
	"row": func(label string, value template.HTML) tableRow {
		return tableRow{Label: label, Value: value}
	},
}).Parse(templateSource))

// RenderInternal builds the notification sent to the company inbox. The
// body table depends on the submission kind.
func RenderInternal(sub Submission, brand Branding) (string, error) {
	var name, title string
	switch sub.Kind {
	case domain.FormContact:
		name, title = "internal_contact", "Nouveau message - Page Contact"
	case domain.FormQuote:
		name, title = "internal_quote", "Nouvelle demande de devis"
	default:
		name, title = "internal_work_together", "Nouvelle demande - Travailler ensemble"
	}

	v := newView(title, "720px", sub, brand)
	if sub.Kind == domain.FormContact {
		v.Fallback = sub.Subject
		if v.Fallback == "" {
			v.Fallback = sub.Service
		}
	}

	return execute(name, v)
}

// RenderClient builds the acknowledgment sent to the submitter. Its shape
// does not depend on the submission kind.
func RenderClient(sub Submission, brand Branding) (string, error) {
	return execute("client", newView("Merci pour votre demande", "620px", sub, brand))
}

func execute(name string, v view) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, v); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	return buf.String(), nil
}

const templateSource = `
{{- define "row" -}}
<tr><td style="border:1px solid #e5e7eb;background:#f9fafb"><strong>{{.Label}}</strong></td><td style="border:1px solid #e5e7eb">{{.Value}}</td></tr>
{{- end -}}

{{- define "header" -}}
<div style="background:#f3f4f6;padding:24px;font-family:Arial,Helvetica,sans-serif;color:#111827">
  <div style="max-width:{{.Width}};margin:0 auto;background:#ffffff;border-radius:14px;overflow:hidden;border:1px solid #e5e7eb">
    <div style="background:#f0f4f8;padding:20px 24px;color:#111827;border-bottom:1px solid #e5e7eb">
      {{if .Brand.LogoURL}}<img src="{{.Brand.LogoURL}}" alt="{{.Company}}" style="height:34px;width:auto;display:block" />{{else}}<h1 style="margin:0;font-size:22px;letter-spacing:0.5px">{{.Company}}</h1>{{end}}
    </div>
    <div style="padding:24px">
      <h2 style="margin:0 0 14px;font-size:20px">{{.Title}}</h2>
{{- end -}}

{{- define "footer" -}}
    </div>
    <div style="background:#1f2937;color:#d1d5db;padding:16px 24px">
      <p style="margin:0 0 8px;font-size:12px;line-height:1.6">{{.Contact}}</p>
      <p style="margin:0;font-size:12px;line-height:1.6">
        <a href="{{.Brand.PrivacyURL}}" style="color:#f3f4f6;text-decoration:underline">Politique de confidentialité</a>
        &nbsp;•&nbsp;
        <a href="{{.Brand.LegalURL}}" style="color:#f3f4f6;text-decoration:underline">Mentions légales</a>
      </p>
    </div>
  </div>
</div>
{{- end -}}

{{- define "intro" -}}
<p style="margin:0 0 14px;line-height:1.6;color:#374151">{{.}}</p>
{{- end -}}

{{- define "internal_contact" -}}
{{template "header" .}}
      {{template "intro" "Un nouveau message a été soumis depuis la page Contact."}}
      <table cellpadding="8" cellspacing="0" style="border-collapse:collapse;width:100%">
        {{template "row" row "Nom" .Sub.FullName}}
        {{template "row" row "Email" .Sub.Email}}
        {{template "row" row "Sujet" .Fallback}}
        {{template "row" row "Message" .Sub.Message}}
      </table>
{{template "footer" .}}
{{- end -}}

{{- define "internal_quote" -}}
{{template "header" .}}
      {{template "intro" "Une nouvelle demande de devis détaillée a été soumise."}}
      <table cellpadding="8" cellspacing="0" style="border-collapse:collapse;width:100%">
        {{template "row" row "Nom" .Sub.FullName}}
        {{template "row" row "Société" .Sub.Company}}
        {{template "row" row "Fonction" .Sub.Role}}
        {{template "row" row "Secteur d'activité" .Sub.ActivitySector}}
        {{template "row" row "Email" .Sub.Email}}
        {{template "row" row "Téléphone" .Sub.Phone}}
        {{template "row" row "Service" .Sub.Service}}
        {{template "row" row "Volume mensuel" .Sub.MonthlyVolume}}
        {{template "row" row "Poids moyen" .Sub.AverageWeight}}
        {{template "row" row "Type de colis" .Sub.PackageType}}
        {{template "row" row "Adresse de collecte" .Sub.PickupAddress}}
        {{template "row" row "Zone de livraison" .Sub.DeliveryArea}}
        {{template "row" row "Ville" .Sub.City}}
        {{template "row" row "Code postal" .Sub.PostalCode}}
        {{template "row" row "Fréquence" .Sub.Frequency}}
        {{template "row" row "Urgence" .Sub.Urgency}}
        {{template "row" row "Créneau collecte" .Sub.PickupWindow}}
        {{template "row" row "Créneau livraison" .Sub.DeliveryWindow}}
        {{template "row" row "Date de démarrage" .Sub.StartDate}}
        {{template "row" row "Budget" .Sub.Budget}}
        {{template "row" row "Message" .Sub.Message}}
      </table>
{{template "footer" .}}
{{- end -}}

{{- define "internal_work_together" -}}
{{template "header" .}}
      {{template "intro" "Une nouvelle demande a été soumise depuis la page Travailler ensemble."}}
      <table cellpadding="8" cellspacing="0" style="border-collapse:collapse;width:100%">
        {{template "row" row "Nom" .Sub.FullName}}
        {{template "row" row "Société" .Sub.Company}}
        {{template "row" row "Email" .Sub.Email}}
        {{template "row" row "Téléphone" .Sub.Phone}}
        {{template "row" row "Service" .Sub.Service}}
        {{template "row" row "Volume mensuel" .Sub.MonthlyVolume}}
        {{template "row" row "Date de démarrage" .Sub.StartDate}}
        {{template "row" row "Budget" .Sub.Budget}}
        {{template "row" row "Message" .Sub.Message}}
      </table>
{{template "footer" .}}
{{- end -}}

{{- define "client" -}}
{{template "header" .}}
      <p style="margin:0 0 12px;line-height:1.6">
        Bonjour {{.Sub.FullName}}, nous avons bien reçu votre formulaire.
        Notre équipe va traiter votre demande dans les plus brefs délais.
      </p>
      <p style="margin:0 0 18px;line-height:1.6">
        Service demandé : <strong>{{.Sub.Service}}</strong>
      </p>
      <div style="margin-top:18px;padding:14px;background:#f9fafb;border:1px solid #e5e7eb;border-radius:10px">
        <p style="margin:0 0 6px"><strong>Rappel de vos informations</strong></p>
        <p style="margin:0;line-height:1.6">{{.Sub.Company}} - {{.Sub.Email}} - {{.Sub.Phone}}</p>
      </div>
{{template "footer" .}}
{{- end -}}
`
