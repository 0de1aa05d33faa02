package usecase

import (
	"html/template"
	"strings"

	"zk-contact-backend/internal/domain"
	"zk-contact-backend/pkg/email"
)

var newlines = strings.NewReplacer("\r\n", "<br/>", "\n", "<br/>")

// SanitizeSubmission turns an untrusted submission into the fixed-shape,
// HTML-escaped record consumed by the templates. It never fails.
func SanitizeSubmission(raw domain.RawSubmission) email.Submission {
	text := func(key string) template.HTML {
		return template.HTML(email.EscapeHTML(raw.String(key)))
	}
	optional := func(key string) template.HTML {
		v := raw.String(key)
		if v == "" {
			v = "-"
		}
		return template.HTML(email.EscapeHTML(v))
	}

	return email.Submission{
		Kind:           raw.Kind(),
		FullName:       text("fullName"),
		Company:        text("company"),
		Email:          text("email"),
		Phone:          text("phone"),
		Subject:        text("subject"),
		Service:        text("service"),
		Message:        template.HTML(newlines.Replace(email.EscapeHTML(raw.String("message")))),
		MonthlyVolume:  optional("monthlyVolume"),
		StartDate:      optional("startDate"),
		Budget:         optional("budget"),
		Role:           optional("role"),
		ActivitySector: optional("activitySector"),
		AverageWeight:  optional("averageWeight"),
		PackageType:    optional("packageType"),
		PickupAddress:  optional("pickupAddress"),
		DeliveryArea:   optional("deliveryArea"),
		City:           optional("city"),
		PostalCode:     optional("postalCode"),
		Frequency:      optional("frequency"),
		Urgency:        optional("urgency"),
		PickupWindow:   optional("pickupWindow"),
		DeliveryWindow: optional("deliveryWindow"),
	}
}
