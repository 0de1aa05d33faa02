package usecase_test

import (
	"html/template"
	"reflect"
	"strings"
	"testing"

	"zk-contact-backend/internal/domain"
	"zk-contact-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSubmissionDefaults(t *testing.T) {
	safe := usecase.SanitizeSubmission(domain.RawSubmission{})

	assert.Equal(t, domain.FormWorkTogether, safe.Kind)
	assert.Equal(t, template.HTML(""), safe.FullName)
	assert.Equal(t, template.HTML(""), safe.Company)
	assert.Equal(t, template.HTML(""), safe.Email)
	assert.Equal(t, template.HTML(""), safe.Phone)
	assert.Equal(t, template.HTML(""), safe.Subject)
	assert.Equal(t, template.HTML(""), safe.Service)
	assert.Equal(t, template.HTML(""), safe.Message)

	for _, optional := range []template.HTML{
		safe.MonthlyVolume, safe.StartDate, safe.Budget, safe.Role, safe.ActivitySector,
		safe.AverageWeight, safe.PackageType, safe.PickupAddress, safe.DeliveryArea, safe.City,
		safe.PostalCode, safe.Frequency, safe.Urgency, safe.PickupWindow, safe.DeliveryWindow,
	} {
		assert.Equal(t, template.HTML("-"), optional)
	}
}

func TestSanitizeSubmissionEscapes(t *testing.T) {
	safe := usecase.SanitizeSubmission(domain.RawSubmission{
		"formType":    "devis",
		"fullName":    `<script>alert("x")</script>`,
		"company":     "Tom & Jerry's",
		"city":        "<b>Liège</b>",
		"message":     "line1\nline2\r\n<i>line3</i>",
		"budget":      float64(6000),
		"consent":     true,
		"unknownHtml": "<img>",
	})

	assert.Equal(t, domain.FormQuote, safe.Kind)
	assert.Equal(t, template.HTML("&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"), safe.FullName)
	assert.Equal(t, template.HTML("Tom &amp; Jerry&#039;s"), safe.Company)
	assert.Equal(t, template.HTML("&lt;b&gt;Liège&lt;/b&gt;"), safe.City)
	assert.Equal(t, template.HTML("line1<br/>line2<br/>&lt;i&gt;line3&lt;/i&gt;"), safe.Message)
	assert.Equal(t, template.HTML("6000"), safe.Budget)
}

func TestSanitizeSubmissionNeverLeaksRawMarkup(t *testing.T) {
	hostile := `<script>"'&`
	raw := domain.RawSubmission{}
	for _, key := range []string{
		"fullName", "company", "email", "phone", "subject", "service", "monthlyVolume", "startDate",
		"budget", "role", "activitySector", "averageWeight", "packageType", "pickupAddress",
		"deliveryArea", "city", "postalCode", "frequency", "urgency", "pickupWindow", "deliveryWindow",
	} {
		raw[key] = hostile
	}
	raw["message"] = hostile + "\n" + hostile

	safe := usecase.SanitizeSubmission(raw)

	v := reflect.ValueOf(safe)
	for i := 0; i < v.NumField(); i++ {
		value, ok := v.Field(i).Interface().(template.HTML)
		if !ok {
			continue
		}
		stripped := strings.ReplaceAll(string(value), "<br/>", "")
		assert.NotContains(t, stripped, "<", v.Type().Field(i).Name)
		assert.NotContains(t, stripped, ">", v.Type().Field(i).Name)
		assert.NotContains(t, stripped, `"`, v.Type().Field(i).Name)
		assert.NotContains(t, stripped, "'", v.Type().Field(i).Name)
	}
}

func TestSanitizeSubmissionIsDeterministic(t *testing.T) {
	raw := domain.RawSubmission{"formType": "contact", "fullName": "A & B", "message": "x\ny"}
	assert.Equal(t, usecase.SanitizeSubmission(raw), usecase.SanitizeSubmission(raw))
}
