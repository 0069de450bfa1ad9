package models

// LeadField names one editable field of the booking form
type LeadField string

const (
	LeadFieldName          LeadField = "name"
	LeadFieldPhone         LeadField = "phone"
	LeadFieldEmail         LeadField = "email"
	LeadFieldCity          LeadField = "city"
	LeadFieldPreferredDate LeadField = "preferred_date"
	LeadFieldMessage       LeadField = "message"
)

// LeadFields lists the booking form fields in display order
var LeadFields = []LeadField{
	LeadFieldName,
	LeadFieldPhone,
	LeadFieldEmail,
	LeadFieldCity,
	LeadFieldPreferredDate,
	LeadFieldMessage,
}

// IsValid reports whether f is one of the booking form fields
func (f LeadField) IsValid() bool {
	for _, known := range LeadFields {
		if f == known {
			return true
		}
	}
	return false
}

// LeadRecord is the contact request a visitor fills in.
// The zero value is the empty form.
type LeadRecord struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	City          string `json:"city"`
	PreferredDate string `json:"preferred_date"`
	Message       string `json:"message"`
}

// Get returns the value of one field, or "" for an unknown field
func (r LeadRecord) Get(field LeadField) string {
	switch field {
	case LeadFieldName:
		return r.Name
	case LeadFieldPhone:
		return r.Phone
	case LeadFieldEmail:
		return r.Email
	case LeadFieldCity:
		return r.City
	case LeadFieldPreferredDate:
		return r.PreferredDate
	case LeadFieldMessage:
		return r.Message
	}
	return ""
}

// With returns a copy of r with one field replaced.
// ok is false (and r is returned unchanged) for an unknown field.
func (r LeadRecord) With(field LeadField, value string) (LeadRecord, bool) {
	switch field {
	case LeadFieldName:
		r.Name = value
	case LeadFieldPhone:
		r.Phone = value
	case LeadFieldEmail:
		r.Email = value
	case LeadFieldCity:
		r.City = value
	case LeadFieldPreferredDate:
		r.PreferredDate = value
	case LeadFieldMessage:
		r.Message = value
	default:
		return r, false
	}
	return r, true
}

// IsEmpty reports whether every field is blank
func (r LeadRecord) IsEmpty() bool {
	return r == LeadRecord{}
}
