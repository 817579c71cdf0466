// Package contact validates, normalizes and stores contact-form
// submissions.
package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Form carries the raw request fields. Website is a hidden honeypot
// field; humans never fill it.
type Form struct {
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Email     string `form:"email" json:"email"`
	Phone     string `form:"phone" json:"phone"`
	Subject   string `form:"subject" json:"subject"`
	Message   string `form:"message" json:"message"`
	Website   string `form:"website" json:"website"`
}

// Submission is the normalized outcome of a successful validation.
// Server-side fields (IP, user agent, timestamp) are stamped by the
// caller.
type Submission struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
}

// FieldErrors maps field names to validation messages. The honeypot
// verdict lives under the "form" key.
type FieldErrors map[string]string

func (e FieldErrors) add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

var (
	wsRun      = regexp.MustCompile(`\s+`)
	wsNoNL     = regexp.MustCompile(`[^\S\n]+`)
	nameChars  = regexp.MustCompile(`^[A-Za-zА-ЩЬЮЯа-щьюяЇїІіЄєҐґ'’\- ]+$`)
	emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonDigits  = regexp.MustCompile(`\D`)
	urlLike    = regexp.MustCompile(`(?i)(https?://|www\.)`)
)

// normalize trims and collapses internal whitespace runs to one space.
func normalize(s string) string {
	return wsRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// normalizeMessage collapses whitespace but keeps newlines.
func normalizeMessage(s string) string {
	s = wsNoNL.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Validate returns the normalized submission, or the per-field errors
// that block it. Malformed input never panics.
func (f *Form) Validate() (*Submission, FieldErrors) {
	errs := FieldErrors{}

	if strings.TrimSpace(f.Website) != "" {
		errs.add("form", "Submission rejected.")
	}

	firstName := normalize(f.FirstName)
	switch {
	case firstName == "":
		errs.add("first_name", "First name is required.")
	case utf8.RuneCountInString(firstName) < 2:
		errs.add("first_name", "First name is too short.")
	case utf8.RuneCountInString(firstName) > 50:
		errs.add("first_name", "First name is too long.")
	case !nameChars.MatchString(firstName):
		errs.add("first_name", "First name contains invalid characters.")
	}

	lastName := normalize(f.LastName)
	if lastName != "" {
		switch {
		case utf8.RuneCountInString(lastName) > 60:
			errs.add("last_name", "Last name is too long.")
		case !nameChars.MatchString(lastName):
			errs.add("last_name", "Last name contains invalid characters.")
		}
	}

	email := strings.ToLower(strings.TrimSpace(f.Email))
	switch {
	case email == "":
		errs.add("email", "Email is required.")
	case strings.ContainsAny(email, " \t\n\r"):
		errs.add("email", "Email must not contain spaces.")
	case !emailShape.MatchString(email):
		errs.add("email", "Enter a valid email address.")
	}

	phone := ""
	if strings.TrimSpace(f.Phone) != "" {
		digits := nonDigits.ReplaceAllString(f.Phone, "")
		if len(digits) < 10 || len(digits) > 15 {
			errs.add("phone", "Phone number must contain 10 to 15 digits.")
		} else {
			phone = "+" + digits
		}
	}

	subject := normalize(f.Subject)
	switch {
	case subject == "":
		errs.add("subject", "Subject is required.")
	case utf8.RuneCountInString(subject) < 3:
		errs.add("subject", "Subject is too short.")
	case utf8.RuneCountInString(subject) > 120:
		errs.add("subject", "Subject is too long.")
	case urlLike.MatchString(subject):
		errs.add("subject", "Subject must not contain links.")
	}

	message := normalizeMessage(f.Message)
	switch {
	case message == "":
		errs.add("message", "Message is required.")
	case utf8.RuneCountInString(message) < 10:
		errs.add("message", "Message is too short.")
	case utf8.RuneCountInString(message) > 4000:
		errs.add("message", "Message is too long.")
	}

	// Safeguard for a future optional email: at least one way to reach
	// the submitter must remain.
	if _, emailInvalid := errs["email"]; !emailInvalid && email == "" && phone == "" {
		errs.add("form", "Provide an email address or a phone number.")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Submission{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Subject:   subject,
		Message:   message,
	}, nil
}
