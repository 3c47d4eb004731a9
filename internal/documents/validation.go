package documents

import (
	"fmt"
	"strings"
	"time"
)

type validator struct {
	errs ValidationErrors
}

func (v *validator) add(code, field, message string) {
	v.errs = append(v.errs, &ValidationError{Code: code, Field: field, Message: message})
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(ErrCodeRequired, field, "is required")
	}
}

func (v *validator) date(field, value string, optional bool) {
	if optional && strings.TrimSpace(value) == "" {
		return
	}
	if _, err := time.Parse(isoDate, value); err != nil {
		v.add(ErrCodeInvalidFormat, field, fmt.Sprintf("%q is not a YYYY-MM-DD date", value))
	}
}

func (v *validator) clock(field, value string, optional bool) {
	if optional && strings.TrimSpace(value) == "" {
		return
	}
	if _, err := time.Parse(clockTime, value); err != nil || len(value) != len(clockTime) {
		v.add(ErrCodeInvalidFormat, field, fmt.Sprintf("%q is not an HH:MM time", value))
	}
}

func (v *validator) result() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// Validate checks the inspection before any drawing happens.
func (in *Inspection) Validate() error {
	v := &validator{}

	if !in.Datacenter.Valid() {
		v.add(ErrCodeInvalidValue, "datacenter", fmt.Sprintf("%q is not DC1 or DC2", in.Datacenter))
	}
	if !in.Shift.Valid() {
		v.add(ErrCodeInvalidValue, "shift", fmt.Sprintf("%q is not morning or afternoon", in.Shift))
	}
	v.date("date", in.Date, false)
	v.clock("time", in.Time, false)
	if in.Completed {
		v.required("inspector", in.Inspector)
	}

	if len(in.Checklist) == 0 {
		v.add(ErrCodeEmptyChecklist, "checklist", "must contain at least one item")
	}
	for i, item := range in.Checklist {
		field := fmt.Sprintf("checklist[%d]", i)
		if !item.Category.Valid() {
			v.add(ErrCodeUnknownCategory, field+".category", fmt.Sprintf("unknown category %q", item.Category))
		}
		v.required(field+".description", item.Description)
	}

	return v.result()
}

// Validate checks the work permit before any drawing happens.
func (p *WorkPermit) Validate() error {
	v := &validator{}

	v.required("id", p.ID)
	v.required("name", p.Name)
	v.required("identification", p.Identification)
	v.required("company", p.Company)
	v.required("accessReason", p.AccessReason)
	v.required("authorizedPerson", p.AuthorizedPerson)
	v.date("entryDate", p.EntryDate, false)
	v.clock("entryTime", p.EntryTime, false)
	v.date("exitDate", p.ExitDate, true)
	v.clock("exitTime", p.ExitTime, true)

	return v.result()
}
