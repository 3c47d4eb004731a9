package documents

import (
	"encoding/json"
	"fmt"
	"time"
)

type Category string

const (
	CategoryClimate    Category = "climate"
	CategoryElectrical Category = "electrical"
	CategorySecurity   Category = "security"
)

// legacyCategories maps the tokens stored by earlier versions of the forms.
var legacyCategories = map[string]Category{
	"clima":     CategoryClimate,
	"electrico": CategoryElectrical,
	"seguridad": CategorySecurity,
}

// Categories lists the checklist categories in template order.
func Categories() []Category {
	return []Category{CategoryClimate, CategoryElectrical, CategorySecurity}
}

// ParseCategory accepts both the current and the legacy category tokens.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if c.Valid() {
		return c, nil
	}
	if legacy, ok := legacyCategories[s]; ok {
		return legacy, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) Valid() bool {
	_, err := c.Label()
	return err == nil
}

// Label is the section heading printed for the category.
func (c Category) Label() (string, error) {
	switch c {
	case CategoryClimate:
		return LabelCategoryClimate, nil
	case CategoryElectrical:
		return LabelCategoryElectrical, nil
	case CategorySecurity:
		return LabelCategorySecurity, nil
	}
	return "", fmt.Errorf("unknown category %q", string(c))
}

// Icon names the icon the forms show next to the category.
func (c Category) Icon() (string, error) {
	switch c {
	case CategoryClimate:
		return "thermometer", nil
	case CategoryElectrical:
		return "zap", nil
	case CategorySecurity:
		return "shield", nil
	}
	return "", fmt.Errorf("unknown category %q", string(c))
}

// UnmarshalJSON normalises legacy tokens. Unknown values are kept verbatim so
// validation can report them.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, err := ParseCategory(s); err == nil {
		*c = parsed
		return nil
	}
	*c = Category(s)
	return nil
}

type Datacenter string

const (
	DatacenterDC1 Datacenter = "DC1"
	DatacenterDC2 Datacenter = "DC2"
)

func (d Datacenter) Valid() bool {
	return d == DatacenterDC1 || d == DatacenterDC2
}

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftAfternoon
}

// Label is the Spanish name printed on the report.
func (s Shift) Label() string {
	if s == ShiftMorning {
		return "Mañana"
	}
	return "Tarde"
}

// ShiftForHour suggests the shift for an hour of the day (0-23).
func ShiftForHour(hour int) Shift {
	if hour >= 0 && hour < 12 {
		return ShiftMorning
	}
	return ShiftAfternoon
}

type ChecklistItem struct {
	ID           string   `json:"id"`
	Category     Category `json:"category"`
	Description  string   `json:"description"`
	Completed    bool     `json:"completed"`
	Observations string   `json:"observations,omitempty"`
}

type Inspection struct {
	ID                  string          `json:"id"`
	Datacenter          Datacenter      `json:"datacenter"`
	Date                string          `json:"date"` // YYYY-MM-DD
	Time                string          `json:"time"` // HH:MM
	Shift               Shift           `json:"shift"`
	Checklist           []ChecklistItem `json:"checklist"`
	GeneralObservations string          `json:"generalObservations,omitempty"`
	Inspector           string          `json:"inspector"`
	Completed           bool            `json:"completed"`
}

// CompletedCount returns how many checklist items are done.
func (in *Inspection) CompletedCount() int {
	n := 0
	for _, item := range in.Checklist {
		if item.Completed {
			n++
		}
	}
	return n
}

type WorkPermit struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Identification        string    `json:"identification"`
	Company               string    `json:"company"`
	AccessReason          string    `json:"accessReason"`
	EquipmentTools        string    `json:"equipmentTools,omitempty"`
	EntryDate             string    `json:"entryDate"`
	EntryTime             string    `json:"entryTime"`
	ExitDate              string    `json:"exitDate,omitempty"`
	ExitTime              string    `json:"exitTime,omitempty"`
	AuthorizedPerson      string    `json:"authorizedPerson"`
	Observations          string    `json:"observations,omitempty"`
	ProviderSignature     string    `json:"providerSignature,omitempty"`
	DCManagerSignature    string    `json:"dcManagerSignature,omitempty"`
	CollaboratorSignature string    `json:"collaboratorSignature,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

type DocumentType string

const (
	TypeInspectionReport DocumentType = "INSPECTION_REPORT"
	TypeWorkPermit       DocumentType = "WORK_PERMIT"
)

// Artifact is a finished, named PDF.
type Artifact struct {
	Name         string       `json:"name"`
	DocumentType DocumentType `json:"document_type"`
	Pages        int          `json:"pages"`
	Size         int64        `json:"size"`
	Location     string       `json:"location,omitempty"`
	Data         []byte       `json:"-"`
}
